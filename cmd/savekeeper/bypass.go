package savekeeper

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/savekeeper/pkg/filesystem"
	"github.com/arthur-debert/savekeeper/pkg/guard"
	"github.com/arthur-debert/savekeeper/pkg/launcher"
)

func newBypassCmd() *cobra.Command {
	var gameRoot string

	bypassCmd := &cobra.Command{
		Use:   "bypass",
		Short: MsgBypassShort,
	}
	bypassCmd.PersistentFlags().StringVarP(&gameRoot, "game", "g", "", MsgFlagGame)

	bypass := func() (*launcher.Bypass, error) {
		root, err := resolveGameRoot(gameRoot)
		if err != nil {
			return nil, err
		}
		return launcher.New(filesystem.NewOS(), guard.Never(), root), nil
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the bypass is applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bypass()
			if err != nil {
				return err
			}
			if b.Applied() {
				cmd.Println(MsgBypassOn)
			} else {
				cmd.Println(MsgBypassOff)
			}
			return nil
		},
	}

	onCmd := &cobra.Command{
		Use:   "on",
		Short: "Apply the launcher bypass",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bypass()
			if err != nil {
				return err
			}
			if err := b.Apply(); err != nil {
				return err
			}
			cmd.Println(MsgBypassOn)
			return nil
		},
	}

	offCmd := &cobra.Command{
		Use:   "off",
		Short: "Restore the original launcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bypass()
			if err != nil {
				return err
			}
			if err := b.Remove(); err != nil {
				return err
			}
			cmd.Println(MsgBypassOff)
			return nil
		},
	}

	bypassCmd.AddCommand(statusCmd, onCmd, offCmd)
	return bypassCmd
}
