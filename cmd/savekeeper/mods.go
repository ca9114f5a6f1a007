package savekeeper

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/savekeeper/pkg/filesystem"
	"github.com/arthur-debert/savekeeper/pkg/guard"
	"github.com/arthur-debert/savekeeper/pkg/mods"
)

func newModsCmd() *cobra.Command {
	var gameRoot string

	modsCmd := &cobra.Command{
		Use:   "mods",
		Short: MsgModsShort,
	}
	modsCmd.PersistentFlags().StringVarP(&gameRoot, "game", "g", "", MsgFlagGame)

	registry := func() (*mods.Registry, error) {
		root, err := resolveGameRoot(gameRoot)
		if err != nil {
			return nil, err
		}
		return mods.New(filesystem.NewOS(), guard.Never(), root), nil
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List installed mods",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}
			installed := r.Mods()
			if len(installed) == 0 {
				cmd.Println(MsgNoMods)
				return nil
			}
			for _, m := range installed {
				cmd.Printf("%s  %s\n", formatBold(m.Name), formatDim(string(m.Status)))
				cmd.Printf("    files: %d\n", len(m.Files))
			}
			return nil
		},
	}

	var installForce bool
	installCmd := &cobra.Command{
		Use:   "install ARCHIVE",
		Short: "Install a mod from a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}
			problems, err := r.PreInstallCheck(args[0])
			if err != nil {
				return err
			}
			if len(problems) > 0 {
				cmd.Println(MsgPreCheckWarning)
				for _, p := range problems {
					cmd.Printf("  %s\n", p)
				}
				if !installForce {
					cmd.Println("Pass --force to install anyway.")
					return nil
				}
			}
			if err := r.Install(args[0]); err != nil {
				return err
			}
			cmd.Printf("Installed %q\n", mods.ModNameFromArchive(args[0]))
			return nil
		},
	}
	installCmd.Flags().BoolVar(&installForce, "force", false, "Install even when the pre-install check reports problems")

	checkCmd := &cobra.Command{
		Use:   "check ARCHIVE",
		Short: "Dry-run an install and report suspicious entry paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}
			problems, err := r.PreInstallCheck(args[0])
			if err != nil {
				return err
			}
			if len(problems) == 0 {
				cmd.Println(MsgPreCheckClean)
				return nil
			}
			cmd.Println(MsgPreCheckWarning)
			for _, p := range problems {
				cmd.Printf("  %s\n", p)
			}
			return nil
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle NAME",
		Short: "Enable or disable an installed mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}
			return r.Toggle(args[0])
		},
	}

	var removeYes bool
	removeCmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a mod and all its tracked files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !removeYes {
				cmd.Println("Removing a mod deletes its files from the game tree. Pass --yes to confirm.")
				return nil
			}
			r, err := registry()
			if err != nil {
				return err
			}
			return r.Delete(args[0])
		},
	}
	removeCmd.Flags().BoolVar(&removeYes, "yes", false, MsgFlagYes)

	modsCmd.AddCommand(listCmd, installCmd, checkCmd, toggleCmd, removeCmd)
	return modsCmd
}
