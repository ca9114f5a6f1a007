package savekeeper

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/savekeeper/pkg/namegen"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

const timestampLayout = "2006-01-02 15:04:05"

func newSlotsCmd() *cobra.Command {
	var profileRoot string

	slotsCmd := &cobra.Command{
		Use:   "slots",
		Short: MsgSlotsShort,
	}
	slotsCmd.PersistentFlags().StringVarP(&profileRoot, "profile", "p", "", MsgFlagProfile)
	_ = slotsCmd.MarkPersistentFlagRequired("profile")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the profile's slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := newStore(profileRoot).Slots()
			if len(infos) == 0 {
				cmd.Println(MsgNoSlots)
				return nil
			}
			for _, info := range infos {
				marker := " "
				if info.Active {
					marker = "*"
				}
				saved := "no active save"
				if info.HasActiveSave {
					saved = "saved " + types.TimestampTime(info.ActiveSaveTimestamp).Local().Format(timestampLayout)
				}
				cmd.Printf("%s %s  %s\n", marker, formatBold(info.Name), formatDim(saved))
				cmd.Printf("    id: %s  backups: %d\n", info.ID, info.BackupCount)
			}
			return nil
		},
	}

	var createName string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new empty slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := createName
			if name == "" {
				name = namegen.Generate()
			}
			id, err := newStore(profileRoot).CreateSlot(name)
			if err != nil {
				return err
			}
			cmd.Printf("Created slot %q (%s)\n", name, id)
			return nil
		},
	}
	createCmd.Flags().StringVar(&createName, "name", "", MsgFlagName)

	var initName string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the first slot from the existing game save",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := initName
			if name == "" {
				name = namegen.Generate()
			}
			id, err := newStore(profileRoot).InitializeFromGameSave(name)
			if err != nil {
				return err
			}
			cmd.Printf("Initialized slot %q (%s) from the current save\n", name, id)
			return nil
		},
	}
	initCmd.Flags().StringVar(&initName, "name", "", MsgFlagName)

	renameCmd := &cobra.Command{
		Use:   "rename SLOT_ID NEW_NAME",
		Short: "Rename a slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newStore(profileRoot).RenameSlot(args[0], args[1])
		},
	}

	var deleteYes bool
	deleteCmd := &cobra.Command{
		Use:   "delete SLOT_ID",
		Short: "Delete a slot and all its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !deleteYes {
				cmd.Println("Deleting a slot removes all its backups. Pass --yes to confirm.")
				return nil
			}
			return newStore(profileRoot).DeleteSlot(args[0])
		},
	}
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, MsgFlagYes)

	loadCmd := &cobra.Command{
		Use:   "load SLOT_ID",
		Short: "Make a slot's save the live one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newStore(profileRoot).LoadSlot(args[0])
			if err != nil {
				return err
			}
			if res.FreshBaseline {
				cmd.Println(MsgFreshBaseline)
			} else {
				cmd.Println("Slot loaded.")
			}
			return nil
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save SLOT_ID",
		Short: "Snapshot the live save into a slot's active save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newStore(profileRoot).SaveActiveGameState(args[0])
		},
	}

	var copyDest string
	var copyYes bool
	copyCmd := &cobra.Command{
		Use:   "copy SLOT_ID",
		Short: "Copy a slot into another profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := newStore(profileRoot)
			dest := newStore(copyDest)
			if dest.HasSlot(args[0]) && !copyYes {
				cmd.Println(MsgOverwritePrompt)
				cmd.Println(MsgCopyDeclined)
				return nil
			}
			if err := src.CopySlotTo(dest, args[0]); err != nil {
				return err
			}
			cmd.Println("Slot copied.")
			return nil
		},
	}
	copyCmd.Flags().StringVar(&copyDest, "dest", "", "Destination profile root")
	copyCmd.Flags().BoolVar(&copyYes, "yes", false, MsgFlagYes)
	_ = copyCmd.MarkFlagRequired("dest")

	slotsCmd.AddCommand(listCmd, createCmd, initCmd, renameCmd, deleteCmd, loadCmd, saveCmd, copyCmd)
	return slotsCmd
}

// localTime formats a metadata timestamp for display.
func localTime(ts float64) string {
	if ts == 0 {
		return "-"
	}
	return types.TimestampTime(ts).Local().Format(timestampLayout)
}
