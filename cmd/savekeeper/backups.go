package savekeeper

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/savekeeper/pkg/profile"
)

func newBackupsCmd() *cobra.Command {
	var profileRoot string
	var slotID string

	backupsCmd := &cobra.Command{
		Use:   "backups",
		Short: MsgBackupsShort,
	}
	backupsCmd.PersistentFlags().StringVarP(&profileRoot, "profile", "p", "", MsgFlagProfile)
	backupsCmd.PersistentFlags().StringVarP(&slotID, "slot", "s", "", "Slot id the backups belong to")
	_ = backupsCmd.MarkPersistentFlagRequired("profile")
	_ = backupsCmd.MarkPersistentFlagRequired("slot")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a slot's backups, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := newStore(profileRoot).Backups(slotID)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				cmd.Println(MsgNoBackups)
				return nil
			}
			for _, info := range infos {
				cmd.Printf("%s  %s\n", formatBold(info.Name), formatDim(localTime(info.Timestamp)))
				cmd.Printf("    id: %s\n", info.ID)
			}
			return nil
		},
	}

	var createName string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Back up the current live save into the slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := newStore(profileRoot).CreateBackup(slotID, createName)
			if err != nil {
				return err
			}
			cmd.Printf("Created backup %s\n", id)
			return nil
		},
	}
	createCmd.Flags().StringVar(&createName, "name", "", "Backup name (defaults to the slot's counter)")

	var restoreBackupCurrent bool
	restoreCmd := &cobra.Command{
		Use:   "restore BACKUP_ID",
		Short: "Restore a backup over the live save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := newStore(profileRoot).ActivateBackup(slotID, args[0], profile.ActivateOptions{
				BackupCurrent: restoreBackupCurrent,
			})
			if err != nil {
				return err
			}
			cmd.Println("Backup restored.")
			return nil
		},
	}
	restoreCmd.Flags().BoolVar(&restoreBackupCurrent, "backup-current", false,
		"Auto-backup the currently loaded slot before restoring")

	renameCmd := &cobra.Command{
		Use:   "rename BACKUP_ID NEW_NAME",
		Short: "Rename a backup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newStore(profileRoot).RenameBackup(slotID, args[0], args[1])
		},
	}

	var deleteYes bool
	deleteCmd := &cobra.Command{
		Use:   "delete BACKUP_ID",
		Short: "Delete a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !deleteYes {
				cmd.Println("Deleting a backup is permanent. Pass --yes to confirm.")
				return nil
			}
			return newStore(profileRoot).DeleteBackup(slotID, args[0])
		},
	}
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, MsgFlagYes)

	backupsCmd.AddCommand(listCmd, createCmd, restoreCmd, renameCmd, deleteCmd)
	return backupsCmd
}
