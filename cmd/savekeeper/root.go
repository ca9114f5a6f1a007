package savekeeper

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/savekeeper/internal/version"
	"github.com/arthur-debert/savekeeper/pkg/config"
	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/filesystem"
	"github.com/arthur-debert/savekeeper/pkg/guard"
	"github.com/arthur-debert/savekeeper/pkg/logging"
	"github.com/arthur-debert/savekeeper/pkg/profile"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "savekeeper",
		Short: MsgRootShort,
		Long: `savekeeper manages save profiles and mods for FANTASY LIFE i: named save
slots with manual backups, switching between them safely, and reversible
mod installation into the game tree.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newSlotsCmd())
	rootCmd.AddCommand(newBackupsCmd())
	rootCmd.AddCommand(newModsCmd())
	rootCmd.AddCommand(newPathsCmd())
	rootCmd.AddCommand(newBypassCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command. Called by main.main().
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("savekeeper %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}

// newStore builds a profile store for CLI use. The CLI runs one-shot
// with no game-process poller, so the guard never blocks here; hosts
// that poll wire a real signal through the library instead.
func newStore(profileRoot string) *profile.Store {
	return profile.New(filesystem.NewOS(), types.RealClock(), guard.Never(), profileRoot)
}

// resolveGameRoot picks the game root from the flag or the saved config.
func resolveGameRoot(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	cfg, err := config.Load("")
	if err != nil {
		return "", err
	}
	if cfg.GamePath == "" {
		return "", errors.New(errors.ErrPreconditionFailed,
			"no game path configured; pass --game or run 'savekeeper paths set-game'")
	}
	return cfg.GamePath, nil
}
