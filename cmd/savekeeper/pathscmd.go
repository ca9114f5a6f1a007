package savekeeper

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/savekeeper/pkg/config"
	"github.com/arthur-debert/savekeeper/pkg/filesystem"
	"github.com/arthur-debert/savekeeper/pkg/paths"
)

func newPathsCmd() *cobra.Command {
	pathsCmd := &cobra.Command{
		Use:   "paths",
		Short: MsgPathsShort,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [PATH]",
		Short: "Check that a directory is a valid game installation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) == 1 {
				root = args[0]
			}
			root, err := resolveGameRoot(root)
			if err != nil {
				return err
			}
			if err := paths.ValidateGameRoot(filesystem.NewOS(), root); err != nil {
				for _, problem := range paths.ValidationProblems(err) {
					cmd.Printf("  %s\n", problem)
				}
				return err
			}
			cmd.Println(MsgGameRootValid)
			return nil
		},
	}

	discoverCmd := &cobra.Command{
		Use:   "discover",
		Short: "Find the game install and candidate save locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := filesystem.NewOS()

			gameRoot, _ := resolveGameRoot("")
			if gameRoot == "" {
				gameRoot = paths.DiscoverGameRoot(fs)
			}
			if gameRoot != "" {
				cmd.Printf("Game root: %s\n", gameRoot)
			} else {
				cmd.Println("Game root: not found")
			}

			locations := paths.DiscoverSaveLocations(fs, gameRoot)
			if len(locations) == 0 {
				cmd.Println(MsgNoLocations)
				return nil
			}
			for _, loc := range locations {
				cmd.Printf("%s  %s\n", formatBold(loc.Label), loc.Path)
			}
			return nil
		},
	}

	setGameCmd := &cobra.Command{
		Use:   "set-game PATH",
		Short: "Validate and persist the game installation root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := paths.ValidateGameRoot(filesystem.NewOS(), args[0]); err != nil {
				for _, problem := range paths.ValidationProblems(err) {
					cmd.Printf("  %s\n", problem)
				}
				return err
			}
			cfg, err := config.Load("")
			if err != nil {
				return err
			}
			cfg.GamePath = args[0]
			if err := config.Save(cfg, ""); err != nil {
				return err
			}
			cmd.Printf("Game root saved to %s\n", config.Path())
			return nil
		},
	}

	pathsCmd.AddCommand(validateCmd, discoverCmd, setGameCmd)
	return pathsCmd
}
