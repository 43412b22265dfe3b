package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/ask/config"
	"github.com/simonhull/firebird-suite/ask/logger"
	"github.com/simonhull/firebird-suite/ask/output"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the ask configuration",
		// The config file may not exist yet, or be the one being replaced.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.setupOutput(cmd, logger.LevelWarn)
		},
	}

	cmd.AddCommand(newConfigInitCmd(opts))

	return cmd
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write ` + config.FileName + ` (or the --config path) with every setting at its
default value, ready to edit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.FileName
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			output.Verbose(fmt.Sprintf("Writing default settings to %s", path))
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			output.Success(fmt.Sprintf("Created %s", path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
