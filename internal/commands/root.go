package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/ask"
	"github.com/simonhull/firebird-suite/ask/config"
	"github.com/simonhull/firebird-suite/ask/input"
	"github.com/simonhull/firebird-suite/ask/logger"
	"github.com/simonhull/firebird-suite/ask/output"
	"github.com/simonhull/firebird-suite/ask/prompt"
)

// rootOptions holds the persistent flags and the config they resolve to.
type rootOptions struct {
	configPath string
	verbose    bool
	maxTries   int

	cfg *config.Config
}

// RootCmd creates and returns the root command for the ask CLI
func RootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask questions from shell scripts",
		Long: `Ask prompts for a value on the terminal and prints the answer to stdout.

Questions, prefixes and notices go to stderr, so answers can be captured:

  name=$(ask text "Your name")
  license=$(ask select License MIT GPL Apache)

Exits non-zero when input ends or the retry limit is reached.`,
		Version:      ask.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default ./"+config.FileName+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().IntVarP(&opts.maxTries, "max-tries", "n", 0, "Give up after this many invalid answers (0 = never)")

	cmd.AddCommand(newTextCmd(opts))
	cmd.AddCommand(newIntCmd(opts))
	cmd.AddCommand(newConfirmCmd(opts))
	cmd.AddCommand(newSelectCmd(opts))
	cmd.AddCommand(newPasswordCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ask v%s\n", ask.Version)
		},
	})

	return cmd
}

// Execute runs the root command
func Execute() error {
	return RootCmd().Execute()
}

// setupOutput points styled output and logging at stderr.
func (o *rootOptions) setupOutput(cmd *cobra.Command, level logger.Level) {
	output.SetOutput(cmd.ErrOrStderr())
	output.SetVerbose(o.verbose)

	if o.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.NewLogger(level, cmd.ErrOrStderr()))
}

// load reads .env and the config file, then installs the configured
// formatting rules as the process default.
func (o *rootOptions) load(cmd *cobra.Command) error {
	if err := config.LoadEnv(".env"); err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-tries") {
		cfg.MaxTries = o.maxTries
	}
	if cfg.MaxTries < 0 {
		return fmt.Errorf("--max-tries cannot be negative")
	}

	o.setupOutput(cmd, cfg.Level())
	cfg.Apply()
	o.cfg = cfg

	output.Verbose(fmt.Sprintf("Config: %s", o.configSource()))
	if cfg.MaxTries > 0 {
		output.Verbose(fmt.Sprintf("Giving up after %d invalid answers", cfg.MaxTries))
	}

	logger.Debug("config loaded",
		logger.F("file", o.configPath),
		logger.F("max_tries", cfg.MaxTries),
		logger.F("list_msg_pos", cfg.Format.ListMsgPos))
	return nil
}

// configSource names where the settings came from.
func (o *rootOptions) configSource() string {
	if o.configPath != "" {
		return o.configPath
	}
	if _, err := os.Stat(config.FileName); err == nil {
		return config.FileName
	}
	return "built-in defaults"
}

// session opens the streams of cmd: stdin for answers, stderr for
// questions.
func (o *rootOptions) session(cmd *cobra.Command) *input.Session {
	return input.NewSession(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt.WithLogger(logger.Default()))
}

// limit applies the configured retry limit to p.
func limit[T any](o *rootOptions, p prompt.Prompt[T]) prompt.Prompt[T] {
	if o.cfg != nil && o.cfg.MaxTries > 0 {
		return p.MaxTries(o.cfg.MaxTries)
	}
	return p
}
