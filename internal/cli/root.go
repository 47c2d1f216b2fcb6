package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stagelist.dev/stagelist/internal/config"
	"stagelist.dev/stagelist/internal/output"
	"stagelist.dev/stagelist/internal/runtime"
	"stagelist.dev/stagelist/internal/tui"
)

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	configPath string
	debug      bool
	color      string
	logFile    string
}

// app carries state set up by the root command before a subcommand runs
type app struct {
	opts  rootOptions
	cfg   *config.Config
	splog *tui.Splog
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "stagelist",
		Short: "Stagelist edits an ordered list in batches that commit or roll back as a whole",
		Long: `Stagelist edits an ordered list in batches.

Inserts and deletes are applied to a working list. A commit promotes the working
list to the saved list only when every operation in the batch succeeded; otherwise
the batch is discarded and the working list is restored from the saved list.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.splog != nil {
				return a.splog.Close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "Path to the config file (default ~/.stagelist/config.json)")
	flags.BoolVar(&a.opts.debug, "debug", false, "Show debug output")
	flags.StringVar(&a.opts.color, "color", "", "Color output: auto, always or never")
	flags.StringVar(&a.opts.logFile, "log-file", "", "Also write logs to a file (--log-file=PATH, or bare --log-file for ~/.stagelist/logs/stagelist.log)")
	flags.Lookup("log-file").NoOptDefVal = tui.GetLogFilePath()

	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newShellCmd(a))
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// setup loads config, applies flag overrides, and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	path := a.opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	if a.opts.debug {
		cfg.Debug = &a.opts.debug
	}
	if a.opts.color != "" {
		cfg.Color = &a.opts.color
	}
	if a.opts.logFile != "" {
		cfg.LogFile = &a.opts.logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	mode, err := output.ParseColorMode(cfg.ColorMode())
	if err != nil {
		return err
	}
	output.ConfigureColor(mode, cmd.OutOrStdout())

	splog, err := tui.NewSplogWithOptions(tui.SplogOptions{
		Writer:      cmd.OutOrStdout(),
		LogFilePath: cfg.LogFilePath(),
		Debug:       cfg.IsDebug(),
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	a.splog = splog
	splog.Debug("using config %s", path)
	return nil
}

// newContext creates a runtime context with an empty list
func (a *app) newContext() *runtime.Context {
	return runtime.NewDefaultContext(a.splog)
}
