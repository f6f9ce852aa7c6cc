// Package cmd implements the fsprobe command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/d-kuro/fsprobe/internal/config"
	"github.com/d-kuro/fsprobe/internal/fsutil"
	"github.com/d-kuro/fsprobe/internal/logging"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	configPath string
	logLevel   string
}

// app is filled in before any subcommand runs.
type app struct {
	cfg    *config.Config
	logger *logging.Logger
}

// NewRootCmd creates the fsprobe root command with all subcommands.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	a := &app{}

	cmd := &cobra.Command{
		Use:   "fsprobe",
		Short: "Probe the filesystem",
		Long: `fsprobe locates files by name, inspects and lists paths, splits path
strings, creates directories and runs commands. "fsprobe serve" exposes the
same operations as Model Context Protocol tools over stdio.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default "+config.DefaultFileName+")")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(
		newLocateCmd(a),
		newStatCmd(a),
		newLsCmd(),
		newPathCmd(),
		newMkdirCmd(a),
		newExecCmd(a),
		newServeCmd(a),
		NewVersionCmd(),
	)

	return cmd
}

// load reads the configuration and builds the logger. --log-level wins over
// both the file and LOG_LEVEL.
func (a *app) load(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = cfg.Logger(cmd.ErrOrStderr())
	fsutil.SetLogger(a.logger)
	return nil
}
