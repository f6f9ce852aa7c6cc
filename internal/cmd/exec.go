package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/shell"
)

// execFlags holds the flags for the exec command
type execFlags struct {
	timeout time.Duration
}

func newExecCmd(a *app) *cobra.Command {
	opts := &execFlags{}

	cmd := &cobra.Command{
		Use:   "exec <command line...>",
		Short: "Run a command line and print its combined output",
		Long: `Run the arguments, joined with spaces, through the system shell. Standard
error is merged into standard output. The command fails with the child's
non-zero exit status reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdline := strings.Join(args, " ")

			res, err := shell.NewExecutor(a.cfg.Exec.Timeout).ReadOutputTimeout(cmd.Context(), cmdline, opts.timeout)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), res.Output)

			a.logger.Debug("Command finished",
				"command", cmdline,
				"exit_code", res.ExitCode,
				"elapsed", res.Elapsed)

			if res.ExitCode != 0 {
				return errors.New("command exited with status %d", res.ExitCode)
			}
			return nil
		},
	}

	cmd.Flags().DurationVarP(&opts.timeout, "timeout", "t", 0, "Command timeout (default exec.timeout from the config)")
	// everything after the command name belongs to the command
	cmd.Flags().SetInterspersed(false)

	return cmd
}
