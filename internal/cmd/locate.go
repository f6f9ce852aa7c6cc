package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/fsutil"
	"github.com/d-kuro/fsprobe/internal/locator"
	"github.com/d-kuro/fsprobe/internal/logging"
	"github.com/d-kuro/fsprobe/internal/stopwatch"
)

func newLocateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locate <name> [root]",
		Short: "Find a file by name under a directory tree",
		Long: `Search root (default: search_root from the config) depth-first for a regular
file whose base name equals the final segment of name. The first match is
printed with its modification time; the command fails when nothing matches.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := a.cfg.SearchRoot
			if len(args) == 2 {
				root = args[1]
			}

			if !fsutil.DirExists(root) {
				return errors.NotFound("search root " + root + " is not a readable directory")
			}

			q := locator.NewQuery(args[0])
			sw := stopwatch.Started()
			if err := locator.New(nil, a.logger.WithComponent("locator")).Locate(cmd.Context(), q, root); err != nil {
				return err
			}
			sw.End()

			a.logger.Debug("Search finished",
				"target", q.Target,
				"root", root,
				"found", q.Found,
				"elapsed", sw.String())

			if !q.Found {
				return errors.NotFound(fmt.Sprintf("%s not found under %s", q.Target, root))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", q.Path, logging.FormatDate(q.Modified))
			return nil
		},
	}
}
