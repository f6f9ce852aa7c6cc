package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/fsutil"
	"github.com/d-kuro/fsprobe/internal/logging"
)

func newStatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Show whether a path exists and what it is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !fsutil.Exists(path) {
				return errors.NotFound(path + " does not exist")
			}

			modified, err := fsutil.LastModified(path)
			if err != nil {
				return err
			}
			size, err := fsutil.Size(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:     %s\n", path)
			fmt.Fprintf(out, "type:     %s\n", kindOf(path))
			fmt.Fprintf(out, "size:     %d\n", size)
			fmt.Fprintf(out, "modified: %s\n", logging.FormatDate(modified))
			return nil
		},
	}
}

func kindOf(path string) string {
	switch {
	case fsutil.IsFile(path):
		return "file"
	case fsutil.IsDir(path):
		return "directory"
	default:
		return "other"
	}
}
