package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d-kuro/fsprobe/internal/fsutil"
)

// lsFlags holds the flags for the ls command
type lsFlags struct {
	dirs  bool
	files bool
}

func newLsCmd() *cobra.Command {
	opts := &lsFlags{}

	cmd := &cobra.Command{
		Use:   "ls <dir>",
		Short: "List the entries of a directory",
		Long:  `List one directory level. Directories are printed with a trailing slash.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				entries []fsutil.Entry
				err     error
			)
			switch {
			case opts.dirs:
				entries, err = fsutil.ListDirs(args[0])
			case opts.files:
				entries, err = fsutil.ListFiles(args[0])
			default:
				entries, err = fsutil.List(args[0], fsutil.KindAll)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				if e.IsDir {
					fmt.Fprintln(out, e.Name+"/")
					continue
				}
				fmt.Fprintln(out, e.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.dirs, "dirs", "d", false, "List directories only")
	cmd.Flags().BoolVarP(&opts.files, "files", "f", false, "List regular files only")
	cmd.MarkFlagsMutuallyExclusive("dirs", "files")

	return cmd
}
