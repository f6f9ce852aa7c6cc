package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d-kuro/fsprobe/internal/pathutil"
)

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Split and join path strings",
		Long:  `Path string helpers. Backslashes are treated as separators and printed as forward slashes.`,
	}

	cmd.AddCommand(
		pathFunc("combine <a> <b>", "Join two paths with a single separator", 2, func(args []string) (string, error) {
			return pathutil.Combine(args[0], args[1]), nil
		}),
		pathFunc("base <path>", "Print the final path segment", 1, func(args []string) (string, error) {
			return pathutil.FileName(args[0]), nil
		}),
		pathFunc("ext <path>", "Print the extension, dot included", 1, func(args []string) (string, error) {
			return pathutil.Extension(args[0]), nil
		}),
		pathFunc("stem <name>", "Print the name without its extension", 1, func(args []string) (string, error) {
			return pathutil.Stem(args[0])
		}),
		pathFunc("dir <path>", "Print everything before the final segment", 1, func(args []string) (string, error) {
			return pathutil.DirName(args[0]), nil
		}),
	)

	return cmd
}

func pathFunc(use, short string, nargs int, fn func(args []string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := fn(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
