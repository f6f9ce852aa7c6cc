package cmd

import (
	"github.com/spf13/cobra"

	"github.com/d-kuro/fsprobe/internal/fsutil"
)

func newMkdirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory and any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fsutil.MkdirAll(args[0]); err != nil {
				return err
			}
			a.logger.Debug("Directory ready", "path", args[0])
			return nil
		},
	}
}
