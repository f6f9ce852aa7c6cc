package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d-kuro/fsprobe/pkg/version"
)

// versionFlags holds the flags for the version command
type versionFlags struct {
	json  bool
	short bool
}

// NewVersionCmd creates a new version command
func NewVersionCmd() *cobra.Command {
	opts := &versionFlags{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the fsprobe release, commit and build date. Values not injected at
build time are read from the Go build stamp.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := version.GetVersion()
			out := cmd.OutOrStdout()

			switch {
			case opts.json:
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(v); err != nil {
					return fmt.Errorf("error encoding version info: %w", err)
				}
			case opts.short:
				fmt.Fprintln(out, v.Version)
			default:
				fmt.Fprintln(out, v.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.json, "json", "j", false, "Output version information as JSON")
	cmd.Flags().BoolVarP(&opts.short, "short", "s", false, "Print only the version")
	cmd.MarkFlagsMutuallyExclusive("json", "short")
	return cmd
}
