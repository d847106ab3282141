package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/askiada/go-textpipe/internal/buildinfo"
)

// NewCmd creates the version command.
func NewCmd() *cobra.Command {
	var (
		flagShort bool
		flagJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flagShort || !flagJSON {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "textpipe %s\n", buildinfo.Summary())

				return err
			}

			// Detailed metadata goes to stdout, a human friendly line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "textpipe version: %s\n", buildinfo.Summary())

			out := map[string]any{
				"version":   buildinfo.Version,
				"commit":    buildinfo.Commit,
				"date":      buildinfo.Date,
				"built_by":  buildinfo.BuiltBy,
				"go":        runtime.Version(),
				"go_os":     runtime.GOOS,
				"go_arch":   runtime.GOARCH,
				"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
			}

			return encodeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")

	return cmd
}
