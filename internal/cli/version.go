package cli

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/typst-templatr/typst-templatr/internal/branding"
)

// formatVersion normalizes a release version to "vMAJOR.MINOR.PATCH[-pre]".
// Non-semver builds such as "dev" are returned unchanged.
func formatVersion(version string) string {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return version
	}
	return "v" + v.String()
}

func newVersionCmd(a *app) *cobra.Command {
	var short, jsonOut bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version := formatVersion(a.buildVersion)

			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			}

			if jsonOut {
				return printerFor(cmd, true).JSON(map[string]string{
					"version": version,
					"commit":  a.buildCommit,
					"date":    a.buildDate,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s)\n",
				branding.CLIName(), version, a.buildCommit, a.buildDate)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print version info as JSON")
	return cmd
}
