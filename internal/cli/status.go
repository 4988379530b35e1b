package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typst-templatr/typst-templatr/internal/linker"
)

func newStatusCmd(a *app) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show template links in the current directory",
		Long: `List the links in the current directory that point into the template
library. Links whose template has been uninstalled are marked as missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.openProject()
			if err != nil {
				return err
			}

			links, err := project.Status()
			if err != nil {
				return err
			}

			printer := printerFor(cmd, jsonOut)
			if jsonOut {
				if links == nil {
					links = []linker.Link{}
				}
				return printer.JSON(links)
			}

			if len(links) == 0 {
				printer.Dim("No templates linked in this directory.")
				return nil
			}
			for _, l := range links {
				line := fmt.Sprintf("%s -> %s", l.Name, l.Target)
				if l.Dangling {
					line += " (missing)"
				}
				printer.Item(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}
