package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <template_name>",
		Short: "Link a template into the current directory",
		Long: `Create a symbolic link in the current directory pointing at a library
template. Edits to the library copy show up through the link.

Example:
  typst-templatr add report`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.openProject()
			if err != nil {
				return err
			}

			dst, err := project.Add(args[0])
			if err != nil {
				return err
			}

			printerFor(cmd, false).Success(fmt.Sprintf("Added %s.", filepath.Base(dst)))
			return nil
		},
	}
}
