package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typst-templatr/typst-templatr/internal/library"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <template_name>",
		Short: "Remove a template link from the current directory",
		Long: `Delete the link for a template from the current directory. Only links
into the library are removed; a real file of the same name is refused. The
library copy is never touched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.openProject()
			if err != nil {
				return err
			}

			if err := project.Remove(args[0]); err != nil {
				return err
			}

			printerFor(cmd, false).Success(fmt.Sprintf("Removed %s.", library.CanonicalName(args[0])))
			return nil
		},
	}
}
