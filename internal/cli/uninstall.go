package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typst-templatr/typst-templatr/internal/library"
	"github.com/typst-templatr/typst-templatr/internal/linker"
)

func newUninstallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <template_name>",
		Short: "Delete a template from the library",
		Long: `Delete a template from the library. Links to it in project directories
are left in place and become dangling; see the status command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.openLibrary()
			if err != nil {
				return err
			}

			name := library.CanonicalName(args[0])
			if err := lib.Uninstall(name); err != nil {
				return err
			}

			printer := printerFor(cmd, false)
			printer.Success(fmt.Sprintf("Uninstalled %s.", name))

			// Only the current directory can be checked for links left behind.
			cwd, err := a.getwd()
			if err != nil {
				return nil
			}
			links, err := linker.NewProject(a.fs, a.linker, lib, cwd, a.logger).Status()
			if err != nil {
				return nil
			}
			for _, l := range links {
				if l.Name == name && l.Dangling {
					printer.Warn(fmt.Sprintf("%s in the current directory now points to a missing template", name))
				}
			}
			return nil
		},
	}
}
