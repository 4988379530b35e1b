package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/typst-templatr/typst-templatr/internal/library"
)

func newInstallCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "install <template_path>",
		Short: "Copy a template into the library",
		Long: `Copy a Typst file into the template library. The .typ extension is
appended when missing, and a bare file name is looked up in the current
directory. An installed template of the same name is only replaced with --force.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.openLibrary()
			if err != nil {
				return err
			}

			cwd, err := a.getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			source, err := a.store.ExpandHome(args[0])
			if err != nil {
				return err
			}

			name, err := lib.Install(source, cwd, library.InstallOptions{Overwrite: force})
			if err != nil {
				return err
			}

			a.logger.Debug("install complete", slog.String("name", name))
			printerFor(cmd, false).Success(fmt.Sprintf("Installed %s.", name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an installed template of the same name")
	return cmd
}
