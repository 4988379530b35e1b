package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typst-templatr/typst-templatr/internal/branding"
	"github.com/typst-templatr/typst-templatr/internal/config"
)

func newInitCmd(a *app) *cobra.Command {
	var templatesPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file",
		Long: fmt.Sprintf(`Write ~/%s pointing at the template library directory.
An existing configuration is replaced. The library directory is not created.`, branding.ConfigFile()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Save(&config.Config{TemplatesPath: templatesPath}); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
			printerFor(cmd, false).Success("Config file created successfully.")
			return nil
		},
	}

	cmd.Flags().StringVar(&templatesPath, "templates_path", branding.DefaultLibrary(), "Directory holding the template library")
	return cmd
}
