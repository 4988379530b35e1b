package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.openLibrary()
			if err != nil {
				return err
			}

			seq, err := lib.List()
			if err != nil {
				return err
			}

			printer := printerFor(cmd, jsonOut)
			names := []string{}
			for name, err := range seq {
				if err != nil {
					return err
				}
				if printer.IsJSON() {
					names = append(names, name)
					continue
				}
				printer.Item(name)
			}

			if printer.IsJSON() {
				return printer.JSON(names)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}
