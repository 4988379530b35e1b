package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typst-templatr/typst-templatr/internal/platform"
)

var errDoctorFailed = errors.New("some checks failed")

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			failed := false
			report := func(ok bool, msg string) {
				icon := "OK"
				if !ok {
					icon = "!!"
					failed = true
				}
				fmt.Fprintf(w, "  [%s] %s\n", icon, msg)
			}

			path, err := a.store.ResolvePath()
			if err != nil {
				report(false, err.Error())
				return errDoctorFailed
			}

			lib, err := a.openLibrary()
			if err != nil {
				report(false, fmt.Sprintf("config %s: %v", path, err))
			} else {
				report(true, "config "+path)

				count := 0
				seq, err := lib.List()
				if err == nil {
					for _, iterErr := range seq {
						if iterErr != nil {
							err = iterErr
							break
						}
						count++
					}
				}
				if err != nil {
					report(false, fmt.Sprintf("library %s: %v", lib.Dir(), err))
				} else {
					report(true, fmt.Sprintf("library %s (%d templates)", lib.Dir(), count))
				}
			}

			report(platform.IsSymlinkSupported(), "symbolic links supported")

			if failed {
				return errDoctorFailed
			}
			return nil
		},
	}
}
