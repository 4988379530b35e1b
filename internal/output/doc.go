// Package output renders command results for the typst-templatr CLI.
//
// A Printer writes either human-readable lines, styled with lipgloss when
// the destination is a terminal, or JSON documents when --json is set:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success("Template installed.")
//	printer.Item("report.typ")
//
// Errors are printed to standard error by the root command and map to exit
// code 1 through ExitCode.
package output
