package main

import (
	"os"

	"github.com/typst-templatr/typst-templatr/internal/cli"
	"github.com/typst-templatr/typst-templatr/internal/output"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(output.ExitCode(cli.Execute(version, commit, date)))
}
