// Package cli defines the Cobra command tree for the typst-templatr CLI. Each
// file registers one command with the root. Commands load the configuration,
// delegate to the library and linker packages, and only handle flags and
// output formatting.
package cli
