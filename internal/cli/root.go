package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/typst-templatr/typst-templatr/internal/branding"
	"github.com/typst-templatr/typst-templatr/internal/config"
	"github.com/typst-templatr/typst-templatr/internal/library"
	"github.com/typst-templatr/typst-templatr/internal/linker"
	"github.com/typst-templatr/typst-templatr/internal/output"
	"github.com/typst-templatr/typst-templatr/internal/platform"
)

// app carries the collaborators shared by all commands.
type app struct {
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool

	store  *config.Store
	fs     afero.Fs
	linker platform.Linker
	getwd  func() (string, error)
	logger *slog.Logger
}

func newApp(version, commit, date string) *app {
	return &app{
		buildVersion: version,
		buildCommit:  commit,
		buildDate:    date,
		store:        config.NewStore(),
		fs:           afero.NewOsFs(),
		linker:       platform.OSLinker{},
		getwd:        os.Getwd,
		logger:       slog.New(slog.DiscardHandler),
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` keeps a single library of reusable Typst templates and activates
them in a project by linking them into the current directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Print debug logs to stderr")

	cmd.AddCommand(
		newInitCmd(a),
		newListCmd(a),
		newInstallCmd(a),
		newUninstallCmd(a),
		newAddCmd(a),
		newRemoveCmd(a),
		newStatusCmd(a),
		newDoctorCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// Execute runs the root command with build info injected via ldflags. Any
// error is printed to stderr before it is returned.
func Execute(version, commit, date string) error {
	cmd := newRootCmd(newApp(version, commit, date))
	return run(cmd, os.Stderr)
}

func run(cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.Execute()
	if err != nil {
		output.NewPrinter(stderr, false, output.IsTTY(stderr)).Error(err)
	}
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// missingConfigError is the fixed instruction shown when no config file
// exists. It unwraps to config.ErrNotFound.
type missingConfigError struct {
	err error
}

func (e *missingConfigError) Error() string {
	return fmt.Sprintf("Config file does not exist. Use `%s init --templates_path <path>` to create it.", branding.CLIName())
}

func (e *missingConfigError) Unwrap() error { return e.err }

// loadConfig reads the config file and turns a missing one into the
// instruction to run init.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := a.store.Load()
	if errors.Is(err, config.ErrNotFound) {
		a.logger.Debug("config not found", slog.String("error", err.Error()))
		return nil, &missingConfigError{err: err}
	}
	return cfg, err
}

// openLibrary opens the configured template library.
func (a *app) openLibrary() (*library.Library, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	dir, err := a.store.LibraryDir(cfg)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(dir) {
		cwd, err := a.getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	a.logger.Debug("using library", slog.String("dir", dir))
	return library.New(a.fs, dir, a.logger), nil
}

// openProject opens the current working directory as a project.
func (a *app) openProject() (*linker.Project, error) {
	lib, err := a.openLibrary()
	if err != nil {
		return nil, err
	}

	cwd, err := a.getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	return linker.NewProject(a.fs, a.linker, lib, cwd, a.logger), nil
}

func printerFor(cmd *cobra.Command, jsonMode bool) *output.Printer {
	w := cmd.OutOrStdout()
	return output.NewPrinter(w, jsonMode, output.IsTTY(w))
}
