package linker

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/typst-templatr/typst-templatr/internal/library"
	"github.com/typst-templatr/typst-templatr/internal/platform"
)

// Project is a working directory that templates get linked into.
type Project struct {
	fs      afero.Fs
	linker  platform.Linker
	library *library.Library
	workDir string
	logger  *slog.Logger
}

// Link is a template link found in a project.
type Link struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Target   string `json:"target"`
	Dangling bool   `json:"dangling"`
}

// NewProject returns a Project for workDir that links to templates in lib.
// A nil logger discards output.
func NewProject(fs afero.Fs, l platform.Linker, lib *library.Library, workDir string, logger *slog.Logger) *Project {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Project{
		fs:      fs,
		linker:  l,
		library: lib,
		workDir: filepath.Clean(workDir),
		logger:  logger,
	}
}

// LinkPath returns where the link for template name lives in the project.
func (p *Project) LinkPath(name string) string {
	return filepath.Join(p.workDir, library.CanonicalName(name))
}

// Status lists the links in the working directory that point into the
// library, in name order. Links whose library copy has been uninstalled are
// reported as dangling.
func (p *Project) Status() ([]Link, error) {
	infos, err := afero.ReadDir(p.fs, p.workDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p.workDir, err)
	}

	var links []Link
	for _, info := range infos {
		if info.Mode()&os.ModeSymlink == 0 || !library.IsTemplate(info.Name()) {
			continue
		}

		path := filepath.Join(p.workDir, info.Name())
		target, err := platform.ReadLink(p.fs, path)
		if err != nil {
			p.logger.Debug("skipping unreadable link", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		if !p.library.Contains(target) {
			continue
		}

		_, statErr := p.fs.Stat(target)
		links = append(links, Link{
			Name:     info.Name(),
			Path:     path,
			Target:   target,
			Dangling: errors.Is(statErr, os.ErrNotExist),
		})
	}

	return links, nil
}
