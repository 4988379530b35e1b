package linker

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/typst-templatr/typst-templatr/internal/library"
	"github.com/typst-templatr/typst-templatr/internal/platform"
)

var (
	ErrTemplateNotFound = errors.New("template not found in library")
	ErrAlreadyExists    = errors.New("file already exists in current directory")
	ErrLinkFailed       = errors.New("link could not be created")
	ErrNotFound         = errors.New("template is not linked in current directory")
	ErrNotManaged       = errors.New("not a link to a library template")
	ErrDeleteFailed     = errors.New("link could not be removed")
)

// Add links the library template called name into the working directory and
// returns the link path. Any existing entry of that name blocks the link,
// including a dangling link.
func (p *Project) Add(name string) (string, error) {
	name = library.CanonicalName(name)
	if err := library.ValidateName(name); err != nil {
		return "", err
	}

	src := p.library.Path(name)
	dst := p.LinkPath(name)

	ok, err := p.library.Has(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, name, err)
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	if _, err := platform.Lstat(p.fs, dst); err == nil {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: inspecting %s: %w", ErrLinkFailed, dst, err)
	}

	kind, err := platform.CreateReference(p.fs, p.linker, src, dst)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrLinkFailed, dst, err)
	}

	p.logger.Debug("linked template",
		slog.String("name", name),
		slog.String("link", dst),
		slog.String("target", src),
		slog.String("kind", kind.String()))
	return dst, nil
}

// Remove deletes the link for template name from the working directory. Only
// a symbolic link into the library is removed; a real file, a directory or a
// link elsewhere fails with ErrNotManaged and is left alone. The library copy
// is never touched.
func (p *Project) Remove(name string) error {
	name = library.CanonicalName(name)
	if err := library.ValidateName(name); err != nil {
		return err
	}

	dst := p.LinkPath(name)

	info, err := platform.Lstat(p.fs, dst)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("%w: inspecting %s: %w", ErrDeleteFailed, dst, err)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return fmt.Errorf("%w: %s is not a symbolic link", ErrNotManaged, dst)
	}

	target, err := platform.ReadLink(p.fs, dst)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrNotManaged, dst, err)
	}
	if !p.library.Contains(target) {
		return fmt.Errorf("%w: %s points to %s", ErrNotManaged, dst, target)
	}

	if err := p.fs.Remove(dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDeleteFailed, dst, err)
	}

	p.logger.Debug("unlinked template", slog.String("name", name), slog.String("link", dst))
	return nil
}
