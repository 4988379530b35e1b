package library

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

var (
	ErrDirectoryUnreadable = errors.New("templates directory could not be read")
	ErrSourceMissing       = errors.New("template source does not exist")
	ErrInvalidName         = errors.New("invalid template name")
	ErrAlreadyInstalled    = errors.New("template is already installed")
	ErrWriteFailure        = errors.New("templates directory could not be written")
	ErrNotInstalled        = errors.New("template is not installed")
)

// listBatch is how many directory entries List reads at a time.
const listBatch = 64

// InstallOptions controls Install.
type InstallOptions struct {
	// Overwrite replaces an existing template of the same name.
	Overwrite bool
}

// Library is the template directory on a filesystem.
type Library struct {
	fs     afero.Fs
	dir    string
	logger *slog.Logger
}

// New returns a Library rooted at dir. A relative dir is resolved against the
// process working directory. A nil logger discards output.
func New(fs afero.Fs, dir string, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Library{fs: fs, dir: filepath.Clean(dir), logger: logger}
}

// Dir returns the library directory.
func (l *Library) Dir() string {
	return l.dir
}

// Path returns the library path of the template called name.
func (l *Library) Path(name string) string {
	return filepath.Join(l.dir, CanonicalName(name))
}

// Has reports whether a template called name exists in the library.
func (l *Library) Has(name string) (bool, error) {
	return afero.Exists(l.fs, l.Path(name))
}

// List returns the template names in the library in directory order. The
// directory is checked immediately; it is opened and read lazily as the
// sequence is consumed and closed when ranging stops. The sequence can be
// ranged over once.
func (l *Library) List() (iter.Seq2[string, error], error) {
	info, err := l.fs.Stat(l.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnreadable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryUnreadable, l.dir)
	}

	done := false
	return func(yield func(string, error) bool) {
		if done {
			return
		}
		done = true

		dir, err := l.fs.Open(l.dir)
		if err != nil {
			yield("", fmt.Errorf("%w: %w", ErrDirectoryUnreadable, err))
			return
		}
		defer dir.Close()

		for {
			entries, err := dir.Readdir(listBatch)
			for _, entry := range entries {
				if entry.IsDir() || !IsTemplate(entry.Name()) {
					continue
				}
				if !yield(entry.Name(), nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) || (err == nil && len(entries) == 0) {
				return
			}
			if err != nil {
				yield("", fmt.Errorf("%w: %w", ErrDirectoryUnreadable, err))
				return
			}
		}
	}, nil
}

// Install copies the template at source into the library and returns the
// installed name. source gets the template extension appended if it lacks
// it. A bare file name is looked up in workDir; a relative path with
// separators is anchored at workDir too.
func (l *Library) Install(source, workDir string, opts InstallOptions) (string, error) {
	source = CanonicalName(source)
	if !filepath.IsAbs(source) {
		source = filepath.Join(workDir, source)
	}

	name := filepath.Base(source)
	if err := ValidateName(name); err != nil {
		return "", err
	}

	info, err := l.fs.Stat(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceMissing, source)
		}
		return "", fmt.Errorf("%w: %w", ErrSourceMissing, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrSourceMissing, source)
	}

	dst := filepath.Join(l.dir, name)
	if !opts.Overwrite {
		exists, err := afero.Exists(l.fs, dst)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
		if exists {
			return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrAlreadyInstalled, name)
		}
	}

	if err := l.fs.MkdirAll(l.dir, 0755); err != nil {
		return "", fmt.Errorf("%w: creating %s: %w", ErrWriteFailure, l.dir, err)
	}

	if err := l.copyFile(source, dst, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("%w: copying %s to %s: %w", ErrWriteFailure, source, dst, err)
	}

	l.logger.Debug("installed template", slog.String("name", name), slog.String("source", source), slog.String("path", dst))
	return name, nil
}

// copyFile stages src in a uniquely named sibling of dst and renames it into
// place, so dst is never observed half written.
func (l *Library) copyFile(src, dst string, perm os.FileMode) error {
	in, err := l.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := filepath.Join(filepath.Dir(dst), "."+filepath.Base(dst)+"."+uuid.NewString()+".tmp")
	out, err := l.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = l.fs.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		_ = l.fs.Remove(tmp)
		return err
	}

	if err := l.fs.Rename(tmp, dst); err != nil {
		_ = l.fs.Remove(tmp)
		return err
	}
	return nil
}

// Uninstall deletes the template called name from the library.
func (l *Library) Uninstall(name string) error {
	name = CanonicalName(name)
	if err := ValidateName(name); err != nil {
		return err
	}

	path := filepath.Join(l.dir, name)
	if err := l.fs.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotInstalled, name)
		}
		return fmt.Errorf("%w: removing %s: %w", ErrWriteFailure, path, err)
	}

	l.logger.Debug("uninstalled template", slog.String("name", name), slog.String("path", path))
	return nil
}

// Contains reports whether path lies inside the library directory.
func (l *Library) Contains(path string) bool {
	rel, err := filepath.Rel(l.dir, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
