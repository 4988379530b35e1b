package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

// LinkKind identifies which link variant a reference was created with.
type LinkKind int

const (
	KindFile LinkKind = iota
	KindDir
)

func (k LinkKind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Linker creates symbolic references. Platforms that distinguish file and
// directory links (Windows) need the variant chosen up front.
type Linker interface {
	LinkFile(target, link string) error
	LinkDir(target, link string) error
}

// OSLinker creates native symbolic links.
//
// On Windows os.Symlink sets SYMBOLIC_LINK_FLAG_DIRECTORY when the target is a
// directory, so both variants map onto it; they stay separate so callers can
// record which one applied and fakes can assert on it.
type OSLinker struct{}

// LinkFile creates a file symbolic link at link pointing to target.
func (OSLinker) LinkFile(target, link string) error {
	return os.Symlink(target, link)
}

// LinkDir creates a directory symbolic link at link pointing to target.
func (OSLinker) LinkDir(target, link string) error {
	return os.Symlink(target, link)
}

// CreateReference stats target on fs and creates link with the matching
// variant. It returns the kind that was used.
func CreateReference(fs afero.Fs, l Linker, target, link string) (LinkKind, error) {
	info, err := fs.Stat(target)
	if err != nil {
		return KindFile, fmt.Errorf("inspecting link target %s: %w", target, err)
	}

	if info.IsDir() {
		return KindDir, l.LinkDir(target, link)
	}
	return KindFile, l.LinkFile(target, link)
}

// ReadLink returns the target of the symbolic link at path, resolved to an
// absolute path when the link stores a relative one.
func ReadLink(fs afero.Fs, path string) (string, error) {
	reader, ok := fs.(afero.LinkReader)
	if !ok {
		return "", fmt.Errorf("filesystem %s cannot read links", fs.Name())
	}

	target, err := reader.ReadlinkIfPossible(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), nil
}

// Lstat returns file info for path without following a final symbolic link
// when fs supports it, and falls back to Stat otherwise.
func Lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if lstater, ok := fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}

// IsSymlinkSupported reports whether native symlinks can be created here.
// On Windows this attempts a test symlink to detect developer mode.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	dir, err := os.MkdirTemp("", "typst-templatr-symlink-test")
	if err != nil {
		return false
	}
	defer os.RemoveAll(dir)

	return os.Symlink(dir, filepath.Join(dir, "probe")) == nil
}
