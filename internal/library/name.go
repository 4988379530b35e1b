package library

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/typst-templatr/typst-templatr/internal/branding"
)

// CanonicalName appends the template extension to name unless it already
// ends with it. CanonicalName(CanonicalName(n)) == CanonicalName(n).
func CanonicalName(name string) string {
	ext := branding.TemplateExt()
	if strings.HasSuffix(name, ext) {
		return name
	}
	return name + ext
}

// ValidateName checks that a canonical name is a single path segment with a
// non-empty stem.
func ValidateName(name string) error {
	stem := strings.TrimSuffix(name, branding.TemplateExt())
	switch {
	case stem == "":
		return fmt.Errorf("%w: %q has an empty name", ErrInvalidName, name)
	case stem == "." || stem == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q must not contain a path separator", ErrInvalidName, name)
	}
	return nil
}

// IsTemplate reports whether a directory entry name looks like a template.
func IsTemplate(name string) bool {
	return strings.HasSuffix(name, branding.TemplateExt())
}
