package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pear2modman/pkg/errors"
)

// ValidateSegment ensures a descriptor node name is a single path segment.
// Names must not:
// - be "." or ".."
// - contain path separators
// - contain null bytes
func ValidateSegment(name string) error {
	if name == "." || name == ".." {
		return errors.Newf(errors.ErrUnsafePath, "node name cannot be %q", name).
			WithDetail("name", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.ErrUnsafePath, "node name cannot contain path separators: %q", name).
			WithDetail("name", name)
	}
	if strings.Contains(name, "\x00") {
		return errors.New(errors.ErrUnsafePath, "node name contains null bytes").
			WithDetail("name", name)
	}
	return nil
}

// SafeJoin joins rel onto root and makes sure the result stays inside root
func SafeJoin(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", errors.Newf(errors.ErrUnsafePath, "absolute paths are not allowed: %s", rel).
			WithDetail("path", rel)
	}

	cleanRoot := filepath.Clean(root)
	joined := filepath.Join(cleanRoot, filepath.FromSlash(rel))

	relToRoot, err := filepath.Rel(cleanRoot, joined)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrUnsafePath, "cannot relate %s to %s", joined, cleanRoot)
	}
	relSlash := filepath.ToSlash(relToRoot)
	if relSlash == ".." || strings.HasPrefix(relSlash, "../") {
		return "", errors.Newf(errors.ErrUnsafePath, "path escapes %s: %s", cleanRoot, rel).
			WithDetail("path", rel)
	}

	return joined, nil
}
