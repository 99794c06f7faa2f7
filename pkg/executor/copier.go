package executor

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/types"
)

// Copier copies package content into the staging directory. Paths are absolute.
type Copier interface {
	EnsureDir(path string) error
	CopyDir(from, to string) error
	CopyFile(from, to string) error
}

// treeEntry is one path beneath a copied directory, relative to it
type treeEntry struct {
	rel  string
	mode fs.FileMode
}

// tree is the content of a directory listed before anything is written
type tree struct {
	dirs  []treeEntry // parents before children
	files []treeEntry
}

// snapshot lists everything beneath from. The listing is complete before a
// copy starts, so a destination nested in from never feeds back into it.
func snapshot(fsys types.FS, from string) (*tree, error) {
	t := &tree{}
	if err := t.walk(fsys, from, ""); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *tree) walk(fsys types.FS, root, rel string) error {
	dir := filepath.Join(root, rel)
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", dir).
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		child := filepath.Join(rel, entry.Name())
		info, err := entry.Info()
		if err != nil {
			return statError(err, filepath.Join(root, child))
		}
		if entry.IsDir() {
			t.dirs = append(t.dirs, treeEntry{rel: child, mode: info.Mode().Perm()})
			if err := t.walk(fsys, root, child); err != nil {
				return err
			}
			continue
		}
		t.files = append(t.files, treeEntry{rel: child, mode: info.Mode().Perm()})
	}
	return nil
}

// FSCopier copies over a types.FS
type FSCopier struct {
	fs types.FS
}

// NewFSCopier creates a copier on fsys
func NewFSCopier(fsys types.FS) *FSCopier {
	return &FSCopier{fs: fsys}
}

// EnsureDir creates path and its parents, tolerating existing directories
func (c *FSCopier) EnsureDir(path string) error {
	if err := c.fs.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", path).
			WithDetail("path", path)
	}
	return nil
}

// CopyDir copies the tree under from into to, merging with whatever to
// already holds. Existing files are overwritten.
func (c *FSCopier) CopyDir(from, to string) error {
	if _, err := sourceInfo(c.fs, from, true); err != nil {
		return err
	}

	t, err := snapshot(c.fs, from)
	if err != nil {
		return err
	}

	if err := c.EnsureDir(to); err != nil {
		return err
	}
	for _, d := range t.dirs {
		if err := c.EnsureDir(filepath.Join(to, d.rel)); err != nil {
			return err
		}
	}
	for _, f := range t.files {
		if err := c.write(filepath.Join(from, f.rel), filepath.Join(to, f.rel), f.mode); err != nil {
			return err
		}
	}

	return nil
}

// CopyFile copies a single file, creating the parent of to when needed
func (c *FSCopier) CopyFile(from, to string) error {
	info, err := sourceInfo(c.fs, from, false)
	if err != nil {
		return err
	}
	if err := c.EnsureDir(filepath.Dir(to)); err != nil {
		return err
	}
	return c.write(from, to, info.Mode().Perm())
}

func (c *FSCopier) write(from, to string, mode fs.FileMode) error {
	data, err := c.fs.ReadFile(from)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", from).
			WithDetail("path", from)
	}
	if err := c.fs.WriteFile(to, data, mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", to).
			WithDetail("path", to)
	}
	return nil
}

// sourceInfo stats a copy source and checks it is of the expected kind
func sourceInfo(fsys types.FS, path string, wantDir bool) (fs.FileInfo, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, statError(err, path)
	}
	if wantDir && !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "source is not a directory: %s", path).
			WithDetail("path", path)
	}
	if !wantDir && info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "source is a directory: %s", path).
			WithDetail("path", path)
	}
	return info, nil
}

func statError(err error, path string) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.Newf(errors.ErrFileNotFound, "source does not exist: %s", path).
			WithDetail("path", path)
	}
	return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path).
		WithDetail("path", path)
}
