package executor

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"
)

// SynthfsCopier creates directories and copies files through synthfs
// operations on the OS filesystem rooted at the package root. Source trees
// are listed through fs before any operation runs.
type SynthfsCopier struct {
	fs         types.FS
	filesystem synthfs.FileSystem
	root       string
	logger     zerolog.Logger
}

// NewSynthfsCopier creates a copier for the package rooted at root
func NewSynthfsCopier(fsys types.FS, root string) *SynthfsCopier {
	return &SynthfsCopier{
		fs:         fsys,
		filesystem: filesystem.NewOSFileSystem(root),
		root:       root,
		logger:     logging.GetLogger("executor.synthfs"),
	}
}

// EnsureDir creates path and each missing parent below the package root
func (c *SynthfsCopier) EnsureDir(path string) error {
	rel, err := c.rel(path)
	if err != nil {
		return err
	}
	if rel == "." {
		return nil
	}

	current := ""
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		current = filepath.Join(current, part)
		if err := c.createDir(current, 0755); err != nil {
			return err
		}
	}
	return nil
}

// CopyDir copies the tree under from into to, merging with whatever to
// already holds. Existing files are replaced.
func (c *SynthfsCopier) CopyDir(from, to string) error {
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
	relTo, err := c.rel(to)
	if err != nil {
		return err
	}
	for _, d := range t.dirs {
		if err := c.createDir(filepath.Join(relTo, d.rel), d.mode|0700); err != nil {
			return err
		}
	}
	for _, f := range t.files {
		if err := c.copyFile(filepath.Join(from, f.rel), filepath.Join(to, f.rel)); err != nil {
			return err
		}
	}

	c.logger.Debug().
		Str("from", from).
		Str("to", to).
		Int("dirs", len(t.dirs)).
		Int("files", len(t.files)).
		Msg("Copied directory")

	return nil
}

// CopyFile copies a single file, creating the parent of to when needed
func (c *SynthfsCopier) CopyFile(from, to string) error {
	if _, err := sourceInfo(c.fs, from, false); err != nil {
		return err
	}
	if err := c.EnsureDir(filepath.Dir(to)); err != nil {
		return err
	}
	return c.copyFile(from, to)
}

// createDir creates a single directory unless it already exists
func (c *SynthfsCopier) createDir(rel string, mode fs.FileMode) error {
	abs := filepath.Join(c.root, rel)
	info, err := c.fs.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return errors.Newf(errors.ErrDirCreate, "failed to create directory %s: a file is in the way", abs).
			WithDetail("path", abs)
	case !stderrors.Is(err, fs.ErrNotExist):
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", abs).
			WithDetail("path", abs)
	}

	opID := core.OperationID(fmt.Sprintf("create-dir-%s", rel))
	createOp := operations.NewCreateDirectoryOperation(opID, rel)
	createOp.SetItem(&directoryItem{path: rel, mode: mode})

	if err := c.run(synthfs.NewOperationsPackageAdapter(createOp)); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", abs).
			WithDetail("path", abs)
	}
	return nil
}

// copyFile replaces to with a copy of from. Staged files from an earlier
// run are removed first so the copy operation always targets a free path.
func (c *SynthfsCopier) copyFile(from, to string) error {
	relFrom, err := c.rel(from)
	if err != nil {
		return err
	}
	relTo, err := c.rel(to)
	if err != nil {
		return err
	}

	if _, err := c.fs.Stat(to); err == nil {
		c.logger.Debug().Str("path", to).Msg("Replacing staged file")
		if err := c.fs.Remove(to); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %s", to).
				WithDetail("path", to)
		}
	}

	opID := core.OperationID(fmt.Sprintf("copy-%s-to-%s", relFrom, relTo))
	copyOp := operations.NewCopyOperation(opID, relTo)
	copyOp.SetPaths(relFrom, relTo)

	if err := c.run(synthfs.NewOperationsPackageAdapter(copyOp)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to copy %s to %s", from, to).
			WithDetail("from", from).
			WithDetail("path", to)
	}
	return nil
}

// run executes op in its own pipeline so each step sees the effects of the
// previous one.
func (c *SynthfsCopier) run(op synthfs.Operation) error {
	pipeline := synthfs.NewMemPipeline()
	if err := pipeline.Add(op); err != nil {
		return err
	}

	result := synthfs.NewExecutor().Run(context.Background(), pipeline, c.filesystem)
	return result.GetError()
}

// rel converts an absolute path to one relative to the package root
func (c *SynthfsCopier) rel(path string) (string, error) {
	rel, err := filepath.Rel(c.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrUnsafePath, "path %s is outside the package root", path).
			WithDetail("path", path).
			WithDetail("root", c.root)
	}
	return rel, nil
}

// directoryItem describes a directory for synthfs create operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
