package executor

import (
	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/types"
)

// Emitter records manifest lines
type Emitter interface {
	Emit(entry types.MappingEntry) error
}

// ManifestEmitter appends lines to a manifest file. Existing content is kept.
type ManifestEmitter struct {
	fs   types.FS
	path string
}

// NewManifestEmitter creates an emitter appending to path
func NewManifestEmitter(fsys types.FS, path string) *ManifestEmitter {
	return &ManifestEmitter{fs: fsys, path: path}
}

// Emit appends the line of entry followed by a newline
func (m *ManifestEmitter) Emit(entry types.MappingEntry) error {
	if err := m.fs.AppendFile(m.path, []byte(entry.Line()+"\n"), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write manifest line %q", entry.Line()).
			WithDetail("path", m.path)
	}
	return nil
}
