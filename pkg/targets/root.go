package targets

import (
	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/arthur-debert/pear2modman/pkg/walker"
)

// RootHandler stages application root-level content
type RootHandler struct{}

// NewRootHandler creates a root handler
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Name returns the unique name of this handler
func (h *RootHandler) Name() string {
	return "root"
}

// Description returns a human-readable description of what this handler does
func (h *RootHandler) Description() string {
	return "Copies root-level folders and maps every file they contain onto itself"
}

// Plan copies each declared top-level folder and file, then maps every leaf
// on its own. Root folders such as shell/ or errors/ already exist in the
// application, so mapping them as a whole would hide their other files.
func (h *RootHandler) Plan(target *types.ContentNode, plan *types.Plan) error {
	for _, dir := range target.Dirs {
		plan.AddCopy(target.Name, types.CopyStep{From: dir.Name, To: dir.Name, Kind: types.CopyDirectory})
	}
	for _, file := range target.Files {
		plan.AddCopy(target.Name, types.CopyStep{From: file.Name, To: file.Name, Kind: types.CopyFile})
	}

	for leaf := range walker.CollectLeafFiles(target) {
		plan.AddMapping(target.Name, types.FileMapping(leaf, leaf))
	}

	return nil
}
