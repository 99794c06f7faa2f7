package targets

import "github.com/arthur-debert/pear2modman/pkg/types"

// LibraryHandler stages the library folder
type LibraryHandler struct {
	libRoot string
}

// NewLibraryHandler creates a library handler
func NewLibraryHandler(libRoot string) *LibraryHandler {
	return &LibraryHandler{libRoot: libRoot}
}

// Name returns the unique name of this handler
func (h *LibraryHandler) Name() string {
	return "library"
}

// Description returns a human-readable description of what this handler does
func (h *LibraryHandler) Description() string {
	return "Copies the lib folder and maps it with a wildcard"
}

// Plan ignores the sub-structure of target
func (h *LibraryHandler) Plan(target *types.ContentNode, plan *types.Plan) error {
	plan.AddCopy(target.Name, types.CopyStep{From: h.libRoot, To: h.libRoot, Kind: types.CopyDirectory})
	plan.AddMapping(target.Name, types.WildcardMapping(h.libRoot, h.libRoot))
	return nil
}
