package targets

import (
	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/types"
)

// WebJS is the only recognized web asset category
const WebJS = "js"

// WebHandler stages web assets
type WebHandler struct {
	jsRoot string
}

// NewWebHandler creates a web handler
func NewWebHandler(jsRoot string) *WebHandler {
	return &WebHandler{jsRoot: jsRoot}
}

// Name returns the unique name of this handler
func (h *WebHandler) Name() string {
	return "web"
}

// Description returns a human-readable description of what this handler does
func (h *WebHandler) Description() string {
	return "Copies the js folder and maps it with a wildcard"
}

// Plan handles every named child of target; only js is recognized
func (h *WebHandler) Plan(target *types.ContentNode, plan *types.Plan) error {
	for _, child := range target.Dirs {
		if child.Name != WebJS {
			return unhandledWebTarget(target.Name, child.Name)
		}
		plan.AddCopy(target.Name, types.CopyStep{From: h.jsRoot, To: h.jsRoot, Kind: types.CopyDirectory})
		plan.AddMapping(target.Name, types.WildcardMapping(h.jsRoot, h.jsRoot))
	}

	if len(target.Files) > 0 {
		return unhandledWebTarget(target.Name, target.Files[0].Name)
	}

	return nil
}

func unhandledWebTarget(target, name string) error {
	return errors.Newf(errors.ErrUnhandledWebTarget, "unhandled web target: %s", name).
		WithDetail("target", target).
		WithDetail("name", name)
}
