package targets

import (
	"path"

	"github.com/arthur-debert/pear2modman/pkg/types"
)

// LocaleHandler stages the locale folder once and maps each declared locale
type LocaleHandler struct {
	localeRoot string
	staging    string
}

// NewLocaleHandler creates a locale handler
func NewLocaleHandler(localeRoot, staging string) *LocaleHandler {
	return &LocaleHandler{localeRoot: localeRoot, staging: staging}
}

// Name returns the unique name of this handler
func (h *LocaleHandler) Name() string {
	return "locale"
}

// Description returns a human-readable description of what this handler does
func (h *LocaleHandler) Description() string {
	return "Copies the locale folder and maps every locale code with a wildcard"
}

// Plan copies the whole locale folder, then maps each locale code directory
func (h *LocaleHandler) Plan(target *types.ContentNode, plan *types.Plan) error {
	plan.AddCopy(target.Name, types.CopyStep{From: h.localeRoot, To: h.staging, Kind: types.CopyDirectory})

	for _, code := range target.Dirs {
		plan.AddMapping(target.Name, types.WildcardMapping(
			path.Join(h.staging, code.Name),
			path.Join(h.localeRoot, code.Name),
		))
	}

	return nil
}
