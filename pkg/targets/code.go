package targets

import (
	"path"

	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/arthur-debert/pear2modman/pkg/walker"
)

// CodeHandler stages one code pool namespace and maps each of its modules
type CodeHandler struct {
	pool     string
	codeRoot string
	staging  string
}

// NewCodeHandler creates a handler for the given code pool
func NewCodeHandler(pool, codeRoot, staging string) *CodeHandler {
	return &CodeHandler{pool: pool, codeRoot: codeRoot, staging: staging}
}

// Name returns the unique name of this handler
func (h *CodeHandler) Name() string {
	return "code:" + h.pool
}

// Description returns a human-readable description of what this handler does
func (h *CodeHandler) Description() string {
	return "Copies the " + h.pool + " code namespace once and maps each module directory"
}

// Plan skips the namespace level, copies the namespace folder into the code
// staging folder as one batch, then advertises every module beneath it as
// its own mapping.
func (h *CodeHandler) Plan(target *types.ContentNode, plan *types.Plan) error {
	logger := logging.GetLogger("targets.code")

	namespace, namespacePath, err := walker.DescendLevels(target, 1)
	if err != nil {
		return err
	}

	source := path.Join(h.codeRoot, h.pool, namespacePath)
	plan.AddCopy(target.Name, types.CopyStep{From: source, To: h.staging, Kind: types.CopyDirectory})

	for _, module := range namespace.Dirs {
		plan.AddMapping(target.Name, types.DirectoryMapping(
			path.Join(h.staging, module.Name),
			path.Join(source, module.Name),
		))
	}

	if len(namespace.Dirs) == 0 {
		logger.Warn().
			Str("target", target.Name).
			Str("namespace", namespacePath).
			Msg("Code namespace declares no modules")
	}

	return nil
}
