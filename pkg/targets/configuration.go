package targets

import (
	"path"

	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/arthur-debert/pear2modman/pkg/walker"
)

// ConfigurationHandler stages module bootstrap files one by one
type ConfigurationHandler struct {
	etcRoot string
}

// NewConfigurationHandler creates a handler reading bootstrap files under etcRoot
func NewConfigurationHandler(etcRoot string) *ConfigurationHandler {
	return &ConfigurationHandler{etcRoot: etcRoot}
}

// Name returns the unique name of this handler
func (h *ConfigurationHandler) Name() string {
	return "configuration"
}

// Description returns a human-readable description of what this handler does
func (h *ConfigurationHandler) Description() string {
	return "Copies each module bootstrap file and maps it individually"
}

// Plan copies every file of the single directory under target (usually
// "modules") into the staging root under its own name.
func (h *ConfigurationHandler) Plan(target *types.ContentNode, plan *types.Plan) error {
	modules, modulesPath, err := walker.DescendLevels(target, 1)
	if err != nil {
		return err
	}

	for _, file := range modules.Files {
		bootstrapPath := path.Join(h.etcRoot, modulesPath, file.Name)
		plan.AddCopy(target.Name, types.CopyStep{From: bootstrapPath, To: file.Name, Kind: types.CopyFile})
		plan.AddMapping(target.Name, types.FileMapping(file.Name, bootstrapPath))
	}

	return nil
}
