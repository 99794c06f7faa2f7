package descriptor

import (
	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/types"
	"gopkg.in/yaml.v3"
)

// DumpYAML renders a content tree as YAML
func DumpYAML(tree *types.ContentNode) ([]byte, error) {
	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render content tree")
	}
	return out, nil
}
