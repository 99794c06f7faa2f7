package targets

import "github.com/arthur-debert/pear2modman/pkg/types"

// Handler plans the copy and mapping steps of one content target
type Handler interface {
	// Name returns the unique name of this handler
	Name() string

	// Description returns a human-readable description of what this handler does
	Description() string

	// Plan appends the steps for target to plan, in the order they must run
	Plan(target *types.ContentNode, plan *types.Plan) error
}
