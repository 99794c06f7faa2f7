package targets

import (
	"path"
	"strings"

	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/types"
)

// CheckConflicts rejects plans whose manifest lines overlap. Two lines
// overlap when they name the same path, or when one path lies beneath a
// path mapped with directory granularity. Both the staged source side and
// the application destination side are checked.
func CheckConflicts(plan *types.Plan) error {
	if err := checkSide(plan, "source", func(m *types.MappingEntry) string { return m.Source }); err != nil {
		return err
	}
	return checkSide(plan, "destination", func(m *types.MappingEntry) string { return m.Destination })
}

func checkSide(plan *types.Plan, side string, pick func(*types.MappingEntry) string) error {
	claimed := make(map[string]types.Step)
	directories := make(map[string]types.Step)

	for _, step := range plan.Steps {
		if step.Mapping == nil {
			continue
		}
		p := normalizeMappingPath(pick(step.Mapping))
		if prev, ok := claimed[p]; ok {
			return conflictError(side, prev, step)
		}
		claimed[p] = step
		if step.Mapping.Granularity == types.GranularityDirectory {
			directories[p] = step
		}
	}

	// Ancestor lookups run after every path is known so the result does not
	// depend on declaration order.
	for _, step := range plan.Steps {
		if step.Mapping == nil {
			continue
		}
		p := normalizeMappingPath(pick(step.Mapping))
		for parent := path.Dir(p); parent != "." && parent != "/"; parent = path.Dir(parent) {
			if prev, ok := directories[parent]; ok {
				return conflictError(side, prev, step)
			}
		}
	}

	return nil
}

// normalizeMappingPath strips the wildcard and trailing separator of
// directory mappings so "js/*" and "js/" both name "js".
func normalizeMappingPath(p string) string {
	p = strings.TrimSuffix(p, "/"+types.Wildcard)
	p = strings.TrimSuffix(p, "/")
	return path.Clean(p)
}

func conflictError(side string, first, second types.Step) error {
	return errors.Newf(errors.ErrMappingConflict, "overlapping %s in manifest: %q (%s) and %q (%s)",
		side, first.Mapping.Line(), first.Target, second.Mapping.Line(), second.Target).
		WithDetail("side", side).
		WithDetail("first", first.Mapping.Line()).
		WithDetail("second", second.Mapping.Line()).
		WithDetail("first_target", first.Target).
		WithDetail("second_target", second.Target)
}
