package targets

import (
	"path"
	"strings"

	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/types"
)

// CheckStaging rejects copies that would read from the staging directory or
// write over the manifest. stagingDir is relative to the package root and
// manifestFile relative to stagingDir.
func CheckStaging(plan *types.Plan, stagingDir, manifestFile string) error {
	staging := path.Clean(stagingDir)
	manifest := path.Clean(manifestFile)

	for _, step := range plan.Steps {
		if step.Copy == nil {
			continue
		}
		from := path.Clean(step.Copy.From)
		to := path.Clean(step.Copy.To)

		if within(from, staging) || within(staging, from) {
			return errors.Newf(errors.ErrUnsafePath,
				"content %q of target %s overlaps the staging directory %q", step.Copy.From, step.Target, stagingDir).
				WithDetail("target", step.Target).
				WithDetail("path", step.Copy.From).
				WithDetail("staging_dir", stagingDir)
		}

		if within(to, manifest) {
			return errors.Newf(errors.ErrMappingConflict,
				"content %q of target %s would be staged over the manifest %q", step.Copy.From, step.Target, manifestFile).
				WithDetail("target", step.Target).
				WithDetail("path", step.Copy.To).
				WithDetail("manifest", manifestFile)
		}
	}

	return nil
}

// within reports whether p equals dir or lies beneath it
func within(p, dir string) bool {
	return p == dir || strings.HasPrefix(p, dir+"/")
}
