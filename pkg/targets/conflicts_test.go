package targets_test

import (
	"testing"

	"github.com/arthur-debert/pear2modman/pkg/config"
	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/targets"
	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConflicts(t *testing.T) {
	tests := []struct {
		name     string
		mappings []types.MappingEntry
		wantErr  bool
		side     string
	}{
		{
			name: "disjoint lines",
			mappings: []types.MappingEntry{
				types.WildcardMapping("js", "js"),
				types.WildcardMapping("lib", "lib"),
				types.FileMapping("shell/run.php", "shell/run.php"),
			},
		},
		{
			name: "sibling files under a common parent",
			mappings: []types.MappingEntry{
				types.FileMapping("design/frontend/template/a.phtml", "app/design/frontend/base/default/template/a.phtml"),
				types.FileMapping("design/frontend/template/b.phtml", "app/design/frontend/base/default/template/b.phtml"),
			},
		},
		{
			name: "same destination",
			mappings: []types.MappingEntry{
				types.FileMapping("a.xml", "app/etc/modules/Foo.xml"),
				types.FileMapping("b.xml", "app/etc/modules/Foo.xml"),
			},
			wantErr: true,
			side:    "destination",
		},
		{
			name: "same source",
			mappings: []types.MappingEntry{
				types.DirectoryMapping("code/Bar", "app/code/community/Foo/Bar"),
				types.DirectoryMapping("code/Bar", "app/code/local/Foo/Bar"),
			},
			wantErr: true,
			side:    "source",
		},
		{
			name: "file under a wildcard directory",
			mappings: []types.MappingEntry{
				types.FileMapping("root/js/app.js", "js/app.js"),
				types.WildcardMapping("js", "js"),
			},
			wantErr: true,
			side:    "destination",
		},
		{
			name: "wildcard and plain directory on the same path",
			mappings: []types.MappingEntry{
				types.WildcardMapping("lib", "lib"),
				types.DirectoryMapping("vendor", "lib/"),
			},
			wantErr: true,
			side:    "destination",
		},
		{
			name: "file nested under a file is not a directory claim",
			mappings: []types.MappingEntry{
				types.FileMapping("a", "x/a"),
				types.FileMapping("b", "x/a/b"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := &types.Plan{}
			for _, m := range tt.mappings {
				plan.AddMapping("mage", m)
			}

			err := targets.CheckConflicts(plan)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMappingConflict))
			assert.Equal(t, tt.side, errors.GetErrorDetails(err)["side"])
		})
	}
}

func TestDispatcher_RootOverlappingWeb(t *testing.T) {
	tree := contents(
		types.NewDir("mageweb", types.NewDir("js")),
		types.NewDir("mage", types.NewDir("js").WithFiles("extra.js")),
	)

	plan, err := targets.NewDispatcher(config.Default()).Plan(tree)
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMappingConflict))

	details := errors.GetErrorDetails(err)
	assert.ElementsMatch(t, []interface{}{"mageweb", "mage"},
		[]interface{}{details["first_target"], details["second_target"]})
}

func TestDispatcher_SameModuleInBothPools(t *testing.T) {
	tree := contents(
		types.NewDir("magecommunity", types.NewDir("Foo", types.NewDir("Bar"))),
		types.NewDir("magelocal", types.NewDir("Foo", types.NewDir("Bar"))),
	)

	_, err := targets.NewDispatcher(config.Default()).Plan(tree)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMappingConflict))
	assert.Equal(t, "source", errors.GetErrorDetails(err)["side"])
}
