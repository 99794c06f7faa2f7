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

func TestCheckStaging(t *testing.T) {
	tests := []struct {
		name    string
		copies  []types.CopyStep
		code    errors.ErrorCode
		wantErr bool
	}{
		{
			name: "regular copies",
			copies: []types.CopyStep{
				{From: "app/code/local/Foo", To: "code", Kind: types.CopyDirectory},
				{From: "app/etc/modules/Foo.xml", To: "Foo.xml", Kind: types.CopyFile},
				{From: "modmanual", To: "modmanual", Kind: types.CopyDirectory},
			},
		},
		{
			name:    "source is the staging directory",
			copies:  []types.CopyStep{{From: "modman", To: "modman", Kind: types.CopyDirectory}},
			code:    errors.ErrUnsafePath,
			wantErr: true,
		},
		{
			name:    "source inside the staging directory",
			copies:  []types.CopyStep{{From: "modman/code", To: "code", Kind: types.CopyDirectory}},
			code:    errors.ErrUnsafePath,
			wantErr: true,
		},
		{
			name:    "file staged over the manifest",
			copies:  []types.CopyStep{{From: "app/modman", To: "modman", Kind: types.CopyFile}},
			code:    errors.ErrMappingConflict,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := &types.Plan{}
			for _, c := range tt.copies {
				plan.AddCopy("mage", c)
			}

			err := targets.CheckStaging(plan, "modman", "modman")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, "mage", errors.GetErrorDetails(err)["target"])
		})
	}
}

func TestCheckStaging_StagingNestedInSource(t *testing.T) {
	plan := &types.Plan{}
	plan.AddCopy("mage", types.CopyStep{From: "var", To: "var", Kind: types.CopyDirectory})

	err := targets.CheckStaging(plan, "var/modman", "modman")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsafePath))
}

func TestDispatcher_RootDirectoryNamedLikeStaging(t *testing.T) {
	d := targets.NewDispatcher(config.Default())

	_, err := d.Plan(contents(types.NewDir("mage", types.NewDir("modman").WithFiles("x.txt"))))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsafePath))
	assert.Equal(t, "modman", errors.GetErrorDetails(err)["path"])
}
