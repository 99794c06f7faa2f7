package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_RoundTripsThroughLoader(t *testing.T) {
	cfg := Default()
	cfg.Output.StagingDir = "staging"
	cfg.Themes["frontend"] = ThemeArea{Package: "rwd", Theme: "custom"}

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Regexp(t, `staging_dir = ['"]staging['"]`, string(data))

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, PackageConfigFile), data, 0644))

	loaded, err := LoadConfiguration(tmpDir, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultContent(t *testing.T) {
	assert.Contains(t, DefaultContent(), "[descriptor]")
}
