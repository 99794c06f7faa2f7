package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	modmanerrors "github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// PackageConfigFile is the optional per-package configuration file
const PackageConfigFile = ".pear2modman.toml"

// EnvPrefix prefixes environment variable overrides, e.g. PEAR2MODMAN_OUTPUT_STAGING_DIR
const EnvPrefix = "PEAR2MODMAN_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// DefaultContent returns the embedded defaults file
func DefaultContent() string {
	return string(defaultConfig)
}

// LoadConfiguration loads the layered configuration for a package root.
// packageRoot may be empty, in which case no package file is read.
// overrides uses dotted keys ("output.staging_dir") and wins over every other layer.
func LoadConfiguration(packageRoot string, overrides map[string]interface{}) (*Config, error) {
	return load(packageRoot, true, overrides)
}

func load(packageRoot string, useEnv bool, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, modmanerrors.Wrap(err, modmanerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Package config if it exists
	if packageRoot != "" {
		path := filepath.Join(packageRoot, PackageConfigFile)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, modmanerrors.Wrapf(err, modmanerrors.ErrConfigLoad,
					"failed to load package config from %s", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded package config")
		}
	}

	// 3. Env vars
	if useEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, modmanerrors.Wrap(err, modmanerrors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, modmanerrors.Wrap(err, modmanerrors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, modmanerrors.Wrap(err, modmanerrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps PEAR2MODMAN_OUTPUT_STAGING_DIR to output.staging_dir and
// PEAR2MODMAN_THEMES_FRONTEND_PACKAGE to themes.frontend.package.
// Section and area names never contain underscores, keys may.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := 2
	if strings.HasPrefix(key, "themes_") {
		parts = 3
	}
	return strings.Join(strings.SplitN(key, "_", parts), ".")
}
