package config

import (
	"sort"

	"github.com/arthur-debert/pear2modman/pkg/errors"
)

// Descriptor locates the package descriptor and its content targets
type Descriptor struct {
	File         string `koanf:"file" toml:"file"`
	ContentsPath string `koanf:"contents_path" toml:"contents_path"`
	TargetPrefix string `koanf:"target_prefix" toml:"target_prefix"`
}

// Output names the staging directory and the manifest inside it
type Output struct {
	StagingDir   string `koanf:"staging_dir" toml:"staging_dir"`
	ManifestFile string `koanf:"manifest_file" toml:"manifest_file"`
}

// Layout holds the conventional application paths of each content type
type Layout struct {
	CodeRoot      string `koanf:"code_root" toml:"code_root"`
	CodeStaging   string `koanf:"code_staging" toml:"code_staging"`
	EtcRoot       string `koanf:"etc_root" toml:"etc_root"`
	DesignRoot    string `koanf:"design_root" toml:"design_root"`
	SkinRoot      string `koanf:"skin_root" toml:"skin_root"`
	LocaleRoot    string `koanf:"locale_root" toml:"locale_root"`
	LocaleStaging string `koanf:"locale_staging" toml:"locale_staging"`
	JSRoot        string `koanf:"js_root" toml:"js_root"`
	LibRoot       string `koanf:"lib_root" toml:"lib_root"`
}

// ThemeArea is the package/theme pair an area installs its files into
type ThemeArea struct {
	Package string `koanf:"package" toml:"package"`
	Theme   string `koanf:"theme" toml:"theme"`
}

// Config is the main configuration structure
type Config struct {
	Descriptor Descriptor           `koanf:"descriptor" toml:"descriptor"`
	Output     Output               `koanf:"output" toml:"output"`
	Layout     Layout               `koanf:"layout" toml:"layout"`
	Themes     map[string]ThemeArea `koanf:"themes" toml:"themes"`
}

// Default returns the embedded default configuration, ignoring the environment
func Default() *Config {
	cfg, err := load("", false, nil)
	if err != nil {
		// The embedded defaults are part of the binary; failing here is a build defect
		panic(err)
	}
	return cfg
}

// ThemeArea returns the package/theme pair of a configured area
func (c *Config) ThemeArea(area string) (ThemeArea, bool) {
	a, ok := c.Themes[area]
	return a, ok
}

// AreaNames returns the configured theme areas sorted by name
func (c *Config) AreaNames() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every path the handlers rely on is set
func (c *Config) Validate() error {
	required := map[string]string{
		"descriptor.file":          c.Descriptor.File,
		"descriptor.contents_path": c.Descriptor.ContentsPath,
		"output.staging_dir":       c.Output.StagingDir,
		"output.manifest_file":     c.Output.ManifestFile,
		"layout.code_root":         c.Layout.CodeRoot,
		"layout.code_staging":      c.Layout.CodeStaging,
		"layout.etc_root":          c.Layout.EtcRoot,
		"layout.design_root":       c.Layout.DesignRoot,
		"layout.skin_root":         c.Layout.SkinRoot,
		"layout.locale_root":       c.Layout.LocaleRoot,
		"layout.locale_staging":    c.Layout.LocaleStaging,
		"layout.js_root":           c.Layout.JSRoot,
		"layout.lib_root":          c.Layout.LibRoot,
	}

	keys := make([]string, 0, len(required))
	for key := range required {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if required[key] == "" {
			return errors.Newf(errors.ErrConfigValid, "configuration key %s must not be empty", key).
				WithDetail("key", key)
		}
	}

	if len(c.Themes) == 0 {
		return errors.New(errors.ErrConfigValid, "at least one theme area must be configured")
	}
	for _, name := range c.AreaNames() {
		area := c.Themes[name]
		if area.Package == "" || area.Theme == "" {
			return errors.Newf(errors.ErrConfigValid, "theme area %s needs both package and theme", name).
				WithDetail("area", name)
		}
	}

	return nil
}
