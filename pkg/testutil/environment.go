// pkg/testutil/environment.go
// DEPENDENCIES: filesystem
// PURPOSE: Set up package directories for tests

package testutil

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pear2modman/pkg/filesystem"
	"github.com/arthur-debert/pear2modman/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// DescriptorFile is the descriptor name used by the default configuration
const DescriptorFile = "package.xml"

// TestEnvironment is a package directory ready to be translated
type TestEnvironment struct {
	PackageDir string
	StateHome  string
	FS         types.FS
	Type       EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. Both types redirect
// XDG_STATE_HOME so log files never leak into the user's state directory.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.PackageDir = "/virtual/package"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.PackageDir = filepath.Join(t.TempDir(), "package")
		env.FS = filesystem.NewOS()
	}

	env.StateHome = t.TempDir()
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	if err := env.FS.MkdirAll(env.PackageDir, 0755); err != nil {
		t.Fatalf("Failed to create package dir: %v", err)
	}

	return env
}

// Path returns the location of a slash separated path relative to the package
func (env *TestEnvironment) Path(rel string) string {
	if env.Type == EnvMemoryOnly {
		return path.Join(env.PackageDir, rel)
	}
	return filepath.Join(env.PackageDir, filepath.FromSlash(rel))
}

// WriteDescriptor writes package.xml
func (env *TestEnvironment) WriteDescriptor(content string) *TestEnvironment {
	env.t.Helper()
	return env.WriteFiles(map[string]string{DescriptorFile: content})
}

// WriteFiles writes files relative to the package directory
func (env *TestEnvironment) WriteFiles(files map[string]string) *TestEnvironment {
	env.t.Helper()

	for name, content := range files {
		full := env.Path(name)
		if err := env.FS.MkdirAll(dir(env.Type, full), 0755); err != nil {
			env.t.Fatalf("Failed to create parent of %s: %v", name, err)
		}
		if err := env.FS.WriteFile(full, []byte(content), 0644); err != nil {
			env.t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return env
}

// ReadFile returns the content of a file relative to the package directory
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()

	data, err := env.FS.ReadFile(env.Path(rel))
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}

// ReadManifest returns the manifest written with the default layout
func (env *TestEnvironment) ReadManifest() string {
	env.t.Helper()
	return env.ReadFile("modman/modman")
}

// Exists reports whether rel exists under the package directory
func (env *TestEnvironment) Exists(rel string) bool {
	_, err := env.FS.Stat(env.Path(rel))
	if err != nil && !os.IsNotExist(err) {
		env.t.Fatalf("Failed to stat %s: %v", rel, err)
	}
	return err == nil
}

func dir(envType EnvType, p string) string {
	if envType == EnvMemoryOnly {
		return path.Dir(p)
	}
	return filepath.Dir(p)
}
