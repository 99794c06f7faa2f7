package paths

import (
	"path/filepath"

	"github.com/arthur-debert/pear2modman/pkg/config"
	"github.com/arthur-debert/pear2modman/pkg/errors"
)

// Paths holds the resolved locations for one package root
type Paths struct {
	packageRoot    string
	descriptorFile string
	stagingDir     string
	manifestFile   string
}

// New resolves the paths of packageRoot according to cfg
func New(packageRoot string, cfg *config.Config) (*Paths, error) {
	if packageRoot == "" {
		return nil, errors.New(errors.ErrNoPackageDir, "no valid package directory specified")
	}

	root, err := filepath.Abs(packageRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve package directory %s", packageRoot)
	}

	descriptorFile, err := SafeJoin(root, cfg.Descriptor.File)
	if err != nil {
		return nil, err
	}
	stagingDir, err := SafeJoin(root, cfg.Output.StagingDir)
	if err != nil {
		return nil, err
	}
	manifestFile, err := SafeJoin(stagingDir, cfg.Output.ManifestFile)
	if err != nil {
		return nil, err
	}

	return &Paths{
		packageRoot:    root,
		descriptorFile: descriptorFile,
		stagingDir:     stagingDir,
		manifestFile:   manifestFile,
	}, nil
}

// PackageRoot returns the absolute package root
func (p *Paths) PackageRoot() string {
	return p.packageRoot
}

// DescriptorFile returns the absolute path of package.xml
func (p *Paths) DescriptorFile() string {
	return p.descriptorFile
}

// StagingDir returns the absolute staging directory
func (p *Paths) StagingDir() string {
	return p.stagingDir
}

// ManifestFile returns the absolute manifest path
func (p *Paths) ManifestFile() string {
	return p.manifestFile
}

// Source resolves a path relative to the package root
func (p *Paths) Source(rel string) (string, error) {
	return SafeJoin(p.packageRoot, rel)
}

// Staging resolves a path relative to the staging directory
func (p *Paths) Staging(rel string) (string, error) {
	return SafeJoin(p.stagingDir, rel)
}
