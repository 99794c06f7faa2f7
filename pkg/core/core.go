package core

import (
	"context"

	"github.com/arthur-debert/pear2modman/pkg/config"
	"github.com/arthur-debert/pear2modman/pkg/descriptor"
	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/executor"
	"github.com/arthur-debert/pear2modman/pkg/filesystem"
	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/arthur-debert/pear2modman/pkg/paths"
	"github.com/arthur-debert/pear2modman/pkg/targets"
	"github.com/arthur-debert/pear2modman/pkg/types"
)

// Options contains the inputs of one run
type Options struct {
	PackageDir string
	DryRun     bool

	// Config skips configuration loading when set
	Config *config.Config
	// Overrides are dotted configuration keys applied over every other layer
	Overrides map[string]interface{}
	// FileSystem defaults to the OS filesystem
	FileSystem types.FS
}

// Package is a loaded package: where it lives and what it declares
type Package struct {
	Config *config.Config
	Paths  *paths.Paths
	Tree   *types.ContentNode
}

// PlanResult is a package together with its planned steps
type PlanResult struct {
	*Package
	Plan *types.Plan
}

// GenerateResult reports a completed (or dry) run
type GenerateResult struct {
	*PlanResult
	Execution *executor.Result
}

// ManifestFile returns the manifest path of the run
func (r *GenerateResult) ManifestFile() string {
	return r.Paths.ManifestFile()
}

// LoadPackage resolves configuration and paths and reads the content tree
func LoadPackage(opts Options) (*Package, error) {
	logger := logging.GetLogger("core.load")

	if opts.PackageDir == "" {
		return nil, errors.New(errors.ErrNoPackageDir, "no valid package directory specified")
	}

	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.LoadConfiguration(opts.PackageDir, opts.Overrides)
		if err != nil {
			return nil, err
		}
	}

	p, err := paths.New(opts.PackageDir, cfg)
	if err != nil {
		return nil, err
	}

	reader, err := descriptor.NewReader(fileSystem(opts), cfg)
	if err != nil {
		return nil, err
	}

	tree, err := reader.Read(p.DescriptorFile())
	if err != nil {
		logger.Error().Err(err).Str("descriptor", p.DescriptorFile()).Msg("Failed to read package descriptor")
		return nil, err
	}

	return &Package{Config: cfg, Paths: p, Tree: tree}, nil
}

// PlanPackage loads the package and computes its plan without touching the
// filesystem beyond reading the descriptor.
func PlanPackage(opts Options) (*PlanResult, error) {
	pkg, err := LoadPackage(opts)
	if err != nil {
		return nil, err
	}

	plan, err := targets.NewDispatcher(pkg.Config).Plan(pkg.Tree)
	if err != nil {
		return nil, err
	}

	return &PlanResult{Package: pkg, Plan: plan}, nil
}

// Generate plans the package and executes the plan. With DryRun set the
// plan is computed and reported but no file is copied or written.
func Generate(ctx context.Context, opts Options) (*GenerateResult, error) {
	logger := logging.GetLogger("core.generate")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	logger.Info().
		Str("packageDir", opts.PackageDir).
		Bool("dryRun", opts.DryRun).
		Msg("Generating modman manifest")

	planned, err := PlanPackage(opts)
	if err != nil {
		return nil, err
	}

	// Without an explicit filesystem the executor stages through synthfs
	exec := executor.New(executor.Options{
		Paths:  planned.Paths,
		DryRun: opts.DryRun,
		FS:     opts.FileSystem,
	})

	execution, err := exec.Execute(ctx, planned.Plan)
	result := &GenerateResult{PlanResult: planned, Execution: execution}
	if err != nil {
		return result, err
	}

	logger.Info().
		Str("manifest", result.ManifestFile()).
		Int("lines", execution.Lines).
		Msg("Modman manifest generated")

	return result, nil
}

func fileSystem(opts Options) types.FS {
	if opts.FileSystem != nil {
		return opts.FileSystem
	}
	return filesystem.NewOS()
}
