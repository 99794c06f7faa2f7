package executor

import (
	"context"
	"time"

	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/filesystem"
	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/arthur-debert/pear2modman/pkg/paths"
	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	Paths  *paths.Paths
	DryRun bool
	Logger zerolog.Logger
	// FS defaults to the OS filesystem
	FS types.FS
	// Copier defaults to synthfs operations on the OS filesystem, or to
	// plain FS copies when FS is set. Emitter defaults to appending over FS.
	Copier  Copier
	Emitter Emitter
}

// StepResult reports the outcome of one step
type StepResult struct {
	Step     types.Step
	Success  bool
	Skipped  bool
	Error    error
	Duration time.Duration
}

// Result collects the step results of one run
type Result struct {
	Steps        []StepResult
	Copies       int
	Lines        int
	ManifestFile string
	DryRun       bool
}

// Executor performs plans against a package root
type Executor struct {
	paths   *paths.Paths
	dryRun  bool
	logger  zerolog.Logger
	copier  Copier
	emitter Emitter
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	fs := opts.FS
	copier := opts.Copier
	if fs == nil {
		fs = filesystem.NewOS()
		if copier == nil {
			copier = NewSynthfsCopier(fs, opts.Paths.PackageRoot())
		}
	}
	if copier == nil {
		copier = NewFSCopier(fs)
	}

	emitter := opts.Emitter
	if emitter == nil {
		emitter = NewManifestEmitter(fs, opts.Paths.ManifestFile())
	}

	return &Executor{
		paths:   opts.Paths,
		dryRun:  opts.DryRun,
		logger:  logger,
		copier:  copier,
		emitter: emitter,
	}
}

// Execute runs the steps of plan in order. It stops at the first failing
// step and returns the results gathered so far along with the error.
func (e *Executor) Execute(ctx context.Context, plan *types.Plan) (*Result, error) {
	result := &Result{
		Steps:        make([]StepResult, 0, len(plan.Steps)),
		ManifestFile: e.paths.ManifestFile(),
		DryRun:       e.dryRun,
	}

	if !e.dryRun {
		if err := e.copier.EnsureDir(e.paths.StagingDir()); err != nil {
			return result, err
		}
	}

	for i, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, errors.ErrCanceled, "execution interrupted").
				WithDetail("completed", i).
				WithDetail("total", len(plan.Steps))
		}

		stepResult := e.executeStep(step)
		result.Steps = append(result.Steps, stepResult)
		if stepResult.Error != nil {
			return result, stepResult.Error
		}

		switch {
		case step.Copy != nil:
			result.Copies++
		case step.Mapping != nil:
			result.Lines++
		}
	}

	e.logger.Info().
		Int("copies", result.Copies).
		Int("lines", result.Lines).
		Bool("dry_run", e.dryRun).
		Str("manifest", result.ManifestFile).
		Msg("Plan executed")

	return result, nil
}

func (e *Executor) executeStep(step types.Step) StepResult {
	start := time.Now()

	e.logger.Debug().
		Str("target", step.Target).
		Str("step", describeStep(step)).
		Bool("dry_run", e.dryRun).
		Msg("Executing step")

	if e.dryRun {
		return StepResult{
			Step:     step,
			Success:  true,
			Skipped:  true,
			Duration: time.Since(start),
		}
	}

	var err error
	switch {
	case step.Copy != nil:
		err = e.copy(*step.Copy)
	case step.Mapping != nil:
		err = e.emitter.Emit(*step.Mapping)
	default:
		err = errors.New(errors.ErrInternal, "step has neither copy nor mapping").
			WithDetail("target", step.Target)
	}

	if err != nil {
		e.logger.Error().
			Err(err).
			Str("target", step.Target).
			Str("step", describeStep(step)).
			Msg("Step execution failed")

		return StepResult{
			Step:     step,
			Success:  false,
			Error:    err,
			Duration: time.Since(start),
		}
	}

	return StepResult{
		Step:     step,
		Success:  true,
		Duration: time.Since(start),
	}
}

func (e *Executor) copy(c types.CopyStep) error {
	from, err := e.paths.Source(c.From)
	if err != nil {
		return err
	}
	to, err := e.paths.Staging(c.To)
	if err != nil {
		return err
	}

	if c.Kind == types.CopyFile {
		return e.copier.CopyFile(from, to)
	}
	return e.copier.CopyDir(from, to)
}

func describeStep(step types.Step) string {
	switch {
	case step.Copy != nil:
		return "copy " + step.Copy.From + " -> " + step.Copy.To
	case step.Mapping != nil:
		return "map " + step.Mapping.Line()
	}
	return "empty"
}
