package targets

import (
	"github.com/arthur-debert/pear2modman/pkg/config"
	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/arthur-debert/pear2modman/pkg/registry"
	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/rs/zerolog"
)

// Dispatcher resolves each top-level content target to its handler
type Dispatcher struct {
	prefix       string
	stagingDir   string
	manifestFile string
	handlers     registry.Registry[types.TargetType, Handler]
	logger       zerolog.Logger
}

// NewDispatcher builds the handler table from the configured layout
func NewDispatcher(cfg *config.Config) *Dispatcher {
	layout := cfg.Layout

	handlers := registry.New[types.TargetType, Handler]()
	register := func(t types.TargetType, h Handler) { registry.MustRegister(handlers, t, h) }
	register(types.TargetCommunityCode, NewCodeHandler(string(types.TargetCommunityCode), layout.CodeRoot, layout.CodeStaging))
	register(types.TargetLocalCode, NewCodeHandler(string(types.TargetLocalCode), layout.CodeRoot, layout.CodeStaging))
	register(types.TargetConfiguration, NewConfigurationHandler(layout.EtcRoot))
	register(types.TargetDesign, NewThemeHandler(ThemeDesign, layout.DesignRoot, cfg.Themes))
	register(types.TargetSkin, NewThemeHandler(ThemeSkin, layout.SkinRoot, cfg.Themes))
	register(types.TargetLocale, NewLocaleHandler(layout.LocaleRoot, layout.LocaleStaging))
	register(types.TargetWeb, NewWebHandler(layout.JSRoot))
	register(types.TargetLibrary, NewLibraryHandler(layout.LibRoot))
	register(types.TargetRoot, NewRootHandler())

	return &Dispatcher{
		prefix:       cfg.Descriptor.TargetPrefix,
		stagingDir:   cfg.Output.StagingDir,
		manifestFile: cfg.Output.ManifestFile,
		handlers:     handlers,
		logger:       logging.GetLogger("targets.dispatcher"),
	}
}

// Handler returns the handler registered for a target type
func (d *Dispatcher) Handler(t types.TargetType) (Handler, bool) {
	h, err := d.handlers.Get(t)
	return h, err == nil
}

// TargetTypes lists the handled target types in registration order
func (d *Dispatcher) TargetTypes() []types.TargetType {
	return d.handlers.List()
}

// Resolve maps a top-level node name to its target type and handler
func (d *Dispatcher) Resolve(name string) (types.TargetType, Handler, error) {
	targetType, ok := types.ParseTargetType(name, d.prefix)
	if !ok {
		return "", nil, errors.Newf(errors.ErrUnknownTarget, "unhandled content target: %s", name).
			WithDetail("target", name)
	}
	h, ok := d.Handler(targetType)
	if !ok {
		return "", nil, errors.Newf(errors.ErrUnknownTarget, "no handler for content target: %s", name).
			WithDetail("target", name)
	}
	return targetType, h, nil
}

// Plan walks the top-level targets of tree in declaration order and
// collects the steps of their handlers. The first error aborts planning.
func (d *Dispatcher) Plan(tree *types.ContentNode) (*types.Plan, error) {
	if tree == nil {
		return nil, errors.New(errors.ErrMalformedDescriptor, "package has no contents")
	}

	// Files cannot carry a content convention
	if len(tree.Files) > 0 {
		name := tree.Files[0].Name
		return nil, errors.Newf(errors.ErrUnknownTarget, "unhandled content target: %s", name).
			WithDetail("target", name)
	}

	plan := &types.Plan{}
	for _, target := range tree.Dirs {
		targetType, h, err := d.Resolve(target.Name)
		if err != nil {
			return nil, err
		}

		before := len(plan.Steps)
		if err := h.Plan(target, plan); err != nil {
			d.logger.Error().
				Err(err).
				Str("target", target.Name).
				Str("handler", h.Name()).
				Msg("Failed to plan content target")
			return nil, err
		}

		d.logger.Debug().
			Str("target", target.Name).
			Str("type", targetType.String()).
			Str("handler", h.Name()).
			Int("steps", len(plan.Steps)-before).
			Msg("Planned content target")
	}

	if err := CheckConflicts(plan); err != nil {
		return nil, err
	}
	if err := CheckStaging(plan, d.stagingDir, d.manifestFile); err != nil {
		return nil, err
	}

	d.logger.Info().
		Int("targets", len(tree.Dirs)).
		Int("copies", len(plan.Copies())).
		Int("mappings", len(plan.Mappings())).
		Msg("Planned package contents")

	return plan, nil
}
