package targets

import (
	"path"

	"github.com/arthur-debert/pear2modman/pkg/config"
	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/arthur-debert/pear2modman/pkg/walker"
)

// Theme types sharing the theme handler
const (
	ThemeDesign = "design"
	ThemeSkin   = "skin"
)

// Design type directories with a known mapping policy
const (
	DesignLayout   = "layout"
	DesignTemplate = "template"
	DesignLocale   = "locale"
)

// ThemeHandler maps theme areas of design and skin targets.
// Areas hold a package and a theme level above their type directories:
// <area>/<package>/<theme>/<type>.
type ThemeHandler struct {
	themeType  string
	rootFolder string
	areas      map[string]config.ThemeArea
}

// NewThemeHandler creates a handler for themeType installed under rootFolder
func NewThemeHandler(themeType, rootFolder string, areas map[string]config.ThemeArea) *ThemeHandler {
	return &ThemeHandler{themeType: themeType, rootFolder: rootFolder, areas: areas}
}

// Name returns the unique name of this handler
func (h *ThemeHandler) Name() string {
	return h.themeType
}

// Description returns a human-readable description of what this handler does
func (h *ThemeHandler) Description() string {
	if h.themeType == ThemeSkin {
		return "Copies skin asset directories and maps each one as a whole"
	}
	return "Copies design directories, mapping layouts as a whole and templates and locales per file"
}

// Plan processes the areas of target in declaration order
func (h *ThemeHandler) Plan(target *types.ContentNode, plan *types.Plan) error {
	logger := logging.GetLogger("targets.theme")

	for _, area := range target.Dirs {
		themeArea, ok := h.areas[area.Name]
		if !ok {
			return errors.Newf(errors.ErrUnhandledArea, "unhandled %s area: %s", h.themeType, area.Name).
				WithDetail("target", target.Name).
				WithDetail("area", area.Name)
		}

		typesNode, traversed, err := walker.DescendLevels(area, 2)
		if err != nil {
			return err
		}
		logger.Trace().
			Str("area", area.Name).
			Str("declared", traversed).
			Str("installed", path.Join(themeArea.Package, themeArea.Theme)).
			Msg("Resolved theme area")

		for _, typeDir := range typesNode.Dirs {
			if err := h.planType(target.Name, area.Name, themeArea, typeDir, plan); err != nil {
				return err
			}
		}
	}

	return nil
}

func (h *ThemeHandler) planType(targetName, area string, themeArea config.ThemeArea, typeDir *types.ContentNode, plan *types.Plan) error {
	origin := path.Join(h.themeType, area, typeDir.Name)
	targetDir := path.Join(h.rootFolder, area, themeArea.Package, themeArea.Theme, typeDir.Name)

	if h.themeType == ThemeSkin {
		plan.AddCopy(targetName, types.CopyStep{From: targetDir, To: origin, Kind: types.CopyDirectory})
		plan.AddMapping(targetName, types.DirectoryMapping(origin, targetDir))
		return nil
	}

	switch typeDir.Name {
	case DesignLayout:
		// Layout files belong to the module entirely
		plan.AddCopy(targetName, types.CopyStep{From: targetDir, To: origin, Kind: types.CopyDirectory})
		plan.AddMapping(targetName, types.WildcardMapping(origin, targetDir))
	case DesignTemplate, DesignLocale:
		// Files here may sit next to base theme files of the same directory,
		// so each one is linked on its own.
		plan.AddCopy(targetName, types.CopyStep{From: targetDir, To: origin, Kind: types.CopyDirectory})
		for leaf := range walker.CollectLeafFiles(typeDir) {
			plan.AddMapping(targetName, types.FileMapping(path.Join(origin, leaf), path.Join(targetDir, leaf)))
		}
	default:
		return errors.Newf(errors.ErrUnhandledDesignType, "unhandled design type: %s", typeDir.Name).
			WithDetail("target", targetName).
			WithDetail("area", area).
			WithDetail("type", typeDir.Name)
	}

	return nil
}
