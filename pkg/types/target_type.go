package types

import "strings"

// TargetType identifies the directory convention a top-level content target follows
type TargetType string

const (
	TargetCommunityCode TargetType = "community"
	TargetLocalCode     TargetType = "local"
	TargetConfiguration TargetType = "etc"
	TargetDesign        TargetType = "design"
	TargetSkin          TargetType = "skin"
	TargetLocale        TargetType = "locale"
	TargetWeb           TargetType = "web"
	TargetLibrary       TargetType = "lib"

	// TargetRoot is used when nothing is left after stripping the prefix
	TargetRoot TargetType = "root"
)

// AllTargetTypes lists every known target type in a stable order
var AllTargetTypes = []TargetType{
	TargetCommunityCode,
	TargetLocalCode,
	TargetConfiguration,
	TargetDesign,
	TargetSkin,
	TargetLocale,
	TargetWeb,
	TargetLibrary,
	TargetRoot,
}

// String returns the target type name
func (t TargetType) String() string {
	return string(t)
}

// ParseTargetType derives a TargetType from a top-level node name by
// stripping prefix. The second return value is false when the name does not
// carry the prefix or the remaining suffix is not a known target.
func ParseTargetType(name, prefix string) (TargetType, bool) {
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	suffix := strings.TrimPrefix(name, prefix)
	if suffix == "" {
		return TargetRoot, true
	}
	for _, t := range AllTargetTypes {
		if t != TargetRoot && string(t) == suffix {
			return t, true
		}
	}
	return "", false
}
