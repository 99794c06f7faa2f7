package types

import "path"

// Granularity tells whether a mapping covers a whole directory or a single file
type Granularity string

const (
	GranularityDirectory Granularity = "directory"
	GranularityFile      Granularity = "file"
)

// Wildcard is appended to a source directory to map every entry beneath it
const Wildcard = "*"

// MappingEntry is one manifest line. Source is relative to the staging
// directory, Destination relative to the application root.
type MappingEntry struct {
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	Granularity Granularity `json:"granularity"`
}

// Line renders the entry the way the manifest stores it, without the newline
func (m MappingEntry) Line() string {
	return m.Source + " " + m.Destination
}

// DirectoryMapping maps a whole directory with a single line
func DirectoryMapping(source, destination string) MappingEntry {
	return MappingEntry{Source: source, Destination: destination, Granularity: GranularityDirectory}
}

// WildcardMapping maps every entry under source into destination.
// The source gets a trailing wildcard and the destination a trailing separator.
func WildcardMapping(source, destination string) MappingEntry {
	return MappingEntry{
		Source:      path.Join(source, Wildcard),
		Destination: destination + "/",
		Granularity: GranularityDirectory,
	}
}

// FileMapping maps a single leaf file
func FileMapping(source, destination string) MappingEntry {
	return MappingEntry{Source: source, Destination: destination, Granularity: GranularityFile}
}

// CopyKind distinguishes recursive directory copies from single file copies
type CopyKind string

const (
	CopyDirectory CopyKind = "directory"
	CopyFile      CopyKind = "file"
)

// CopyStep copies From (relative to the package root) to To (relative to the
// staging directory).
type CopyStep struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind CopyKind `json:"kind"`
}

// Step is one unit of work in a plan: exactly one of Copy or Mapping is set.
// Target names the top-level content target that produced it.
type Step struct {
	Target  string        `json:"target"`
	Copy    *CopyStep     `json:"copy,omitempty"`
	Mapping *MappingEntry `json:"mapping,omitempty"`
}

// Plan is the ordered list of steps computed from a content tree
type Plan struct {
	Steps []Step `json:"steps"`
}

// AddCopy appends a copy step
func (p *Plan) AddCopy(target string, c CopyStep) {
	p.Steps = append(p.Steps, Step{Target: target, Copy: &c})
}

// AddMapping appends a mapping step
func (p *Plan) AddMapping(target string, m MappingEntry) {
	p.Steps = append(p.Steps, Step{Target: target, Mapping: &m})
}

// Mappings returns the mapping entries in plan order
func (p *Plan) Mappings() []MappingEntry {
	var out []MappingEntry
	for _, s := range p.Steps {
		if s.Mapping != nil {
			out = append(out, *s.Mapping)
		}
	}
	return out
}

// Copies returns the copy steps in plan order
func (p *Plan) Copies() []CopyStep {
	var out []CopyStep
	for _, s := range p.Steps {
		if s.Copy != nil {
			out = append(out, *s.Copy)
		}
	}
	return out
}

// Lines returns the manifest lines in plan order
func (p *Plan) Lines() []string {
	mappings := p.Mappings()
	lines := make([]string, 0, len(mappings))
	for _, m := range mappings {
		lines = append(lines, m.Line())
	}
	return lines
}
