package types

// ContentNode is one node of the parsed package contents. Directory nodes
// carry children; file nodes only carry a name. Name is empty for anonymous
// containers such as the contents element itself.
type ContentNode struct {
	Name  string         `yaml:"name,omitempty" json:"name,omitempty"`
	Dirs  []*ContentNode `yaml:"dirs,omitempty" json:"dirs,omitempty"`
	Files []*ContentNode `yaml:"files,omitempty" json:"files,omitempty"`
}

// NewDir creates a directory node with the given children
func NewDir(name string, children ...*ContentNode) *ContentNode {
	return &ContentNode{Name: name, Dirs: children}
}

// WithFiles appends file nodes with the given names and returns the node
func (n *ContentNode) WithFiles(names ...string) *ContentNode {
	for _, name := range names {
		n.Files = append(n.Files, &ContentNode{Name: name})
	}
	return n
}

// DirNames returns the names of the directory children in declaration order
func (n *ContentNode) DirNames() []string {
	names := make([]string, 0, len(n.Dirs))
	for _, d := range n.Dirs {
		names = append(names, d.Name)
	}
	return names
}

// FileNames returns the names of the file children in declaration order
func (n *ContentNode) FileNames() []string {
	names := make([]string, 0, len(n.Files))
	for _, f := range n.Files {
		names = append(names, f.Name)
	}
	return names
}
