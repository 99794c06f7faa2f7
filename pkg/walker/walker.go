// Package walker descends into the parsed content tree. It has no side
// effects: DescendLevels follows fixed-depth single-child chains and
// CollectLeafFiles lazily yields every file path beneath a node.
package walker

import (
	"iter"
	"path"
	"strings"

	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/types"
)

// DescendLevels follows the single directory child of node levels times.
// It returns the node reached and the names of the visited children joined
// with "/". Every level must hold exactly one directory child, otherwise the
// descriptor does not follow the convention of its target and an
// ErrMalformedDescriptor error is returned.
func DescendLevels(node *types.ContentNode, levels int) (*types.ContentNode, string, error) {
	if node == nil {
		return nil, "", errors.New(errors.ErrMalformedDescriptor, "cannot descend into a missing node")
	}

	current := node
	var b strings.Builder
	for depth := 1; depth <= levels; depth++ {
		if len(current.Dirs) != 1 {
			return nil, "", errors.Newf(errors.ErrMalformedDescriptor,
				"expected exactly one directory under %q at depth %d, found %d",
				current.Name, depth, len(current.Dirs)).
				WithDetail("node", current.Name).
				WithDetail("depth", depth)
		}
		current = current.Dirs[0]
		b.WriteString(current.Name)
		b.WriteString("/")
	}

	return current, strings.TrimSuffix(b.String(), "/"), nil
}

// CollectLeafFiles yields the relative path of every file beneath node, at
// any depth. A node's own files come first, then each directory child in
// declaration order. The sequence can be ranged over more than once.
func CollectLeafFiles(node *types.ContentNode) iter.Seq[string] {
	return func(yield func(string) bool) {
		walkFiles(node, "", yield)
	}
}

// walkFiles returns false once the consumer stopped the iteration
func walkFiles(node *types.ContentNode, prefix string, yield func(string) bool) bool {
	if node == nil {
		return true
	}
	for _, f := range node.Files {
		if !yield(path.Join(prefix, f.Name)) {
			return false
		}
	}
	for _, d := range node.Dirs {
		if !walkFiles(d, path.Join(prefix, d.Name), yield) {
			return false
		}
	}
	return true
}
