package descriptor

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/pear2modman/pkg/config"
	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/arthur-debert/pear2modman/pkg/paths"
	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/beevik/etree"
	"github.com/rs/zerolog"
)

// Element names of the contents section
const (
	ElementTarget = "target"
	ElementDir    = "dir"
	ElementFile   = "file"

	// AttrName names targets, dirs and files
	AttrName = "name"
)

// Reader loads content trees from package descriptors
type Reader struct {
	fs           types.FS
	contentsExpr string
	contentsPath etree.Path
	logger       zerolog.Logger
}

// NewReader creates a reader locating the contents element with the
// configured etree path.
func NewReader(fsys types.FS, cfg *config.Config) (*Reader, error) {
	expr := cfg.Descriptor.ContentsPath
	contentsPath, err := etree.CompilePath(expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid contents path %q", expr).
			WithDetail("key", "descriptor.contents_path")
	}

	return &Reader{
		fs:           fsys,
		contentsExpr: expr,
		contentsPath: contentsPath,
		logger:       logging.GetLogger("descriptor"),
	}, nil
}

// Read loads and parses the descriptor at file
func (r *Reader) Read(file string) (*types.ContentNode, error) {
	data, err := r.fs.ReadFile(file)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrMissingDescriptor, "could not find package file %s", file).
				WithDetail("path", file)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read package file %s", file).
			WithDetail("path", file)
	}

	tree, err := r.Parse(data)
	if err != nil {
		return nil, err
	}

	r.logger.Debug().
		Str("path", file).
		Strs("targets", tree.DirNames()).
		Msg("Loaded package contents")

	return tree, nil
}

// Parse builds the content tree from descriptor bytes
func (r *Reader) Parse(data []byte) (*types.ContentNode, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrMalformedDescriptor, "failed to parse package file")
	}

	contents := doc.FindElementPath(r.contentsPath)
	if contents == nil {
		return nil, errors.Newf(errors.ErrMalformedDescriptor, "package file has no %s element", r.contentsExpr).
			WithDetail("path", r.contentsExpr)
	}

	return r.buildNode(contents, "")
}

func (r *Reader) buildNode(el *etree.Element, name string) (*types.ContentNode, error) {
	node := &types.ContentNode{Name: name}

	for _, child := range el.ChildElements() {
		childName := child.SelectAttrValue(AttrName, "")
		if err := paths.ValidateSegment(childName); err != nil {
			return nil, err
		}

		switch child.Tag {
		case ElementTarget, ElementDir:
			dir, err := r.buildNode(child, childName)
			if err != nil {
				return nil, err
			}
			node.Dirs = append(node.Dirs, dir)
		case ElementFile:
			if childName == "" {
				return nil, errors.Newf(errors.ErrMalformedDescriptor, "file element without name under %q", name).
					WithDetail("node", name)
			}
			node.Files = append(node.Files, &types.ContentNode{Name: childName})
		default:
			r.logger.Trace().
				Str("element", child.Tag).
				Str("parent", name).
				Msg("Skipping unknown element")
		}
	}

	return node, nil
}
