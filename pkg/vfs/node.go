package vfs

import (
	"path"
)

// NodeType distinguishes files from directories.
type NodeType string

const (
	TypeFile      NodeType = "file"
	TypeDirectory NodeType = "directory"
)

// RenderKind tells the host how to show a file's rendered content.
type RenderKind string

const (
	// KindHTML is pre-rendered markup the host writes verbatim.
	KindHTML RenderKind = "html"
	// KindText is plain text styled by the output formatter.
	KindText RenderKind = "text"
)

type Rendered struct {
	Kind    RenderKind
	Content string
}

// Frontmatter is the optional YAML header of a markdown post.
type Frontmatter struct {
	Title string   `yaml:"title"`
	Date  string   `yaml:"date"`
	Tags  []string `yaml:"tags"`
}

// Node is either a directory (Children set) or a file (Text, Rendered set).
// Children hold absolute paths, never pointers.
type Node struct {
	Type   NodeType
	Name   string
	Path   string
	Parent string

	Children []string

	Text      string
	Extension string
	Rendered  Rendered
	Meta      Frontmatter
}

func (n *Node) IsDirectory() bool {
	return n != nil && n.Type == TypeDirectory
}

func (n *Node) IsFile() bool {
	return n != nil && n.Type == TypeFile
}

// FileSystem is an immutable lookup table of nodes keyed by absolute path.
type FileSystem struct {
	Nodes map[string]*Node
	Root  string
}

// New returns a file system holding only the root directory.
func New(rootName string) *FileSystem {
	fs := &FileSystem{
		Nodes: make(map[string]*Node),
		Root:  "/",
	}
	fs.Nodes["/"] = &Node{
		Type:     TypeDirectory,
		Name:     rootName,
		Path:     "/",
		Children: []string{},
	}
	return fs
}

// Node returns the node at p.
func (fs *FileSystem) Node(p string) (*Node, bool) {
	n, ok := fs.Nodes[p]
	return n, ok
}

func (fs *FileSystem) IsValidPath(p string) bool {
	_, ok := fs.Nodes[p]
	return ok
}

func (fs *FileSystem) IsDirectory(p string) bool {
	return fs.Nodes[p].IsDirectory()
}

func (fs *FileSystem) IsFile(p string) bool {
	return fs.Nodes[p].IsFile()
}

// Children returns the nodes of a directory in stored order. Unknown paths and
// files yield nil.
func (fs *FileSystem) Children(dir string) []*Node {
	n := fs.Nodes[dir]
	if !n.IsDirectory() {
		return nil
	}

	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if child, ok := fs.Nodes[c]; ok {
			out = append(out, child)
		}
	}
	return out
}

// AddDirectory creates a directory under its parent, which must exist.
func (fs *FileSystem) AddDirectory(p string) *Node {
	return fs.add(&Node{
		Type:     TypeDirectory,
		Name:     path.Base(p),
		Path:     p,
		Children: []string{},
	})
}

// AddFile creates a file node under its parent, which must exist.
func (fs *FileSystem) AddFile(p, text string, rendered Rendered) *Node {
	return fs.add(&Node{
		Type:      TypeFile,
		Name:      path.Base(p),
		Path:      p,
		Text:      text,
		Extension: path.Ext(p),
		Rendered:  rendered,
	})
}

func (fs *FileSystem) add(n *Node) *Node {
	n.Parent = path.Dir(n.Path)
	if parent := fs.Nodes[n.Parent]; parent.IsDirectory() {
		parent.Children = append(parent.Children, n.Path)
	}
	fs.Nodes[n.Path] = n
	return n
}
