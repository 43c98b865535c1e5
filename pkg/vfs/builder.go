package vfs

import (
	"bytes"
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/kcaldas/termblog/pkg/logging"
	"gopkg.in/yaml.v3"
)

var frontmatterDelimiter = []byte("---")

// Builder walks a content tree once at startup and produces the immutable
// FileSystem the shell browses.
type Builder struct {
	renderer Renderer
	logger   logging.Logger
}

// NewBuilder creates a builder. A nil renderer leaves markdown as text.
func NewBuilder(renderer Renderer) *Builder {
	if renderer == nil {
		renderer = PlainRenderer{}
	}
	return &Builder{
		renderer: renderer,
		logger:   logging.NewComponentLogger("vfs"),
	}
}

// BuildDir builds from a directory on disk.
func (b *Builder) BuildDir(dir string) (*FileSystem, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", dir)
	}
	return b.Build(os.DirFS(dir), filepath.Base(dir))
}

// Build walks fsys from its root. Directory entries keep the order ReadDir
// returns them in. A file that cannot be read is logged and skipped.
func (b *Builder) Build(fsys iofs.FS, rootName string) (*FileSystem, error) {
	if _, err := iofs.ReadDir(fsys, "."); err != nil {
		return nil, fmt.Errorf("failed to read content root: %w", err)
	}

	tree := New(rootName)
	if err := b.walk(fsys, tree, "."); err != nil {
		return nil, err
	}

	b.logger.Debug("file system built", "nodes", len(tree.Nodes))
	return tree, nil
}

func (b *Builder) walk(fsys iofs.FS, tree *FileSystem, dir string) error {
	entries, err := iofs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		rel := path.Join(dir, entry.Name())
		abs := "/" + rel

		if entry.IsDir() {
			tree.AddDirectory(abs)
			if err := b.walk(fsys, tree, rel); err != nil {
				return err
			}
			continue
		}

		data, err := iofs.ReadFile(fsys, rel)
		if err != nil {
			b.logger.Error("failed to read file", "path", abs, "error", err)
			continue
		}
		b.addFile(tree, abs, data)
	}
	return nil
}

func (b *Builder) addFile(tree *FileSystem, abs string, data []byte) {
	if path.Ext(abs) != ".md" {
		tree.AddFile(abs, string(data), Rendered{Kind: KindText, Content: string(data)})
		return
	}

	meta, body, err := ParseFrontmatter(data)
	if err != nil {
		b.logger.Warn("invalid frontmatter", "path", abs, "error", err)
		body = data
	}

	rendered, err := b.renderer.Render(string(body))
	if err != nil {
		b.logger.Warn("markdown render failed, keeping source", "path", abs, "error", err)
		node := tree.AddFile(abs, string(data), Rendered{Kind: KindText, Content: string(body)})
		node.Meta = meta
		return
	}

	node := tree.AddFile(abs, string(data), Rendered{Kind: KindHTML, Content: rendered})
	node.Meta = meta
}

// ParseFrontmatter splits a leading "---" delimited YAML block from the body.
// Content without a header is returned unchanged.
func ParseFrontmatter(data []byte) (Frontmatter, []byte, error) {
	var meta Frontmatter

	trimmed := bytes.TrimPrefix(data, []byte("\ufeff"))
	if !bytes.HasPrefix(trimmed, frontmatterDelimiter) {
		return meta, data, nil
	}

	rest := trimmed[len(frontmatterDelimiter):]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 || len(bytes.TrimSpace(rest[:nl])) != 0 {
		return meta, data, nil
	}
	rest = rest[nl+1:]

	end := bytes.Index(rest, append([]byte("\n"), frontmatterDelimiter...))
	var header, body []byte
	switch {
	case bytes.HasPrefix(rest, frontmatterDelimiter):
		header, body = nil, rest[len(frontmatterDelimiter):]
	case end >= 0:
		header, body = rest[:end], rest[end+1+len(frontmatterDelimiter):]
	default:
		return meta, data, fmt.Errorf("unterminated frontmatter")
	}

	if err := yaml.Unmarshal(header, &meta); err != nil {
		return Frontmatter{}, data, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return meta, bytes.TrimLeft(body, "\r\n"), nil
}
