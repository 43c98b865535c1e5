package vfs

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFS() *FileSystem {
	fs := New("files")
	fs.AddDirectory("/posts")
	fs.AddFile("/posts/hello.md", "# Hello", Rendered{Kind: KindHTML, Content: "HELLO"})
	fs.AddFile("/about.txt", "about me", Rendered{Kind: KindText, Content: "about me"})
	return fs
}

func TestFileSystem_Lookup(t *testing.T) {
	fs := sampleFS()

	assert.True(t, fs.IsValidPath("/posts"))
	assert.True(t, fs.IsDirectory("/posts"))
	assert.False(t, fs.IsFile("/posts"))
	assert.True(t, fs.IsFile("/posts/hello.md"))
	assert.False(t, fs.IsValidPath("/missing"))
	assert.False(t, fs.IsDirectory("/missing"))

	node, ok := fs.Node("/posts/hello.md")
	require.True(t, ok)
	assert.Equal(t, "hello.md", node.Name)
	assert.Equal(t, "/posts", node.Parent)
	assert.Equal(t, ".md", node.Extension)
}

func TestFileSystem_Children(t *testing.T) {
	fs := sampleFS()

	t.Run("keeps insertion order", func(t *testing.T) {
		var names []string
		for _, c := range fs.Children("/") {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"posts", "about.txt"}, names)
	})

	t.Run("files have no children", func(t *testing.T) {
		assert.Nil(t, fs.Children("/about.txt"))
		assert.Nil(t, fs.Children("/missing"))
	})
}

func TestAbsolutePath(t *testing.T) {
	fs := sampleFS()

	tests := []struct {
		name string
		cwd  string
		rel  string
		want string
	}{
		{name: "relative from root", cwd: "/", rel: "posts", want: "/posts"},
		{name: "relative from subdir", cwd: "/posts", rel: "hello.md", want: "/posts/hello.md"},
		{name: "parent", cwd: "/posts", rel: "..", want: "/"},
		{name: "current", cwd: "/posts", rel: ".", want: "/posts"},
		{name: "absolute", cwd: "/posts", rel: "/about.txt", want: "/about.txt"},
		{name: "absolute is cleaned", cwd: "/", rel: "/posts/../about.txt", want: "/about.txt"},
		{name: "cannot escape root", cwd: "/", rel: "../../..", want: "/"},
		{name: "trailing slash", cwd: "/", rel: "posts/", want: "/posts"},
		{name: "empty stays put", cwd: "/posts", rel: "", want: "/posts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsolutePath(fs, tt.cwd, tt.rel))
		})
	}
}

func TestParseFrontmatter(t *testing.T) {
	t.Run("parses header", func(t *testing.T) {
		src := "---\ntitle: Hello\ndate: \"2024-01-02\"\ntags: [go, tui]\n---\n# Body\n"

		meta, body, err := ParseFrontmatter([]byte(src))

		require.NoError(t, err)
		assert.Equal(t, "Hello", meta.Title)
		assert.Equal(t, "2024-01-02", meta.Date)
		assert.Equal(t, []string{"go", "tui"}, meta.Tags)
		assert.Equal(t, "# Body\n", string(body))
	})

	t.Run("no header", func(t *testing.T) {
		meta, body, err := ParseFrontmatter([]byte("# Just markdown"))

		require.NoError(t, err)
		assert.Empty(t, meta.Title)
		assert.Equal(t, "# Just markdown", string(body))
	})

	t.Run("unterminated header", func(t *testing.T) {
		_, body, err := ParseFrontmatter([]byte("---\ntitle: x\n"))

		assert.Error(t, err)
		assert.Equal(t, "---\ntitle: x\n", string(body))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, _, err := ParseFrontmatter([]byte("---\ntitle: [unclosed\n---\nbody"))
		assert.Error(t, err)
	})
}

type upperRenderer struct{}

func (upperRenderer) Render(md string) (string, error) { return strings.ToUpper(md), nil }

type failingRenderer struct{}

func (failingRenderer) Render(string) (string, error) { return "", errors.New("boom") }

func TestBuilder_Build(t *testing.T) {
	content := fstest.MapFS{
		"about.txt":       {Data: []byte("about me")},
		"posts/hello.md":  {Data: []byte("---\ntitle: Hello\n---\n# hello\n")},
		"posts/second.md": {Data: []byte("second")},
	}

	fs, err := NewBuilder(upperRenderer{}).Build(content, "files")
	require.NoError(t, err)

	t.Run("directories listed in read order", func(t *testing.T) {
		root, ok := fs.Node("/")
		require.True(t, ok)
		assert.Equal(t, "files", root.Name)
		assert.Equal(t, []string{"/about.txt", "/posts"}, root.Children)

		posts, ok := fs.Node("/posts")
		require.True(t, ok)
		assert.Equal(t, []string{"/posts/hello.md", "/posts/second.md"}, posts.Children)
	})

	t.Run("markdown rendered as html kind", func(t *testing.T) {
		node, ok := fs.Node("/posts/hello.md")
		require.True(t, ok)
		assert.Equal(t, KindHTML, node.Rendered.Kind)
		assert.Equal(t, "# HELLO\n", node.Rendered.Content)
		assert.Equal(t, "Hello", node.Meta.Title)
		assert.Contains(t, node.Text, "title: Hello")
	})

	t.Run("other files kept as text", func(t *testing.T) {
		node, ok := fs.Node("/about.txt")
		require.True(t, ok)
		assert.Equal(t, KindText, node.Rendered.Kind)
		assert.Equal(t, "about me", node.Rendered.Content)
	})
}

func TestBuilder_RenderFailureFallsBackToText(t *testing.T) {
	content := fstest.MapFS{"a.md": {Data: []byte("# a")}}

	fs, err := NewBuilder(failingRenderer{}).Build(content, "files")
	require.NoError(t, err)

	node, ok := fs.Node("/a.md")
	require.True(t, ok)
	assert.Equal(t, KindText, node.Rendered.Kind)
	assert.Equal(t, "# a", node.Rendered.Content)
}

func TestBuilder_BuildDirMissing(t *testing.T) {
	_, err := NewBuilder(nil).BuildDir(t.TempDir() + "/does-not-exist")
	assert.Error(t, err)
}

func TestGlamourRenderer(t *testing.T) {
	r, err := NewGlamourRenderer("notty", 60)
	require.NoError(t, err)

	out, err := r.Render("# Hello\n\nsome *text*")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "text")
}

func TestTree(t *testing.T) {
	out := Tree(sampleFS())

	expected := "files/\n" +
		"├── posts/\n" +
		"│   └── hello.md\n" +
		"└── about.txt\n"
	assert.Equal(t, expected, out)
}
