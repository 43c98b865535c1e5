package tui

import (
	"strings"
	"testing"

	"github.com/kcaldas/termblog/pkg/pager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPane_Wrap(t *testing.T) {
	p := &pane{}
	p.SetSize(5, 2)
	p.SetText("abcdefghij\nxy\n")

	assert.Equal(t, 3, p.ContentHeight())
	text, _ := p.Snapshot()
	assert.Equal(t, "abcde\nfghij\nxy", text)

	t.Run("resize rewraps", func(t *testing.T) {
		_, before := p.Snapshot()
		require.True(t, p.SetSize(10, 2))
		_, after := p.Snapshot()

		assert.Equal(t, 2, p.ContentHeight())
		assert.NotEqual(t, before, after)
		assert.False(t, p.SetSize(10, 2))
	})

	t.Run("height change keeps wrapping", func(t *testing.T) {
		_, before := p.Snapshot()
		require.True(t, p.SetSize(10, 1))
		_, after := p.Snapshot()
		assert.Equal(t, before, after)
	})
}

func TestPane_Scroll(t *testing.T) {
	p := &pane{}
	p.SetSize(80, 10)
	p.SetText(strings.Repeat("line\n", 30))

	p.ScrollTo(100)
	assert.Equal(t, 20, p.Origin())

	p.ScrollTo(-3)
	assert.Equal(t, 0, p.Origin())

	assert.False(t, p.ScrollBy(15))
	assert.Equal(t, 15, p.Origin())
	assert.True(t, p.ScrollBy(15))
	assert.Equal(t, 20, p.Origin())

	t.Run("shrinking content clamps origin", func(t *testing.T) {
		p.SetText("one")
		p.SetSize(80, 5)
		assert.Equal(t, 0, p.Origin())
	})
}

func TestPagerSurface(t *testing.T) {
	s := newPagerSurface()
	s.SetSize(40, 20)
	s.ScrollTo(0)

	s.SetContent(longText(100), pager.Markdown)
	assert.Equal(t, 100, s.ContentHeight())
	assert.Equal(t, 20, s.ViewportHeight())
	assert.Equal(t, pager.Markdown, s.contentType)

	s.ScrollTo(50)
	s.SetContent("short", pager.PlainText)
	assert.Equal(t, 0, s.Origin())
	assert.Equal(t, 1, s.ContentHeight())
}

func longText(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "row"
	}
	return strings.Join(lines, "\n")
}
