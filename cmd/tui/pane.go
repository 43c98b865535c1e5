package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/kcaldas/termblog/pkg/pager"
)

// pane is a block of text hard-wrapped to a width and shown through a window
// of height rows starting at origin. Views are drawn from it, so the row
// arithmetic never depends on gocui's own wrapping.
type pane struct {
	mu sync.Mutex

	text    string
	lines   []string
	width   int
	height  int
	origin  int
	version int
}

func (p *pane) SetText(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.text = text
	p.rewrap()
	p.origin = min(p.origin, p.maxOrigin())
}

// SetSize reports whether the size changed.
func (p *pane) SetSize(width, height int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.width == width && p.height == height {
		return false
	}
	rewrap := p.width != width
	p.width, p.height = width, height
	if rewrap {
		p.rewrap()
	}
	p.origin = min(p.origin, p.maxOrigin())
	return true
}

// ContentHeight is the number of wrapped rows.
func (p *pane) ContentHeight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.lines)
}

func (p *pane) ViewportHeight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.height
}

// ScrollTo moves the first visible row, clamped to the content.
func (p *pane) ScrollTo(row int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.origin = max(0, min(row, p.maxOrigin()))
}

// ScrollBy moves by delta rows and reports whether the bottom is visible.
func (p *pane) ScrollBy(delta int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.origin = max(0, min(p.origin+delta, p.maxOrigin()))
	return p.origin == p.maxOrigin()
}

func (p *pane) ScrollToBottom() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.origin = p.maxOrigin()
}

func (p *pane) Origin() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.origin
}

// Snapshot returns the wrapped text and its version. The version changes
// whenever the text or wrap width does.
func (p *pane) Snapshot() (string, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return strings.Join(p.lines, "\n"), p.version
}

func (p *pane) rewrap() {
	p.version++
	if p.text == "" {
		p.lines = nil
		return
	}

	text := strings.TrimRight(p.text, "\n")
	if p.width > 0 {
		text = ansi.Hardwrap(text, p.width, true)
	}
	p.lines = strings.Split(text, "\n")
}

func (p *pane) maxOrigin() int {
	return max(0, len(p.lines)-p.height)
}

// pagerSurface is the pane the pager scrolls.
type pagerSurface struct {
	pane

	contentType pager.ContentType
}

func newPagerSurface() *pagerSurface {
	return &pagerSurface{contentType: pager.PlainText}
}

func (s *pagerSurface) SetContent(content string, contentType pager.ContentType) {
	s.SetText(content)
	s.mu.Lock()
	s.contentType = contentType
	s.mu.Unlock()
	s.ScrollTo(0)
}
