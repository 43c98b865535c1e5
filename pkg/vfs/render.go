package vfs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown into pre-rendered markup.
type Renderer interface {
	Render(markdown string) (string, error)
}

// GlamourRenderer renders markdown to ANSI for terminal hosts.
type GlamourRenderer struct {
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer with a glamour standard style ("dark",
// "light", "notty", ...) wrapping at width columns.
func NewGlamourRenderer(style string, width int) (*GlamourRenderer, error) {
	if style == "" {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &GlamourRenderer{renderer: r}, nil
}

func (g *GlamourRenderer) Render(markdown string) (string, error) {
	out, err := g.renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// PlainRenderer passes markdown through untouched.
type PlainRenderer struct{}

func (PlainRenderer) Render(markdown string) (string, error) {
	return markdown, nil
}
