package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a palette of W3C hex colors. Empty colors leave the terminal
// default in place.
type Theme struct {
	PromptPrefix string
	Command      string
	Directory    string
	Text         string
	Error        string
	Muted        string
	Accent       string
	Border       string
}

var Themes = map[string]*Theme{
	"default": {
		PromptPrefix: "#6B9B6B", // matte green
		Command:      "#E8E8E8",
		Directory:    "#6B8CAF", // matte blue
		Text:         "#D4D4D4",
		Error:        "#C85450",
		Muted:        "#8A8A8A",
		Accent:       "#D4A854",
		Border:       "#6B6B6B",
	},
	"mono": {},
	"dracula": {
		PromptPrefix: "#50FA7B",
		Command:      "#F8F8F2",
		Directory:    "#BD93F9",
		Text:         "#E6E6E6",
		Error:        "#FF5555",
		Muted:        "#6272A4",
		Accent:       "#F1FA8C",
		Border:       "#6272A4",
	},
	"nord": {
		PromptPrefix: "#A3BE8C",
		Command:      "#ECEFF4",
		Directory:    "#88C0D0",
		Text:         "#E5E9F0",
		Error:        "#BF616A",
		Muted:        "#616E88",
		Accent:       "#EBCB8B",
		Border:       "#4C566A",
	},
}

// GetTheme returns the named theme, or default when the name is unknown.
func GetTheme(name string) *Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func GetThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Styles is the styling context handed to the shell and the host. Nothing
// looks colors up globally; everything goes through a Styles value.
type Styles struct {
	Theme *Theme

	PromptPrefix lipgloss.Style
	Command      lipgloss.Style
	Directory    lipgloss.Style
	Error        lipgloss.Style
	Muted        lipgloss.Style
	Status       lipgloss.Style

	renderer *lipgloss.Renderer
}

// NewStyles builds the styles for t on r. A nil r uses lipgloss' default
// renderer.
func NewStyles(t *Theme, r *lipgloss.Renderer) *Styles {
	if t == nil {
		t = Themes["default"]
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	fg := func(hex string) lipgloss.Style {
		s := r.NewStyle()
		if hex != "" {
			s = s.Foreground(lipgloss.Color(hex))
		}
		return s
	}

	return &Styles{
		Theme:        t,
		PromptPrefix: fg(t.PromptPrefix).Bold(true),
		Command:      fg(t.Command),
		Directory:    fg(t.Directory),
		Error:        fg(t.Error),
		Muted:        fg(t.Muted).Italic(true),
		Status:       fg(t.Muted),
		renderer:     r,
	}
}

// Echo renders a submitted line the way it appeared at the prompt.
func (s *Styles) Echo(prefix, line string) string {
	if line == "" {
		return s.PromptPrefix.Render(prefix)
	}
	return s.PromptPrefix.Render(prefix) + " " + s.Command.Render(line)
}

func (s *Styles) Renderer() *lipgloss.Renderer {
	return s.renderer
}
