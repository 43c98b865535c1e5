package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kcaldas/termblog/pkg/output"
)

// Formatter turns scrollback items into terminal text.
type Formatter struct {
	styles *Styles
}

func NewFormatter(styles *Styles) *Formatter {
	return &Formatter{styles: styles}
}

// Format renders one item. HTML items are pre-rendered and written verbatim,
// as are text items without a style.
func (f *Formatter) Format(item output.Item) string {
	if item.Kind == output.KindHTML || item.Style == nil {
		return item.Content
	}
	return f.style(item.Style).Render(item.Content)
}

// FormatAll renders items one per line.
func (f *Formatter) FormatAll(items []output.Item) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = f.Format(item)
	}
	return strings.Join(lines, "\n")
}

func (f *Formatter) style(st *output.Style) lipgloss.Style {
	s := f.styles.renderer.NewStyle().
		Bold(st.Bold).
		Italic(st.Italic).
		Underline(st.Underline)
	if st.Foreground != "" {
		s = s.Foreground(lipgloss.Color(st.Foreground))
	}
	if st.Background != "" {
		s = s.Background(lipgloss.Color(st.Background))
	}
	return s
}
