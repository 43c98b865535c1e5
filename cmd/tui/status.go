package tui

import (
	"fmt"
	"strings"

	"github.com/kcaldas/termblog/pkg/pager"
	"github.com/kcaldas/termblog/pkg/session"
	"github.com/kcaldas/termblog/pkg/shell"
)

// statusLine is the bottom bar: where the user is and how to get out.
func statusLine(prompt shell.Prompt, mode session.Mode, paging bool, state pager.State) string {
	if paging {
		return fmt.Sprintf(" %s  %s  page %d/%d  %d%%  j/k page  g/G top/bottom  q quit",
			prompt.Directory, strings.ToUpper(string(mode)), state.CurrentPage, state.TotalPages, state.Progress)
	}
	return fmt.Sprintf(" %s  %s  help for commands  <C-q> exit", prompt.Directory, strings.ToUpper(string(mode)))
}

// suggestionStrip lays out completion candidates with the selected one
// bracketed.
func suggestionStrip(s shell.Suggestions) string {
	parts := make([]string, len(s.Items))
	for i, item := range s.Items {
		if i == s.Selected {
			parts[i] = "[" + item + "]"
		} else {
			parts[i] = item
		}
	}
	return strings.Join(parts, "  ")
}
