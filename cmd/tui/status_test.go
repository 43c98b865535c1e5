package tui

import (
	"testing"

	"github.com/kcaldas/termblog/pkg/pager"
	"github.com/kcaldas/termblog/pkg/session"
	"github.com/kcaldas/termblog/pkg/shell"
	"github.com/stretchr/testify/assert"
)

func TestStatusLine(t *testing.T) {
	prompt := shell.Prompt{Directory: "/posts", Prefix: ">", Date: "09:30:00"}

	t.Run("canonical", func(t *testing.T) {
		line := statusLine(prompt, session.Canonical, false, pager.State{})
		assert.Equal(t, " /posts  CANONICAL  help for commands  <C-q> exit", line)
	})

	t.Run("paging", func(t *testing.T) {
		state := pager.State{CurrentPage: 2, TotalPages: 6, Progress: 20}
		line := statusLine(prompt, session.Raw, true, state)
		assert.Equal(t, " /posts  RAW  page 2/6  20%  j/k page  g/G top/bottom  q quit", line)
	})
}

func TestSuggestionStrip(t *testing.T) {
	tests := []struct {
		name string
		in   shell.Suggestions
		want string
	}{
		{name: "empty", in: shell.Suggestions{Selected: -1}, want: ""},
		{name: "none selected", in: shell.Suggestions{Items: []string{"ls", "ls-long"}, Selected: -1}, want: "ls  ls-long"},
		{name: "selected", in: shell.Suggestions{Items: []string{"ls", "ls-long"}, Selected: 1}, want: "ls  [ls-long]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestionStrip(tt.in))
		})
	}
}
