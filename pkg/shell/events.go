package shell

import (
	"github.com/kcaldas/termblog/pkg/events"
	"github.com/kcaldas/termblog/pkg/pager"
)

// Prompt is what the host shows in front of the input line.
type Prompt struct {
	Directory string
	Prefix    string
	Date      string
}

// Paging describes content handed to the pager.
type Paging struct {
	Content     string
	ContentType pager.ContentType
	Title       string
}

// Suggestions is the editor's completion state for the suggestion strip.
type Suggestions struct {
	Items    []string
	Selected int
}

var (
	PagingEnabled      = events.Topic[Paging]("paging:enabled")
	PagingDisabled     = events.Topic[struct{}]("paging:disabled")
	PromptChanged      = events.Topic[Prompt]("shell:promptChanged")
	InputChanged       = events.Topic[string]("shell:inputChanged")
	SuggestionsChanged = events.Topic[Suggestions]("shell:suggestionsChanged")
)
