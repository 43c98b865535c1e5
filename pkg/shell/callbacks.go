package shell

import (
	"github.com/kcaldas/termblog/pkg/editor"
	"github.com/kcaldas/termblog/pkg/events"
	"github.com/kcaldas/termblog/pkg/output"
)

func (s *Shell) OnCommandExecute(line string) {
	s.ExecuteCommand(line)
}

func (s *Shell) OnRequestPrevCommand() string { return s.history.Prev() }
func (s *Shell) OnRequestNextCommand() string { return s.history.Next() }
func (s *Shell) OnRequestLastCommand()        { s.history.GoToEnd() }
func (s *Shell) OnRequestClear()              { s.Clear() }

// OnRequestAutoComplete completes the word in front of the editor's caret.
func (s *Shell) OnRequestAutoComplete(ed *editor.Editor) []string {
	start, _ := ed.Cursor()
	return s.completion.Complete(ed.Input(), start)
}

// OnInterrupt leaves the abandoned line in the scrollback, marked with ^C.
func (s *Shell) OnInterrupt(input string) {
	s.output.Add(output.Item{
		Content: s.prefix + " " + input + "^C",
		Kind:    output.KindText,
		Style:   &output.Style{Foreground: s.styles.Theme.Muted},
	})
}

func (s *Shell) OnInputChange(input string) {
	events.Emit(s.bus, InputChanged, input)
}

func (s *Shell) OnSuggestionsChange(suggestions []string, selected int) {
	events.Emit(s.bus, SuggestionsChanged, Suggestions{Items: suggestions, Selected: selected})
}
