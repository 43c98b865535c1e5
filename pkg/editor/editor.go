package editor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kcaldas/termblog/pkg/keys"
)

var wordBeforeCursor = regexp.MustCompile(`(\s*)\S+\s*$`)

// State is the live input line. CursorStart < CursorEnd is a selection
// reported by the host text control.
type State struct {
	Input       string
	CursorStart int
	CursorEnd   int
}

// Completion is the tab-completion session. SelectedIndex is -1 while
// inactive.
type Completion struct {
	Suggestions   []string
	SelectedIndex int
	Active        bool
}

// Editor owns the input line, its cursor/selection and key dispatch.
// Indices are byte offsets into the input and always sit on a rune boundary.
type Editor struct {
	input       string
	cursorStart int
	cursorEnd   int

	completion Completion
	callbacks  Callbacks
	bindings   map[string]func()
}

// New creates an editor with the default key bindings. A nil callbacks
// value is replaced by NopCallbacks.
func New(callbacks Callbacks) *Editor {
	e := &Editor{
		completion: Completion{SelectedIndex: -1},
	}
	e.SetCallbacks(callbacks)
	e.bindings = map[string]func(){
		keys.Enter:      e.handleEnter,
		keys.ArrowUp:    e.handleArrowUp,
		keys.ArrowDown:  e.handleArrowDown,
		keys.ArrowLeft:  e.MoveCursorLeft,
		keys.ArrowRight: e.MoveCursorRight,
		keys.Tab:        e.handleTab,
		keys.Home:       e.MoveCursorToStart,
		keys.End:        e.MoveCursorToEnd,
		keys.Space:      e.handleSpace,
		"<C-a>":         e.MoveCursorToStart,
		"<C-e>":         e.MoveCursorToEnd,
		"<C-c>":         e.handleCtrlC,
		"<C-k>":         e.handleCtrlK,
		"<C-l>":         e.handleCtrlL,
		"<C-u>":         e.handleCtrlU,
		"<C-w>":         e.handleCtrlW,
	}
	return e
}

func (e *Editor) SetCallbacks(callbacks Callbacks) {
	if callbacks == nil {
		callbacks = NopCallbacks{}
	}
	e.callbacks = callbacks
}

// Bind adds or replaces the handler for a key name such as "<C-r>".
func (e *Editor) Bind(name string, handler func()) {
	e.bindings[name] = handler
}

// Bindings lists the bound key names.
func (e *Editor) Bindings() []string {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	return names
}

func (e *Editor) Input() string {
	return e.input
}

// Cursor returns the selection bounds; equal values are a plain caret.
func (e *Editor) Cursor() (start, end int) {
	return e.cursorStart, e.cursorEnd
}

func (e *Editor) State() State {
	return State{Input: e.input, CursorStart: e.cursorStart, CursorEnd: e.cursorEnd}
}

// Completion returns a copy of the completion session.
func (e *Editor) Completion() Completion {
	c := e.completion
	c.Suggestions = append([]string(nil), e.completion.Suggestions...)
	return c
}

// SetInput replaces the line. With cursorToEnd the caret collapses to the end,
// otherwise the old bounds are clamped to the new text. The input-change
// callback always fires.
func (e *Editor) SetInput(text string, cursorToEnd bool) {
	e.input = text
	if cursorToEnd {
		e.cursorStart = len(text)
		e.cursorEnd = len(text)
	} else {
		e.cursorStart = runeOffset(text, e.cursorStart)
		e.cursorEnd = runeOffset(text, e.cursorEnd)
	}
	e.callbacks.OnInputChange(text)
}

// SetSelection clamps both bounds into the line, moving an offset inside a
// multi-byte character back to its first byte, and stores them as given.
// Ordering is the host's responsibility.
func (e *Editor) SetSelection(start, end int) (int, int) {
	e.cursorStart = runeOffset(e.input, start)
	e.cursorEnd = runeOffset(e.input, end)
	return e.cursorStart, e.cursorEnd
}

// MoveCursorLeft collapses a selection to its left edge, or steps one
// character left.
func (e *Editor) MoveCursorLeft() {
	lo, hi := e.ordered()
	if lo != hi {
		e.collapse(lo)
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.input[:lo])
	e.collapse(lo - size)
}

// MoveCursorRight collapses a selection to its right edge, or steps one
// character right.
func (e *Editor) MoveCursorRight() {
	lo, hi := e.ordered()
	if lo != hi {
		e.collapse(hi)
		return
	}
	_, size := utf8.DecodeRuneInString(e.input[hi:])
	e.collapse(hi + size)
}

func (e *Editor) MoveCursorToStart() {
	e.collapse(0)
}

func (e *Editor) MoveCursorToEnd() {
	e.collapse(len(e.input))
}

// HandleKeyDown dispatches a key press. It returns true when a binding
// consumed the key and the host must skip its default handling.
func (e *Editor) HandleKeyDown(ev keys.Event) bool {
	name := ev.Name()
	if name != keys.Tab && e.completion.Active {
		e.resetCompletion()
	}

	handler, ok := e.bindings[name]
	if !ok {
		return false
	}
	handler()
	return true
}

// HandleTextInput accepts a replacement line from the host text control. The
// caret is kept where the host put it, so it is only synced when both
// bounds are reported.
func (e *Editor) HandleTextInput(value string, selStart, selEnd *int) {
	e.SetInput(value, false)
	if selStart != nil && selEnd != nil {
		e.SetSelection(*selStart, *selEnd)
	}
}

// NewLine discards the input and asks for the history cursor to reset.
func (e *Editor) NewLine() {
	e.SetInput("", true)
	e.SetSelection(0, 0)
	e.callbacks.OnRequestLastCommand()
}

func (e *Editor) handleEnter() {
	e.callbacks.OnCommandExecute(strings.TrimSpace(e.input))
	e.NewLine()
}

func (e *Editor) handleArrowUp() {
	e.SetInput(e.callbacks.OnRequestPrevCommand(), true)
}

func (e *Editor) handleArrowDown() {
	e.SetInput(e.callbacks.OnRequestNextCommand(), true)
}

func (e *Editor) handleSpace() {
	e.insert(" ")
}

func (e *Editor) handleTab() {
	if strings.TrimSpace(e.input) == "" {
		e.insert("\t")
		return
	}

	if !e.completion.Active {
		suggestions := e.callbacks.OnRequestAutoComplete(e)
		if len(suggestions) == 0 {
			e.resetCompletion()
			return
		}
		e.completion = Completion{
			Suggestions:   append([]string(nil), suggestions...),
			SelectedIndex: 0,
			Active:        true,
		}
	} else if len(e.completion.Suggestions) > 0 {
		e.completion.SelectedIndex = (e.completion.SelectedIndex + 1) % len(e.completion.Suggestions)
	}

	e.splice(e.completion.Suggestions[e.completion.SelectedIndex])
	e.callbacks.OnSuggestionsChange(e.Completion().Suggestions, e.completion.SelectedIndex)
}

func (e *Editor) handleCtrlC() {
	e.callbacks.OnInterrupt(e.input)
	e.NewLine()
}

func (e *Editor) handleCtrlK() {
	lo, _ := e.ordered()
	e.SetInput(e.input[:lo], true)
}

func (e *Editor) handleCtrlL() {
	e.callbacks.OnRequestClear()
}

// Ctrl-U drops the whole line, not just the text before the cursor.
func (e *Editor) handleCtrlU() {
	e.NewLine()
}

func (e *Editor) handleCtrlW() {
	lo, hi := e.ordered()
	before := wordBeforeCursor.ReplaceAllString(e.input[:lo], "")
	after := e.input[hi:]

	e.SetInput(before+after, false)
	e.collapse(len(before))
}

// splice replaces the word being completed, from just after the last space
// before the cursor up to the cursor, with s.
func (e *Editor) splice(s string) {
	lo, hi := e.ordered()
	before := e.input[:lo]
	after := e.input[hi:]

	prefix := before[:strings.LastIndex(before, " ")+1]
	e.SetInput(prefix+s+after, false)
	e.collapse(len(prefix) + len(s))
}

func (e *Editor) insert(s string) {
	lo, hi := e.ordered()
	e.SetInput(e.input[:lo]+s+e.input[hi:], false)
	e.collapse(lo + len(s))
}

func (e *Editor) resetCompletion() {
	wasActive := e.completion.Active
	e.completion = Completion{SelectedIndex: -1}
	if wasActive {
		e.callbacks.OnSuggestionsChange(nil, -1)
	}
}

func (e *Editor) collapse(pos int) {
	e.cursorStart = pos
	e.cursorEnd = pos
}

// ordered returns the selection as a clamped low/high pair.
func (e *Editor) ordered() (int, int) {
	lo := runeOffset(e.input, e.cursorStart)
	hi := runeOffset(e.input, e.cursorEnd)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// runeOffset clamps i into s and backs it up to the start of the rune it
// falls in.
func runeOffset(s string, i int) int {
	i = clamp(i, 0, len(s))
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
