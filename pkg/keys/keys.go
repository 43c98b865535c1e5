// Package keys describes host key presses and their canonical binding names.
package keys

import (
	"strings"
)

// Named keys delivered by hosts.
const (
	Enter      = "Enter"
	Tab        = "Tab"
	Escape     = "Escape"
	Backspace  = "Backspace"
	Delete     = "Delete"
	ArrowUp    = "ArrowUp"
	ArrowDown  = "ArrowDown"
	ArrowLeft  = "ArrowLeft"
	ArrowRight = "ArrowRight"
	Home       = "Home"
	End        = "End"
	PageUp     = "PageUp"
	PageDown   = "PageDown"
	Space      = "Space"
)

// Event is a single key press. Key is either a named key above or the
// literal character typed.
type Event struct {
	Key   string
	Ctrl  bool
	Shift bool
	Alt   bool
}

// Name returns the binding name. Modifiers are checked ctrl, shift, alt and
// only the first held one is used: "<C-w>", "<S-Tab>", "<A-b>". A bare space
// is "Space".
func (e Event) Name() string {
	switch {
	case e.Ctrl:
		return "<C-" + e.Key + ">"
	case e.Shift:
		return "<S-" + e.Key + ">"
	case e.Alt:
		return "<A-" + e.Key + ">"
	}

	if e.Key == " " || e.Key == "Spacebar" {
		return Space
	}
	return e.Key
}

// Rune returns the typed character for single-character keys without ctrl
// or alt held.
func (e Event) Rune() (rune, bool) {
	if e.Ctrl || e.Alt {
		return 0, false
	}
	r := []rune(e.Key)
	if len(r) != 1 {
		return 0, false
	}
	return r[0], true
}

// Parse is the inverse of Name. Unknown text is taken as a literal key.
func Parse(name string) Event {
	if name == Space {
		return Event{Key: " "}
	}

	if len(name) > 4 && strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">") && name[2] == '-' {
		key := name[3 : len(name)-1]
		switch name[1] {
		case 'C':
			return Event{Key: key, Ctrl: true}
		case 'S':
			return Event{Key: key, Shift: true}
		case 'A':
			return Event{Key: key, Alt: true}
		}
	}
	return Event{Key: name}
}
