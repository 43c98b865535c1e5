package tui

import (
	"unicode/utf8"

	"github.com/awesome-gocui/gocui"
	"github.com/gdamore/tcell/v2"
	"github.com/kcaldas/termblog/pkg/keys"
)

var namedKeys = map[gocui.Key]string{
	gocui.KeyEnter:      keys.Enter,
	gocui.KeyTab:        keys.Tab,
	gocui.KeyEsc:        keys.Escape,
	gocui.KeyBackspace:  keys.Backspace,
	gocui.KeyBackspace2: keys.Backspace,
	gocui.KeyDelete:     keys.Delete,
	gocui.KeyArrowUp:    keys.ArrowUp,
	gocui.KeyArrowDown:  keys.ArrowDown,
	gocui.KeyArrowLeft:  keys.ArrowLeft,
	gocui.KeyArrowRight: keys.ArrowRight,
	gocui.KeyHome:       keys.Home,
	gocui.KeyEnd:        keys.End,
	gocui.KeyPgup:       keys.PageUp,
	gocui.KeyPgdn:       keys.PageDown,
}

// toEvent converts a gocui key press. Named keys win over the control
// letters they share a code with (Ctrl-I is Tab, Ctrl-M is Enter).
func toEvent(key gocui.Key, ch rune, mod gocui.Modifier) (keys.Event, bool) {
	ev := keys.Event{
		Ctrl:  mod&gocui.Modifier(tcell.ModCtrl) != 0,
		Shift: mod&gocui.Modifier(tcell.ModShift) != 0,
		Alt:   mod&gocui.Modifier(tcell.ModAlt) != 0,
	}

	switch {
	case ch != 0:
		ev.Key = string(ch)
		// The terminal already applied shift to the character.
		ev.Shift = false
	case key == gocui.KeySpace:
		ev.Key = " "
		ev.Shift = false
	default:
		if name, ok := namedKeys[key]; ok {
			ev.Key = name
			if key == gocui.KeyBackspace || key == gocui.KeyBackspace2 {
				ev.Ctrl = false
			}
			break
		}
		if key >= gocui.KeyCtrlA && key <= gocui.KeyCtrlZ {
			ev.Key = string(rune('a' + int(key-gocui.KeyCtrlA)))
			ev.Ctrl = true
			break
		}
		return keys.Event{}, false
	}
	return ev, true
}

// textControl is the host's default editing of the prompt line for keys the
// editor leaves unbound. Offsets are bytes, matching the editor.
type textControl struct {
	value string
	start int
	end   int
}

// apply edits the line for ev and reports whether anything changed.
func (t *textControl) apply(ev keys.Event) bool {
	lo, hi := min(t.start, t.end), max(t.start, t.end)
	lo, hi = clampOffset(lo, t.value), clampOffset(hi, t.value)

	if r, ok := ev.Rune(); ok && r >= ' ' {
		t.replace(lo, hi, string(r))
		return true
	}
	if ev.Ctrl || ev.Alt {
		return false
	}

	switch ev.Key {
	case keys.Backspace:
		if lo == hi {
			if lo == 0 {
				return false
			}
			_, size := utf8.DecodeLastRuneInString(t.value[:lo])
			lo -= size
		}
		t.replace(lo, hi, "")
		return true
	case keys.Delete:
		if lo == hi {
			if hi == len(t.value) {
				return false
			}
			_, size := utf8.DecodeRuneInString(t.value[hi:])
			hi += size
		}
		t.replace(lo, hi, "")
		return true
	}
	return false
}

func (t *textControl) replace(lo, hi int, s string) {
	t.value = t.value[:lo] + s + t.value[hi:]
	t.start = lo + len(s)
	t.end = t.start
}

// clampOffset clamps v into s and backs it up to the start of the rune it
// falls in.
func clampOffset(v int, s string) int {
	v = max(0, min(v, len(s)))
	for v > 0 && v < len(s) && !utf8.RuneStart(s[v]) {
		v--
	}
	return v
}
