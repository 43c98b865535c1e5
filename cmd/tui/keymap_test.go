package tui

import (
	"testing"

	"github.com/awesome-gocui/gocui"
	"github.com/gdamore/tcell/v2"
	"github.com/kcaldas/termblog/pkg/keys"
	"github.com/stretchr/testify/assert"
)

func TestToEvent(t *testing.T) {
	tests := []struct {
		name string
		key  gocui.Key
		ch   rune
		mod  gocui.Modifier
		want keys.Event
		ok   bool
	}{
		{name: "rune", ch: 'a', want: keys.Event{Key: "a"}, ok: true},
		{name: "shifted rune", ch: 'G', mod: gocui.Modifier(tcell.ModShift), want: keys.Event{Key: "G"}, ok: true},
		{name: "alt rune", ch: 'b', mod: gocui.Modifier(tcell.ModAlt), want: keys.Event{Key: "b", Alt: true}, ok: true},
		{name: "space", key: gocui.KeySpace, want: keys.Event{Key: " "}, ok: true},
		{name: "enter", key: gocui.KeyEnter, want: keys.Event{Key: keys.Enter}, ok: true},
		{name: "tab", key: gocui.KeyTab, want: keys.Event{Key: keys.Tab}, ok: true},
		{name: "backspace", key: gocui.KeyBackspace2, want: keys.Event{Key: keys.Backspace}, ok: true},
		{name: "ctrl backspace", key: gocui.KeyBackspace, mod: gocui.Modifier(tcell.ModCtrl), want: keys.Event{Key: keys.Backspace}, ok: true},
		{name: "page down", key: gocui.KeyPgdn, want: keys.Event{Key: keys.PageDown}, ok: true},
		{name: "ctrl letter", key: gocui.KeyCtrlW, want: keys.Event{Key: "w", Ctrl: true}, ok: true},
		{name: "ctrl a", key: gocui.KeyCtrlA, want: keys.Event{Key: "a", Ctrl: true}, ok: true},
		{name: "ctrl arrow", key: gocui.KeyArrowLeft, mod: gocui.Modifier(tcell.ModCtrl), want: keys.Event{Key: keys.ArrowLeft, Ctrl: true}, ok: true},
		{name: "function key", key: gocui.KeyF1, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toEvent(tt.key, tt.ch, tt.mod)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToEvent_BindingNames(t *testing.T) {
	ev, _ := toEvent(gocui.KeyCtrlL, 0, gocui.ModNone)
	assert.Equal(t, "<C-l>", ev.Name())

	ev, _ = toEvent(gocui.KeySpace, 0, gocui.ModNone)
	assert.Equal(t, keys.Space, ev.Name())
}

func TestTextControl_Apply(t *testing.T) {
	tests := []struct {
		name      string
		control   textControl
		ev        keys.Event
		changed   bool
		wantValue string
		wantPos   int
	}{
		{name: "insert at caret", control: textControl{"ct", 1, 1}, ev: keys.Event{Key: "a"}, changed: true, wantValue: "cat", wantPos: 2},
		{name: "insert replaces selection", control: textControl{"cat x", 4, 5}, ev: keys.Event{Key: "y"}, changed: true, wantValue: "cat y", wantPos: 5},
		{name: "backspace", control: textControl{"lss", 3, 3}, ev: keys.Event{Key: keys.Backspace}, changed: true, wantValue: "ls", wantPos: 2},
		{name: "backspace multibyte", control: textControl{"café", 5, 5}, ev: keys.Event{Key: keys.Backspace}, changed: true, wantValue: "caf", wantPos: 3},
		{name: "backspace at start", control: textControl{"ls", 0, 0}, ev: keys.Event{Key: keys.Backspace}, changed: false, wantValue: "ls", wantPos: 0},
		{name: "backspace selection", control: textControl{"cat file", 8, 4}, ev: keys.Event{Key: keys.Backspace}, changed: true, wantValue: "cat ", wantPos: 4},
		{name: "delete", control: textControl{"lls", 0, 0}, ev: keys.Event{Key: keys.Delete}, changed: true, wantValue: "ls", wantPos: 0},
		{name: "delete at end", control: textControl{"ls", 2, 2}, ev: keys.Event{Key: keys.Delete}, changed: false, wantValue: "ls", wantPos: 2},
		{name: "ctrl letter ignored", control: textControl{"ls", 2, 2}, ev: keys.Event{Key: "x", Ctrl: true}, changed: false, wantValue: "ls", wantPos: 2},
		{name: "caret inside a character snaps back", control: textControl{"한글", 4, 4}, ev: keys.Event{Key: keys.Backspace}, changed: true, wantValue: "글", wantPos: 0},
		{name: "insert before hangul", control: textControl{"한", 1, 1}, ev: keys.Event{Key: "a"}, changed: true, wantValue: "a한", wantPos: 1},
		{name: "out of range caret clamps", control: textControl{"ls", 9, 9}, ev: keys.Event{Key: "!"}, changed: true, wantValue: "ls!", wantPos: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := tt.control
			assert.Equal(t, tt.changed, tc.apply(tt.ev))
			assert.Equal(t, tt.wantValue, tc.value)
			if tt.changed {
				assert.Equal(t, tt.wantPos, tc.start)
				assert.Equal(t, tt.wantPos, tc.end)
			}
		})
	}
}
