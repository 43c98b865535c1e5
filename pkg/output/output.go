package output

import (
	"sync"

	"github.com/kcaldas/termblog/pkg/events"
)

// Kind selects how the host renders an item.
type Kind string

const (
	// KindText items are styled by the formatter.
	KindText Kind = "text"
	// KindHTML items are pre-rendered markup written verbatim.
	KindHTML Kind = "html"
)

type Style struct {
	Foreground string
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
}

// Item is one entry of the scrollback. IDs increase monotonically for the
// lifetime of a buffer, across clears.
type Item struct {
	ID      int
	Content string
	Style   *Style
	Kind    Kind
}

var (
	// Changed carries a snapshot of every item after an add or clear.
	Changed = events.Topic[[]Item]("output:changed")
	Cleared = events.Topic[struct{}]("output:cleared")
)

// Buffer is the ordered scrollback. Readers only ever see copies.
type Buffer struct {
	mu     sync.RWMutex
	bus    *events.Bus
	items  []Item
	nextID int
}

func NewBuffer(bus *events.Bus) *Buffer {
	return &Buffer{
		bus:   bus,
		items: make([]Item, 0),
	}
}

// Add appends item with the next id and returns the stored copy. An empty
// Kind defaults to KindText.
func (b *Buffer) Add(item Item) Item {
	b.mu.Lock()
	item.ID = b.nextID
	b.nextID++
	if item.Kind == "" {
		item.Kind = KindText
	}
	if item.Style != nil {
		style := *item.Style
		item.Style = &style
	}
	b.items = append(b.items, item)
	snapshot := b.snapshot()
	b.mu.Unlock()

	events.Emit(b.bus, Changed, snapshot)
	return item
}

// Clear drops every item, emitting Cleared and then an empty Changed.
func (b *Buffer) Clear() {
	b.mu.Lock()
	b.items = make([]Item, 0)
	b.mu.Unlock()

	events.Emit(b.bus, Cleared, struct{}{})
	events.Emit(b.bus, Changed, []Item{})
}

func (b *Buffer) Items() []Item {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot()
}

func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// Last returns the newest item that skip does not reject.
func (b *Buffer) Last(skip func(Item) bool) (Item, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i := len(b.items) - 1; i >= 0; i-- {
		if skip != nil && skip(b.items[i]) {
			continue
		}
		return b.items[i], true
	}
	return Item{}, false
}

func (b *Buffer) snapshot() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}
