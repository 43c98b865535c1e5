package history

import (
	"strings"
	"sync"
)

// DefaultCapacity is the number of entries kept before the oldest is evicted.
const DefaultCapacity = 1000

// Listener receives a copy of the entries after every push or clear.
type Listener func(entries []string)

// Manager is a bounded, in-memory command log with an independent browse
// cursor. The cursor lives in [0, Len()]; Len() is the fresh-line sentinel.
type Manager struct {
	mu        sync.RWMutex
	entries   []string
	capacity  int
	cursor    int
	listeners []*listenerEntry
}

type listenerEntry struct {
	fn Listener
}

// NewManager creates a history manager. A non-positive capacity falls back to
// DefaultCapacity.
func NewManager(capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{
		entries:  make([]string, 0),
		capacity: capacity,
	}
}

// Push appends an entry, evicting the oldest one when full, and resets the
// cursor to the fresh-line position. Blank entries are ignored.
func (m *Manager) Push(entry string) {
	if strings.TrimSpace(entry) == "" {
		return
	}

	m.mu.Lock()
	if len(m.entries) >= m.capacity {
		m.entries = m.entries[len(m.entries)-m.capacity+1:]
	}
	m.entries = append(m.entries, entry)
	m.cursor = len(m.entries)
	m.mu.Unlock()

	m.notify()
}

// Prev moves towards older entries, saturating at the oldest one.
func (m *Manager) Prev() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cursor > 0 {
		m.cursor--
	}
	return m.at(m.cursor)
}

// Next moves towards newer entries; reaching the end returns "".
func (m *Manager) Next() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cursor < len(m.entries) {
		m.cursor++
	}
	return m.at(m.cursor)
}

// Current returns the entry under the cursor, or "" at the fresh line.
func (m *Manager) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.at(m.cursor)
}

// GoToStart jumps to the oldest entry.
func (m *Manager) GoToStart() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cursor = 0
	return m.at(m.cursor)
}

// GoToEnd jumps to the fresh-line position, which is always "".
func (m *Manager) GoToEnd() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cursor = len(m.entries)
	return ""
}

// Clear drops every entry.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.entries = make([]string, 0)
	m.cursor = 0
	m.mu.Unlock()

	m.notify()
}

// Entries returns a copy of the log, oldest first.
func (m *Manager) Entries() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot()
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Manager) Cursor() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cursor
}

func (m *Manager) Capacity() int {
	return m.capacity
}

// Subscribe registers a listener and returns a function that removes it.
func (m *Manager) Subscribe(fn Listener) func() {
	entry := &listenerEntry{fn: fn}

	m.mu.Lock()
	m.listeners = append(m.listeners, entry)
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, l := range m.listeners {
			if l == entry {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

func (m *Manager) at(i int) string {
	if i < 0 || i >= len(m.entries) {
		return ""
	}
	return m.entries[i]
}

func (m *Manager) snapshot() []string {
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Manager) notify() {
	m.mu.RLock()
	listeners := make([]*listenerEntry, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.RUnlock()

	for _, l := range listeners {
		l.fn(m.Entries())
	}
}
