package tui

import (
	"sync"

	"github.com/awesome-gocui/gocui"
)

// UIThread hands work to the gocui main loop in the order it was posted.
// Before a Gui is attached, and after it is detached, posted functions run
// inline.
//
// gocui's Update schedules each function on its own goroutine, so two
// updates may reach the main loop in either order. Posts are queued here
// instead and a single scheduled drain runs them first in, first out.
type UIThread struct {
	mu       sync.Mutex
	schedule func(fn func())
	queue    []func()
	draining bool
}

func NewUIThread() *UIThread {
	return &UIThread{}
}

func (t *UIThread) Attach(g *gocui.Gui) {
	t.attach(func(fn func()) {
		g.Update(func(*gocui.Gui) error {
			fn()
			return nil
		})
	})
}

func (t *UIThread) attach(schedule func(fn func())) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.schedule = schedule
}

// Detach stops scheduling on the main loop and runs anything still queued.
func (t *UIThread) Detach() {
	t.mu.Lock()
	t.schedule = nil
	pending := t.queue
	t.queue = nil
	t.draining = false
	t.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

// Post queues fn on the main loop. gocui redraws after each drain.
func (t *UIThread) Post(fn func()) {
	t.mu.Lock()
	if t.schedule == nil {
		t.mu.Unlock()
		fn()
		return
	}

	t.queue = append(t.queue, fn)
	if t.draining {
		t.mu.Unlock()
		return
	}
	t.draining = true
	schedule := t.schedule
	t.mu.Unlock()

	schedule(t.drain)
}

func (t *UIThread) drain() {
	for {
		t.mu.Lock()
		if len(t.queue) == 0 {
			t.draining = false
			t.mu.Unlock()
			return
		}
		fn := t.queue[0]
		t.queue = t.queue[1:]
		t.mu.Unlock()

		fn()
	}
}
