package pager

import (
	"math"
	"sync"
	"time"

	"github.com/kcaldas/termblog/pkg/keys"
	"github.com/kcaldas/termblog/pkg/logging"
)

// ContentType tells the host how paged content was produced.
type ContentType string

const (
	PlainText ContentType = "text"
	Markdown  ContentType = "markdown"
)

// ParseContentType maps a result content type onto a pager content type.
func ParseContentType(s string) ContentType {
	if s == string(Markdown) {
		return Markdown
	}
	return PlainText
}

const (
	DefaultScrollRatio = 0.8
	DefaultDebounce    = 16 * time.Millisecond
)

// Surface is the scrollable element holding the paged content.
type Surface interface {
	// ContentHeight is the full rendered height in rows.
	ContentHeight() int
	ScrollTo(row int)
}

// Animator moves a surface from one row to another over time. The pager has
// already recorded the target before Animate is called.
type Animator interface {
	Animate(s Surface, from, to int)
	Stop()
}

// State is a snapshot of the pager.
type State struct {
	Content         string
	ContentType     ContentType
	CurrentPosition int
	MaxPosition     int
	ViewportHeight  int
	Progress        int
	CurrentPage     int
	TotalPages      int
	AtTop           bool
	AtBottom        bool
}

type Options struct {
	// ScrollRatio is the share of the viewport one page step covers.
	ScrollRatio float64
	// Debounce coalesces RequestViewport bursts.
	Debounce time.Duration
	// Post runs fn on the UI goroutine. Nil runs it inline.
	Post     func(fn func())
	Animator Animator
}

// Pager splits content taller than the viewport into keyboard-navigable
// pages. At most one session is active; Open disposes the previous one.
type Pager struct {
	mu sync.Mutex

	active          bool
	content         string
	contentType     ContentType
	surface         Surface
	currentPosition int
	maxPosition     int
	viewportHeight  int

	scrollRatio float64
	debounce    time.Duration
	post        func(fn func())
	animator    Animator

	viewportTimer   *time.Timer
	pendingViewport int

	changeListeners []func(State)
	quitListeners   []func()

	logger logging.Logger
}

func New(opts Options) *Pager {
	if opts.ScrollRatio <= 0 {
		opts.ScrollRatio = DefaultScrollRatio
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Post == nil {
		opts.Post = func(fn func()) { fn() }
	}

	return &Pager{
		scrollRatio: opts.ScrollRatio,
		debounce:    opts.Debounce,
		post:        opts.Post,
		animator:    opts.Animator,
		logger:      logging.NewComponentLogger("pager"),
	}
}

// OnChange registers a listener for state changes.
func (p *Pager) OnChange(fn func(State)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changeListeners = append(p.changeListeners, fn)
}

// OnQuit registers a listener for the user leaving the pager.
func (p *Pager) OnQuit(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quitListeners = append(p.quitListeners, fn)
}

// Open starts a paging session over surface. It returns false when surface
// is nil.
func (p *Pager) Open(content string, contentType ContentType, surface Surface, viewportHeight int) bool {
	if surface == nil {
		p.logger.Warn("open without a content surface")
		return false
	}

	p.Dispose()

	p.mu.Lock()
	p.active = true
	p.content = content
	p.contentType = contentType
	p.surface = surface
	p.viewportHeight = max(0, viewportHeight)
	p.currentPosition = 0
	p.measure()
	state := p.snapshot()
	p.mu.Unlock()

	surface.ScrollTo(0)
	p.logger.Debug("paging opened", "content_type", contentType, "max_position", state.MaxPosition)
	p.notify(state)
	return true
}

// Dispose ends the session without notifying quit listeners.
func (p *Pager) Dispose() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.viewportTimer != nil {
		p.viewportTimer.Stop()
		p.viewportTimer = nil
	}
	if p.animator != nil {
		p.animator.Stop()
	}

	p.active = false
	p.surface = nil
	p.content = ""
	p.contentType = PlainText
	p.currentPosition = 0
	p.maxPosition = 0
}

// Quit disposes the session and notifies quit listeners.
func (p *Pager) Quit() {
	if !p.Active() {
		p.logger.Warn("quit while inactive")
		return
	}
	p.Dispose()

	p.mu.Lock()
	listeners := append([]func(){}, p.quitListeners...)
	p.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

func (p *Pager) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// State returns a snapshot; the zero State when inactive.
func (p *Pager) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return State{}
	}
	return p.snapshot()
}

// UpdateViewport applies a new viewport height immediately.
func (p *Pager) UpdateViewport(height int) {
	p.mutate("update viewport", func() bool {
		p.viewportHeight = max(0, height)
		return p.measure()
	}, true)
}

// Remeasure re-reads the surface height after content reflow.
func (p *Pager) Remeasure() {
	p.mutate("remeasure", p.measure, true)
}

// RequestViewport schedules UpdateViewport after the debounce window. Only
// the last height of a burst is applied, through the post hook.
func (p *Pager) RequestViewport(height int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		p.logger.Warn("viewport request while inactive", "height", height)
		return
	}

	p.pendingViewport = height
	if p.viewportTimer != nil {
		p.viewportTimer.Reset(p.debounce)
		return
	}
	p.viewportTimer = time.AfterFunc(p.debounce, p.flushViewport)
}

func (p *Pager) flushViewport() {
	p.mu.Lock()
	height := p.pendingViewport
	p.viewportTimer = nil
	active := p.active
	p.mu.Unlock()

	if !active {
		return
	}
	p.post(func() {
		if p.Active() {
			p.UpdateViewport(height)
		}
	})
}

// NextPage scrolls down one step. It returns false at the bottom.
func (p *Pager) NextPage() bool {
	return p.mutate("next page", func() bool {
		if p.currentPosition >= p.maxPosition {
			return false
		}
		p.currentPosition = min(p.maxPosition, p.currentPosition+p.scrollAmount())
		return true
	}, false)
}

// PreviousPage scrolls up one step. It returns false at the top.
func (p *Pager) PreviousPage() bool {
	return p.mutate("previous page", func() bool {
		if p.currentPosition <= 0 {
			return false
		}
		p.currentPosition = max(0, p.currentPosition-p.scrollAmount())
		return true
	}, false)
}

func (p *Pager) GoToTop() bool {
	return p.mutate("go to top", func() bool {
		if p.currentPosition == 0 {
			return false
		}
		p.currentPosition = 0
		return true
	}, false)
}

func (p *Pager) GoToBottom() bool {
	return p.mutate("go to bottom", func() bool {
		if p.currentPosition >= p.maxPosition {
			return false
		}
		p.currentPosition = p.maxPosition
		return true
	}, false)
}

// GoToPage jumps to a 1-indexed page, proportionally into the content.
func (p *Pager) GoToPage(n int) bool {
	return p.mutate("go to page", func() bool {
		total := p.totalPages()
		if n < 1 || n > total {
			return false
		}
		target := int(math.Round(float64(n-1) / float64(total) * float64(p.maxPosition)))
		if target == p.currentPosition {
			return false
		}
		p.currentPosition = target
		return true
	}, false)
}

// HandleKey runs pager bindings. It returns true when the key was consumed.
func (p *Pager) HandleKey(ev keys.Event) bool {
	if !p.Active() {
		return false
	}

	switch ev.Name() {
	case keys.ArrowDown, "j", keys.PageDown:
		p.NextPage()
	case keys.ArrowUp, "k", keys.PageUp:
		p.PreviousPage()
	case keys.Home, "g":
		p.GoToTop()
	case keys.End, "G":
		p.GoToBottom()
	case "q":
		p.Quit()
	default:
		return false
	}
	return true
}

// mutate runs change under the lock and, when it reports a change, scrolls
// the surface and notifies listeners outside the lock. Calling it while
// inactive is logged and does nothing.
func (p *Pager) mutate(op string, change func() bool, always bool) bool {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		p.logger.Warn("pager operation while inactive", "operation", op)
		return false
	}

	from := p.currentPosition
	changed := change()
	state := p.snapshot()
	surface := p.surface
	p.mu.Unlock()

	if state.CurrentPosition != from {
		p.scroll(surface, from, state.CurrentPosition)
	}
	if changed || always {
		p.notify(state)
	}
	return changed
}

func (p *Pager) scroll(surface Surface, from, to int) {
	if p.animator != nil {
		p.animator.Animate(surface, from, to)
		return
	}
	surface.ScrollTo(to)
}

// measure recomputes maxPosition and clamps the position. Callers hold mu.
func (p *Pager) measure() bool {
	height := 0
	if p.surface != nil {
		height = p.surface.ContentHeight()
	}

	oldMax, oldPos := p.maxPosition, p.currentPosition
	p.maxPosition = max(0, height-p.viewportHeight)
	p.currentPosition = min(p.currentPosition, p.maxPosition)
	return oldMax != p.maxPosition || oldPos != p.currentPosition
}

func (p *Pager) scrollAmount() int {
	amount := math.Min(float64(p.viewportHeight)*p.scrollRatio, float64(p.maxPosition)*0.2)
	return max(1, int(math.Round(amount)))
}

func (p *Pager) progress() int {
	if p.maxPosition == 0 {
		return 100
	}
	return int(math.Round(float64(p.currentPosition) / float64(p.maxPosition) * 100))
}

func (p *Pager) totalPages() int {
	if p.maxPosition == 0 {
		return 1
	}
	return max(1, int(math.Ceil(float64(p.maxPosition)/float64(p.scrollAmount()))))
}

func (p *Pager) currentPage(total int) int {
	if p.maxPosition == 0 {
		return 1
	}
	fraction := float64(p.currentPosition) / float64(p.maxPosition)
	return min(total, int(math.Floor(fraction*float64(total)))+1)
}

func (p *Pager) snapshot() State {
	total := p.totalPages()
	return State{
		Content:         p.content,
		ContentType:     p.contentType,
		CurrentPosition: p.currentPosition,
		MaxPosition:     p.maxPosition,
		ViewportHeight:  p.viewportHeight,
		Progress:        p.progress(),
		CurrentPage:     p.currentPage(total),
		TotalPages:      total,
		AtTop:           p.currentPosition == 0,
		AtBottom:        p.currentPosition == p.maxPosition,
	}
}

func (p *Pager) notify(state State) {
	p.mu.Lock()
	listeners := append([]func(State){}, p.changeListeners...)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}
