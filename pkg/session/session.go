package session

import (
	"sync"

	"github.com/kcaldas/termblog/pkg/events"
	"github.com/kcaldas/termblog/pkg/logging"
	"github.com/kcaldas/termblog/pkg/output"
)

// Mode is the terminal display mode.
type Mode string

const (
	// Canonical is line-buffered scrollback.
	Canonical Mode = "canonical"
	// Raw shows a single full-content result, usually through the pager.
	Raw Mode = "raw"
)

type ModeChange struct {
	Mode         Mode
	PreviousMode Mode
}

// RawOutput is a result routed through raw mode.
type RawOutput struct {
	Content        string
	ContentType    string
	RequiresPaging bool
	Title          string
}

type Viewport struct {
	Width  int
	Height int
}

var (
	ModeChanged        = events.Topic[ModeChange]("terminal:modeChanged")
	RawOutputRequested = events.Topic[RawOutput]("terminal:rawOutputRequested")
	ViewportChanged    = events.Topic[Viewport]("terminal:viewportChanged")
)

// Session owns the terminal mode and routes raw output either to the
// scrollback or to whoever renders paged content.
type Session struct {
	mu       sync.RWMutex
	bus      *events.Bus
	out      *output.Buffer
	mode     Mode
	viewport Viewport
	logger   logging.Logger
}

func New(bus *events.Bus, out *output.Buffer) *Session {
	return &Session{
		bus:      bus,
		out:      out,
		mode:     Canonical,
		viewport: Viewport{Width: 80, Height: 24},
		logger:   logging.NewComponentLogger("session"),
	}
}

func (s *Session) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Session) IsRaw() bool {
	return s.Mode() == Raw
}

// SetMode switches modes and emits ModeChanged. Setting the current mode is
// a no-op.
func (s *Session) SetMode(mode Mode) {
	s.mu.Lock()
	if s.mode == mode {
		s.mu.Unlock()
		return
	}
	change := ModeChange{Mode: mode, PreviousMode: s.mode}
	s.mode = mode
	s.mu.Unlock()

	s.logger.Debug("mode changed", "mode", change.Mode, "previous", change.PreviousMode)
	events.Emit(s.bus, ModeChanged, change)
}

// ExitRawMode returns to canonical mode if raw is active.
func (s *Session) ExitRawMode() {
	if s.IsRaw() {
		s.SetMode(Canonical)
	}
}

// HandleRawOutput announces raw content and, unless it is paged, appends it to
// the scrollback. Paged content is rendered by the pager alone.
func (s *Session) HandleRawOutput(raw RawOutput) {
	if raw.ContentType == "" {
		raw.ContentType = "text"
	}

	events.Emit(s.bus, RawOutputRequested, raw)

	if raw.RequiresPaging {
		return
	}

	kind := output.KindText
	if raw.ContentType == "markdown" {
		kind = output.KindHTML
	}
	s.out.Add(output.Item{Content: raw.Content, Kind: kind})
}

// SetViewport records the terminal size and emits ViewportChanged.
func (s *Session) SetViewport(width, height int) {
	s.mu.Lock()
	s.viewport = Viewport{Width: width, Height: height}
	vp := s.viewport
	s.mu.Unlock()

	events.Emit(s.bus, ViewportChanged, vp)
}

func (s *Session) Viewport() Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}
