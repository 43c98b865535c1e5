package shell

import (
	"github.com/kcaldas/termblog/pkg/events"
	"github.com/kcaldas/termblog/pkg/output"
	"github.com/kcaldas/termblog/pkg/pager"
	"github.com/kcaldas/termblog/pkg/session"
)

// Surface is the host element that shows paged content.
type Surface interface {
	pager.Surface
	// SetContent replaces what the surface shows. ContentHeight must reflect
	// it on return.
	SetContent(content string, contentType pager.ContentType)
	ViewportHeight() int
}

// AttachSurface makes paged results open in the pager on surface.
func (s *Shell) AttachSurface(surface Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surface = surface
}

// DetachSurface closes any open pager. Paged results are then appended to
// the scrollback instead.
func (s *Shell) DetachSurface() {
	s.mu.Lock()
	s.surface = nil
	s.mu.Unlock()

	if s.pager.Active() {
		s.pager.Dispose()
		s.pagingStopped()
	}
}

func (s *Shell) attachedSurface() Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface
}

func (s *Shell) handleRawOutput(raw session.RawOutput) {
	if !raw.RequiresPaging {
		return
	}

	contentType := pager.ParseContentType(raw.ContentType)
	if surface := s.attachedSurface(); surface != nil {
		surface.SetContent(raw.Content, contentType)
		if s.pager.Open(raw.Content, contentType, surface, surface.ViewportHeight()) {
			s.logger.Debug("paging enabled", "title", raw.Title, "content_type", contentType)
			events.Emit(s.bus, PagingEnabled, Paging{
				Content:     raw.Content,
				ContentType: contentType,
				Title:       raw.Title,
			})
			return
		}
	}

	kind := output.KindText
	if contentType == pager.Markdown {
		kind = output.KindHTML
	}
	s.output.Add(output.Item{Content: raw.Content, Kind: kind})
}

func (s *Shell) handlePagerQuit() {
	s.pagingStopped()
}

func (s *Shell) pagingStopped() {
	s.logger.Debug("paging disabled")
	events.Emit(s.bus, PagingDisabled, struct{}{})
	s.session.ExitRawMode()
}
