// ABOUTME: PasteBuffer collapses everything between bracketed-paste markers into one paste event.
// ABOUTME: A paste that stalls for PasteTimeout is flushed as truncated.

package input

import (
	"strings"

	"github.com/mauromedda/keyprobe/pkg/tui/internal/clock"
	"github.com/mauromedda/keyprobe/pkg/tui/key"
)

// PasteBuffer accumulates the events between paste-start and paste-end.
type PasteBuffer struct {
	next  key.Handler
	clock clock.Clock
	timer clock.Timer

	active   bool
	rawStart string
	body     strings.Builder
	rawInner strings.Builder
}

// NewPasteBuffer returns a PasteBuffer stage forwarding to next.
func NewPasteBuffer(next key.Handler, c clock.Clock) *PasteBuffer {
	return &PasteBuffer{next: next, clock: c}
}

// Handle implements Stage.
func (s *PasteBuffer) Handle(k key.Key, raw string) {
	if !s.active {
		if k.Name != key.NamePasteStart {
			s.next(k, raw)
			return
		}
		s.active = true
		s.rawStart = raw
		s.arm()
		return
	}

	s.stopTimer()
	if k.Name == key.NamePasteEnd {
		s.flush(raw)
		return
	}
	s.body.WriteString(k.Sequence)
	s.rawInner.WriteString(raw)
	s.arm()
}

// Stop implements Stage.
func (s *PasteBuffer) Stop() {
	s.stopTimer()
	s.reset()
}

// expire flushes a paste whose end marker never arrived.
func (s *PasteBuffer) expire() {
	s.timer = nil
	if s.active {
		s.flush("")
	}
}

// flush emits the accumulated paste, if any, and leaves the paste window.
func (s *PasteBuffer) flush(rawEnd string) {
	if s.body.Len() > 0 {
		s.next(key.Key{
			Name:       key.NamePaste,
			Insertable: true,
			Sequence:   s.body.String(),
		}, s.rawStart+s.rawInner.String()+rawEnd)
	}
	s.reset()
}

func (s *PasteBuffer) reset() {
	s.active = false
	s.rawStart = ""
	s.body.Reset()
	s.rawInner.Reset()
}

func (s *PasteBuffer) arm() {
	s.timer = s.clock.AfterFunc(PasteTimeout, s.expire)
}

func (s *PasteBuffer) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
