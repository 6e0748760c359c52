// ABOUTME: FastReturn rewrites a Return that follows another event too quickly into a literal newline.
// ABOUTME: Terminals without bracketed paste deliver pasted newlines this way.

package input

import (
	"time"

	"github.com/mauromedda/keyprobe/pkg/tui/internal/clock"
	"github.com/mauromedda/keyprobe/pkg/tui/key"
)

// FastReturn marks a return arriving within FastReturnTimeout of the previous
// event as insertable text.
type FastReturn struct {
	next  key.Handler
	clock clock.Clock
	last  time.Time
}

// NewFastReturn returns a FastReturn stage forwarding to next.
func NewFastReturn(next key.Handler, c clock.Clock) *FastReturn {
	return &FastReturn{next: next, clock: c}
}

// Handle implements Stage.
func (s *FastReturn) Handle(k key.Key, raw string) {
	now := s.clock.Now()
	if k.Name == key.NameReturn && !s.last.IsZero() && now.Sub(s.last) <= FastReturnTimeout {
		k.Sequence = "\r"
		k.Insertable = true
	}
	s.next(k, raw)
	s.last = now
}

// Stop implements Stage.
func (s *FastReturn) Stop() {
	s.last = time.Time{}
}
