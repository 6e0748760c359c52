// ABOUTME: BackslashEnter merges a backslash immediately followed by Return into shift+return.
// ABOUTME: A held backslash is released unchanged after BackslashEnterTimeout.

package input

import (
	"github.com/mauromedda/keyprobe/pkg/tui/internal/clock"
	"github.com/mauromedda/keyprobe/pkg/tui/key"
)

// BackslashEnter holds a `\` event briefly to see whether a return follows.
type BackslashEnter struct {
	next  key.Handler
	clock clock.Clock
	timer clock.Timer

	held    bool
	heldKey key.Key
	heldRaw string
}

// NewBackslashEnter returns a BackslashEnter stage forwarding to next.
func NewBackslashEnter(next key.Handler, c clock.Clock) *BackslashEnter {
	return &BackslashEnter{next: next, clock: c}
}

// Handle implements Stage.
func (s *BackslashEnter) Handle(k key.Key, raw string) {
	if s.held {
		s.stopTimer()
		held, heldRaw := s.release()
		if k.Name == key.NameReturn {
			k.Shift = true
			k.Sequence = "\r"
			s.next(k, heldRaw+raw)
			return
		}
		// The event after a held backslash is forwarded as is, even another backslash.
		s.next(held, heldRaw)
		s.next(k, raw)
		return
	}

	if k.Sequence != `\` {
		s.next(k, raw)
		return
	}

	s.held = true
	s.heldKey = k
	s.heldRaw = raw
	s.timer = s.clock.AfterFunc(BackslashEnterTimeout, s.expire)
}

// Stop implements Stage.
func (s *BackslashEnter) Stop() {
	s.stopTimer()
	s.release()
}

func (s *BackslashEnter) expire() {
	s.timer = nil
	if !s.held {
		return
	}
	held, heldRaw := s.release()
	s.next(held, heldRaw)
}

func (s *BackslashEnter) release() (key.Key, string) {
	k, raw := s.heldKey, s.heldRaw
	s.held = false
	s.heldKey = key.Key{}
	s.heldRaw = ""
	return k, raw
}

func (s *BackslashEnter) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
