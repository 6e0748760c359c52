// ABOUTME: NonKeyboardFilter drops mouse reports and focus notifications from the key stream.
// ABOUTME: A pure per-event predicate with no buffering or timers.

package input

import "github.com/mauromedda/keyprobe/pkg/tui/key"

// NonKeyboardFilter forwards every event except mouse and focus reports.
type NonKeyboardFilter struct {
	next key.Handler
}

// NewNonKeyboardFilter returns a filter forwarding to next.
func NewNonKeyboardFilter(next key.Handler) *NonKeyboardFilter {
	return &NonKeyboardFilter{next: next}
}

// Handle implements Stage.
func (f *NonKeyboardFilter) Handle(k key.Key, raw string) {
	if key.IsMouseSequence(k.Sequence) || key.IsFocusSequence(k.Sequence) {
		return
	}
	f.next(k, raw)
}

// Stop implements Stage.
func (f *NonKeyboardFilter) Stop() {}
