// ABOUTME: Stage is the common shape of the filter stages between the Decoder and subscribers.
// ABOUTME: Each stage wraps the next key.Handler and owns its own buffer and timer.

package input

import "github.com/mauromedda/keyprobe/pkg/tui/key"

// Stage transforms a stream of key events before passing them to the next
// handler. Handle and Stop must be called with the pipeline lock held.
type Stage interface {
	Handle(k key.Key, raw string)
	// Stop cancels pending timers and discards buffered events.
	Stop()
}
