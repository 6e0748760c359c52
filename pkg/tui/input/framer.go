// ABOUTME: Framer splits raw input chunks into runes for the Decoder and arms the quiet timer.
// ABOUTME: Incomplete trailing UTF-8 bytes are carried into the next chunk or flushed on timeout.

package input

import (
	"unicode/utf8"

	"github.com/mauromedda/keyprobe/pkg/tui/internal/clock"
	"github.com/mauromedda/keyprobe/pkg/tui/key"
)

// Framer feeds a Decoder from arbitrarily chunked input. After each non-empty
// chunk it waits EscTimeout for more data before telling the decoder that the
// stream has gone quiet. A Framer is not safe for concurrent use; Pipeline
// serialises access to it.
type Framer struct {
	dec     *key.Decoder
	clock   clock.Clock
	timer   clock.Timer
	partial []byte // leading bytes of a rune split across chunks
}

// NewFramer returns a Framer feeding dec, using c for the quiet timer.
func NewFramer(dec *key.Decoder, c clock.Clock) *Framer {
	return &Framer{dec: dec, clock: c}
}

// Push consumes one chunk. data must be a string or a []byte; anything else
// is ignored. Both forms are decoded as UTF-8, invalid bytes becoming U+FFFD.
// An empty chunk leaves a running quiet timer untouched.
func (f *Framer) Push(data any) {
	var chunk []byte
	switch v := data.(type) {
	case string:
		chunk = []byte(v)
	case []byte:
		chunk = v
	default:
		return
	}

	if len(chunk) == 0 {
		return
	}
	f.stopTimer()

	buf := make([]byte, 0, len(f.partial)+len(chunk))
	buf = append(buf, f.partial...)
	buf = append(buf, chunk...)
	complete, rest := splitIncomplete(buf)
	f.partial = rest

	for len(complete) > 0 {
		r, size := utf8.DecodeRune(complete)
		f.dec.Feed(r)
		complete = complete[size:]
	}

	f.timer = f.clock.AfterFunc(EscTimeout, f.quiet)
}

// Write implements io.Writer on top of Push. The slice is not retained.
func (f *Framer) Write(p []byte) (int, error) {
	f.Push(p)
	return len(p), nil
}

// Stop cancels the quiet timer and drops any carried-over bytes.
func (f *Framer) Stop() {
	f.stopTimer()
	f.partial = nil
}

// quiet runs when no chunk arrived within EscTimeout.
func (f *Framer) quiet() {
	f.timer = nil
	if len(f.partial) > 0 {
		f.partial = nil
		f.dec.Feed(utf8.RuneError)
	}
	if f.dec.Pending() {
		f.dec.Timeout()
	}
}

func (f *Framer) stopTimer() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// splitIncomplete separates a trailing partial rune from b.
func splitIncomplete(b []byte) (complete, rest []byte) {
	for i := len(b) - 1; i >= 0 && i > len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if utf8.FullRune(b[i:]) {
			break
		}
		return b[:i], append([]byte(nil), b[i:]...)
	}
	return b, nil
}
