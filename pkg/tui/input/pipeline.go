// ABOUTME: Pipeline assembles the Framer, Decoder, and filter stages behind one mutex.
// ABOUTME: Exposes the timing constants and the Push/Write/Close entry points.

package input

import (
	"errors"
	"sync"
	"time"

	"github.com/mauromedda/keyprobe/pkg/tui/internal/clock"
	"github.com/mauromedda/keyprobe/pkg/tui/key"
)

// Timing windows used by the pipeline.
const (
	// EscTimeout is how long the stream must be quiet before a pending
	// escape sequence is resolved.
	EscTimeout = 50 * time.Millisecond
	// BackslashEnterTimeout is how long a backslash waits for a following return.
	BackslashEnterTimeout = 5 * time.Millisecond
	// PasteTimeout is how long a bracketed paste may stall before it is flushed.
	PasteTimeout = 30 * time.Second
	// FastReturnTimeout is the gap under which a return is treated as pasted text.
	FastReturnTimeout = 30 * time.Millisecond
)

// ErrClosed is returned by Write after Close.
var ErrClosed = errors.New("input pipeline closed")

// Options configures a Pipeline.
type Options struct {
	// KittyProtocol omits the fast-return stage; the protocol reports
	// returns unambiguously.
	KittyProtocol bool
	// Platform is a runtime.GOOS value; "darwin" enables Option-key decoding.
	Platform string
	// NewClock builds the clock from the pipeline lock. Nil means wall time.
	NewClock func(sync.Locker) clock.Clock
}

// Pipeline turns raw terminal input into key events. The handler runs with
// the pipeline lock held and must not call back into the Pipeline.
type Pipeline struct {
	mu      sync.Mutex
	framer  *Framer
	decoder *key.Decoder
	stages  []Stage
	closed  bool
}

// NewPipeline builds the decoding pipeline delivering events to h:
// decoder, paste buffer, backslash+return, fast return, non-keyboard filter.
func NewPipeline(h key.Handler, opts Options) *Pipeline {
	p := &Pipeline{}

	newClock := opts.NewClock
	if newClock == nil {
		newClock = clock.New
	}
	c := newClock(&p.mu)

	next := h
	wrap := func(s Stage) {
		p.stages = append(p.stages, s)
		next = s.Handle
	}
	wrap(NewNonKeyboardFilter(next))
	if !opts.KittyProtocol {
		wrap(NewFastReturn(next, c))
	}
	wrap(NewBackslashEnter(next, c))
	wrap(NewPasteBuffer(next, c))

	p.decoder = key.NewDecoder(next, key.WithPlatform(opts.Platform))
	p.framer = NewFramer(p.decoder, c)
	return p
}

// Push feeds one chunk of input; see Framer.Push. It is a no-op after Close.
func (p *Pipeline) Push(data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.framer.Push(data)
}

// Write implements io.Writer so the pipeline can sit behind an input reader.
func (p *Pipeline) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, ErrClosed
	}
	p.framer.Push(b)
	return len(b), nil
}

// Close stops every timer and discards buffered input. It is safe to call
// more than once.
func (p *Pipeline) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.framer.Stop()
	p.decoder.Reset()
	for _, s := range p.stages {
		s.Stop()
	}
	return nil
}
