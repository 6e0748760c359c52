// ABOUTME: Session runs a raw-mode key reading session and broadcasts decoded events.
// ABOUTME: Owns raw mode, bracketed-paste control codes, the input pipeline, and subscribers.

package keypress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/mauromedda/keyprobe/internal/eventbus"
	"github.com/mauromedda/keyprobe/internal/log"
	"github.com/mauromedda/keyprobe/pkg/tui/input"
	"github.com/mauromedda/keyprobe/pkg/tui/key"
	"github.com/mauromedda/keyprobe/pkg/tui/terminal"
)

// ErrRunning is returned when Run is called on a session that is already running.
var ErrRunning = errors.New("key session already running")

// Event is a decoded key together with the exact input that produced it.
type Event struct {
	Key key.Key
	Raw string
}

// Options configures a Session.
type Options struct {
	// KittyProtocol disables the fast-return heuristic.
	KittyProtocol bool
	// Platform is a runtime.GOOS value; "darwin" enables Option-key decoding.
	Platform string
}

// Session reads key input from a terminal and delivers events to subscribers
// in decode order. Subscribers run on the session's reading goroutine and
// must not block for long.
type Session struct {
	term terminal.Terminal
	in   io.Reader
	opts Options
	bus  *eventbus.Bus[Event]

	mu      sync.Mutex
	running bool
}

// New returns a Session reading from in and controlling term.
func New(term terminal.Terminal, in io.Reader, opts Options) *Session {
	return &Session{
		term: term,
		in:   in,
		opts: opts,
		bus:  eventbus.New[Event](),
	}
}

// Subscribe registers h for every event and returns a function that removes it.
func (s *Session) Subscribe(h func(Event)) func() {
	return s.bus.Subscribe(h)
}

// Run enables raw mode (when supported) and bracketed paste, then decodes
// input until ctx is cancelled or the input ends. The terminal is restored
// before Run returns.
func (s *Session) Run(ctx context.Context) (err error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrRunning
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	raw := s.term.RawModeSupported()
	if raw {
		if err := s.term.EnterRawMode(); err != nil {
			return fmt.Errorf("starting key session: %w", err)
		}
		defer func() {
			if xerr := s.term.ExitRawMode(); xerr != nil && err == nil {
				err = fmt.Errorf("ending key session: %w", xerr)
			}
		}()
	}

	if _, err := s.term.Write([]byte(terminal.BracketedPasteOn)); err != nil {
		return fmt.Errorf("enabling bracketed paste: %w", err)
	}

	p := input.NewPipeline(s.publish, input.Options{
		KittyProtocol: s.opts.KittyProtocol,
		Platform:      s.opts.Platform,
	})
	defer func() {
		if _, werr := s.term.Write([]byte(terminal.BracketedPasteOff)); werr != nil && err == nil {
			err = fmt.Errorf("disabling bracketed paste: %w", werr)
		}
		_ = p.Close()
	}()

	log.Debug("key session started (raw=%t kitty=%t platform=%q subscribers=%d)",
		raw, s.opts.KittyProtocol, s.opts.Platform, s.bus.Count())
	defer log.Debug("key session ended")

	if err := input.NewStdinBuffer(s.in, p).Start(ctx); err != nil {
		return fmt.Errorf("reading keys: %w", err)
	}
	return nil
}

func (s *Session) publish(k key.Key, raw string) {
	log.Debug("key %s raw=%q", k, raw)
	s.bus.Publish(Event{Key: k, Raw: raw})
}
