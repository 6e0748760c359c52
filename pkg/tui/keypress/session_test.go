// ABOUTME: Tests for Session lifecycle on a VirtualTerminal.
// ABOUTME: Covers control codes, raw-mode handling, subscriber order, cancellation, and errors.

package keypress

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/mauromedda/keyprobe/pkg/tui/key"
	"github.com/mauromedda/keyprobe/pkg/tui/terminal"
)

// collector gathers events from a subscriber goroutine.
type collector struct {
	mu     sync.Mutex
	events []Event
	ch     chan Event
}

func newCollector() *collector {
	return &collector{ch: make(chan Event, 64)}
}

func (c *collector) handle(e Event) {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
	c.ch <- e
}

func (c *collector) snapshot() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

// next waits for the next event.
func (c *collector) next(t *testing.T) Event {
	t.Helper()
	select {
	case e := <-c.ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no event within 2s")
		return Event{}
	}
}

func TestSession_RunUntilEOF(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	s := New(vt, bytes.NewBufferString("a\x1b[A\x1b[200~hi\x1b[201~"), Options{})
	c := newCollector()
	s.Subscribe(c.handle)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	got := c.snapshot()
	want := []Event{
		{Key: key.Key{Name: "a", Insertable: true, Sequence: "a"}, Raw: "a"},
		{Key: key.Key{Name: "up", Sequence: "\x1b[A"}, Raw: "\x1b[A"},
		{Key: key.Key{Name: key.NamePaste, Insertable: true, Sequence: "hi"}, Raw: "\x1b[200~hi\x1b[201~"},
	}
	if len(got) != len(want) {
		t.Fatalf("events = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if out := vt.Output(); out != terminal.BracketedPasteOn+terminal.BracketedPasteOff {
		t.Errorf("Output() = %q, want paste mode on then off", out)
	}
	if vt.EnterCount() != 1 || vt.ExitCount() != 1 || vt.IsRawMode() {
		t.Errorf("raw mode enter=%d exit=%d active=%v", vt.EnterCount(), vt.ExitCount(), vt.IsRawMode())
	}
}

func TestSession_RawModeUnsupported(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	vt.SetRawModeSupported(false)
	s := New(vt, bytes.NewBufferString("x"), Options{})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if vt.EnterCount() != 0 || vt.ExitCount() != 0 {
		t.Errorf("raw mode toggled on a non-interactive input")
	}
	if out := vt.Output(); out != terminal.BracketedPasteOn+terminal.BracketedPasteOff {
		t.Errorf("Output() = %q", out)
	}
}

func TestSession_RawModeFailure(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	boom := errors.New("no tty")
	vt.FailRawMode(boom)
	s := New(vt, bytes.NewBufferString("x"), Options{})

	err := s.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() = %v, want wrapped %v", err, boom)
	}
	if vt.Output() != "" {
		t.Errorf("control codes written after raw mode failed: %q", vt.Output())
	}
}

func TestSession_SubscriberOrderAndUnsubscribe(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	s := New(vt, bytes.NewBufferString("ab"), Options{})

	var mu sync.Mutex
	var order []string
	record := func(tag string) func(Event) {
		return func(e Event) {
			mu.Lock()
			order = append(order, tag+":"+e.Key.Name)
			mu.Unlock()
		}
	}
	s.Subscribe(record("one"))
	unsub := s.Subscribe(record("gone"))
	s.Subscribe(record("two"))
	unsub()

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{"one:a", "two:a", "one:b", "two:b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestSession_CancelAndLoneEscape(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	pr, pw := io.Pipe()
	defer pw.Close()

	s := New(vt, pr, Options{})
	c := newCollector()
	s.Subscribe(c.handle)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	if _, err := pw.Write([]byte("\x1b")); err != nil {
		t.Fatal(err)
	}
	// Resolved by the quiet timer, not by further input.
	e := c.next(t)
	if e.Key.Name != key.NameEscape || e.Raw != "\x1b" {
		t.Errorf("event = %+v, want escape", e)
	}

	if _, err := pw.Write([]byte("\x1b[1;5C")); err != nil {
		t.Fatal(err)
	}
	if e := c.next(t); e.Key.String() != "ctrl+right" {
		t.Errorf("event = %+v, want ctrl+right", e)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if vt.IsRawMode() {
		t.Error("raw mode still active after Run returned")
	}
}

func TestSession_AlreadyRunning(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	pr, pw := io.Pipe()
	defer pw.Close()

	s := New(vt, pr, Options{})
	c := newCollector()
	s.Subscribe(c.handle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// Wait until the first Run is reading.
	if _, err := pw.Write([]byte("a")); err != nil {
		t.Fatal(err)
	}
	c.next(t)

	if err := s.Run(ctx); !errors.Is(err, ErrRunning) {
		t.Errorf("second Run() = %v, want ErrRunning", err)
	}
	cancel()
	<-done
}
