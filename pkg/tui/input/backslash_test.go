// ABOUTME: Tests for the BackslashEnter stage.
// ABOUTME: Covers merging with return, release on timeout, pass-through, and Stop.

package input

import (
	"reflect"
	"testing"

	"github.com/mauromedda/keyprobe/pkg/tui/key"
)

var (
	backslashKey = key.Key{Insertable: true, Sequence: `\`}
	returnKey    = key.Key{Name: key.NameReturn, Sequence: "\r"}
	letterN      = key.Key{Name: "n", Insertable: true, Sequence: "n"}
)

func TestBackslashEnter_MergesReturn(t *testing.T) {
	t.Parallel()

	fake, rec := newTestStage()
	s := NewBackslashEnter(rec.handle, fake)
	s.Handle(backslashKey, `\`)
	if len(rec.events) != 0 {
		t.Fatal("backslash forwarded before the window closed")
	}
	s.Handle(returnKey, "\r")

	want := []event{{key: key.Key{Name: key.NameReturn, Shift: true, Sequence: "\r"}, raw: "\\\r"}}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %+v, want %+v", rec.events, want)
	}
	if fake.Pending() != 0 {
		t.Errorf("timer left pending")
	}
}

func TestBackslashEnter_MergedKeepsReturnFields(t *testing.T) {
	t.Parallel()

	fake, rec := newTestStage()
	s := NewBackslashEnter(rec.handle, fake)
	s.Handle(backslashKey, `\`)
	s.Handle(key.Key{Name: key.NameReturn, Meta: true, Sequence: "\x1b\r"}, "\x1b\r")

	want := key.Key{Name: key.NameReturn, Meta: true, Shift: true, Sequence: "\r"}
	if len(rec.events) != 1 || rec.events[0].key != want {
		t.Errorf("events = %+v, want %+v", rec.events, want)
	}
}

func TestBackslashEnter_OtherKeyReleasesBoth(t *testing.T) {
	t.Parallel()

	fake, rec := newTestStage()
	s := NewBackslashEnter(rec.handle, fake)
	s.Handle(backslashKey, `\`)
	s.Handle(letterN, "n")

	want := []event{{key: backslashKey, raw: `\`}, {key: letterN, raw: "n"}}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %+v, want %+v", rec.events, want)
	}
	fake.Advance(BackslashEnterTimeout * 10)
	if len(rec.events) != 2 {
		t.Errorf("cancelled timer fired: %+v", rec.events)
	}
}

func TestBackslashEnter_TimeoutReleases(t *testing.T) {
	t.Parallel()

	fake, rec := newTestStage()
	s := NewBackslashEnter(rec.handle, fake)
	s.Handle(backslashKey, `\`)
	fake.Advance(BackslashEnterTimeout)

	want := []event{{key: backslashKey, raw: `\`}}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events = %+v, want %+v", rec.events, want)
	}

	// A return after the window is not merged.
	s.Handle(returnKey, "\r")
	if rec.events[1].key != returnKey {
		t.Errorf("late return = %+v, want it unchanged", rec.events[1].key)
	}
}

func TestBackslashEnter_SecondBackslashForwarded(t *testing.T) {
	t.Parallel()

	fake, rec := newTestStage()
	s := NewBackslashEnter(rec.handle, fake)
	s.Handle(backslashKey, `\`)
	s.Handle(backslashKey, `\`)

	if len(rec.events) != 2 {
		t.Fatalf("events = %+v, want both backslashes", rec.events)
	}
	if fake.Pending() != 0 {
		t.Error("second backslash was held")
	}
}

func TestBackslashEnter_PassThrough(t *testing.T) {
	t.Parallel()

	fake, rec := newTestStage()
	s := NewBackslashEnter(rec.handle, fake)
	s.Handle(returnKey, "\r")
	s.Handle(key.Key{Name: key.NameUndefined, Sequence: `\\`}, `\\`)
	if len(rec.events) != 2 || fake.Pending() != 0 {
		t.Errorf("events = %+v, pending = %d", rec.events, fake.Pending())
	}
}

func TestBackslashEnter_StopDiscards(t *testing.T) {
	t.Parallel()

	fake, rec := newTestStage()
	s := NewBackslashEnter(rec.handle, fake)
	s.Handle(backslashKey, `\`)
	s.Stop()
	fake.Advance(BackslashEnterTimeout * 10)
	s.Handle(letterN, "n")

	want := []event{{key: letterN, raw: "n"}}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %+v, want %+v", rec.events, want)
	}
}
