// ABOUTME: Shared test helpers for the input package.
// ABOUTME: A recording handler and a Pipeline wired to a fake clock.

package input

import (
	"strings"
	"sync"

	"github.com/mauromedda/keyprobe/pkg/tui/internal/clock"
	"github.com/mauromedda/keyprobe/pkg/tui/key"
)

type event struct {
	key key.Key
	raw string
}

// recorder collects events. Tests read it from the goroutine driving the
// pipeline, so no extra locking is needed.
type recorder struct {
	events []event
}

func (r *recorder) handle(k key.Key, raw string) {
	r.events = append(r.events, event{key: k, raw: raw})
}

func (r *recorder) raws() string {
	var b strings.Builder
	for _, e := range r.events {
		b.WriteString(e.raw)
	}
	return b.String()
}

func newTestPipeline(opts Options) (*Pipeline, *clock.Fake, *recorder) {
	rec := &recorder{}
	var fake *clock.Fake
	opts.NewClock = func(mu sync.Locker) clock.Clock {
		fake = clock.NewFake(mu)
		return fake
	}
	p := NewPipeline(rec.handle, opts)
	return p, fake, rec
}

// newTestStage returns a fake clock with its own lock for driving a single stage.
func newTestStage() (*clock.Fake, *recorder) {
	var mu sync.Mutex
	return clock.NewFake(&mu), &recorder{}
}
