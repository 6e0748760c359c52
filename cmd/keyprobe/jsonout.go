// ABOUTME: JSON-lines event sink for --json mode
// ABOUTME: Writes one easyjson record per event, CRLF terminated for raw-mode terminals

package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mailru/easyjson"

	"github.com/mauromedda/keyprobe/pkg/tui/keypress"
)

// jsonSink writes events as JSON lines. The first write error is kept and
// later events are dropped.
type jsonSink struct {
	w   io.Writer
	now func() time.Time

	mu  sync.Mutex
	err error
}

func newJSONSink(w io.Writer) *jsonSink {
	return &jsonSink{w: w, now: time.Now}
}

func (s *jsonSink) write(ev keypress.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}

	buf, err := easyjson.Marshal(newRecord(ev, s.now()))
	if err != nil {
		s.err = fmt.Errorf("encoding event: %w", err)
		return
	}
	// OPOST is off in raw mode, so a bare \n would not return the carriage.
	buf = append(buf, '\r', '\n')
	if _, err := s.w.Write(buf); err != nil {
		s.err = fmt.Errorf("writing event: %w", err)
	}
}

func (s *jsonSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
