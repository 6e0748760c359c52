// ABOUTME: Record is the JSON-lines form of a key event printed by --json
// ABOUTME: Encoded with easyjson; see record_easyjson.go

//go:generate easyjson -all record.go

package main

import (
	"time"

	"github.com/mauromedda/keyprobe/pkg/tui/keypress"
)

// Record is one decoded key event.
type Record struct {
	Name       string    `json:"name"`
	Ctrl       bool      `json:"ctrl"`
	Meta       bool      `json:"meta"`
	Shift      bool      `json:"shift"`
	Insertable bool      `json:"insertable"`
	Sequence   string    `json:"sequence"`
	Raw        string    `json:"raw"`
	Time       time.Time `json:"time"`
}

func newRecord(ev keypress.Event, at time.Time) Record {
	return Record{
		Name:       ev.Key.Name,
		Ctrl:       ev.Key.Ctrl,
		Meta:       ev.Key.Meta,
		Shift:      ev.Key.Shift,
		Insertable: ev.Key.Insertable,
		Sequence:   ev.Key.Sequence,
		Raw:        ev.Raw,
		Time:       at,
	}
}
