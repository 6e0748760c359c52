// ABOUTME: Defines the Key event type, the Handler callback, and well-known sequences.
// ABOUTME: Key carries a semantic name, modifier flags, insertability, and decoded content.

package key

import (
	"strconv"
	"strings"
)

// Well-known key names produced by the decoder.
const (
	NameReturn     = "return"
	NameEnter      = "enter"
	NameTab        = "tab"
	NameBackspace  = "backspace"
	NameEscape     = "escape"
	NameSpace      = "space"
	NamePaste      = "paste"
	NamePasteStart = "paste-start"
	NamePasteEnd   = "paste-end"
	NameUndefined  = "undefined"
)

// Sequences with a fixed meaning on the input stream.
const (
	Esc      = "\x1b"
	FocusIn  = "\x1b[I"
	FocusOut = "\x1b[O"
)

// Key represents a decoded keypress event.
type Key struct {
	Name       string // "a", "up", "f5", "return", "paste"; empty when only Sequence matters
	Ctrl       bool
	Meta       bool
	Shift      bool
	Insertable bool   // Literal text that should be inserted
	Sequence   string // Decoded content; may differ from the raw input
}

// Handler receives a decoded Key together with the exact input that produced it.
type Handler func(k Key, raw string)

// String returns a binding-style label such as "ctrl+shift+up" for debug display.
// Keys without a name render as their quoted sequence.
func (k Key) String() string {
	if k.Name == "" {
		return strconv.Quote(k.Sequence)
	}

	var b strings.Builder
	if k.Ctrl {
		b.WriteString("ctrl+")
	}
	if k.Meta {
		b.WriteString("meta+")
	}
	if k.Shift {
		b.WriteString("shift+")
	}
	b.WriteString(k.Name)
	return b.String()
}
