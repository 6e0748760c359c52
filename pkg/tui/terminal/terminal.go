// ABOUTME: Defines the Terminal interface for raw mode, size queries, and output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, and output writing.
type Terminal interface {
	// RawModeSupported reports whether EnterRawMode can succeed, i.e. the
	// input is an interactive terminal rather than a pipe or file.
	RawModeSupported() bool
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
}

// Control sequences written around a key session.
const (
	BracketedPasteOn  = "\x1b[?2004h"
	BracketedPasteOff = "\x1b[?2004l"
	ShowCursor        = "\x1b[?25h"
)
