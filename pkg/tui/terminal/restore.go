// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the main goroutine.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred at the top of main (or any
// goroutine that owns the terminal). On panic it turns bracketed paste
// off, shows the cursor, exits raw mode via the provided Terminal,
// prints the panic value and stack trace, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it
// does NOT call os.Exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}

// RecoverGoroutineError is RecoverGoroutine for goroutines with a named error
// result: a recovered panic is stored in *errp so the caller sees the crash.
func RecoverGoroutineError(t Terminal, errp *error) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
	*errp = fmt.Errorf("panic: %v", r)
}

// restore is best-effort; errors are ignored because we are already failing.
func restore(t Terminal) {
	_, _ = t.Write([]byte(BracketedPasteOff + ShowCursor))
	_ = t.ExitRawMode()
}
