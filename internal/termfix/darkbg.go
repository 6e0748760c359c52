// ABOUTME: Pre-sets the lipgloss dark background before BubbleTea's init() can query the terminal
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// An OSC 11 background query would put the terminal's reply on stdin,
	// where the key decoder reads it as input. With an explicit background
	// the query is never sent.
	//
	// This package must NOT import bubbletea (directly or transitively)
	// so that Go's init order guarantees this runs first.
	lipgloss.SetHasDarkBackground(true)
}
