// ABOUTME: Predicates for terminal reports that arrive on the key stream but are not keys.
// ABOUTME: Covers SGR and X10 mouse reports plus focus in/out notifications.

package key

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sgrMousePattern = regexp.MustCompile(`^\x1b\[<\d+;\d+;\d+[mM]$`)

// IsMouseSequence reports whether seq is a complete SGR or X10 mouse report.
func IsMouseSequence(seq string) bool {
	if sgrMousePattern.MatchString(seq) {
		return true
	}
	// X10: ESC [ M followed by exactly three units
	rest, ok := strings.CutPrefix(seq, "\x1b[M")
	return ok && utf8.RuneCountInString(rest) == 3
}

// IsFocusSequence reports whether seq is a focus in or focus out notification.
func IsFocusSequence(seq string) bool {
	return seq == FocusIn || seq == FocusOut
}
