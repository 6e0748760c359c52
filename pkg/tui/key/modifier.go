// ABOUTME: xterm modifier bitmask decoding shared by CSI, SS3, and CSI-u sequences.
// ABOUTME: The wire value is modifiers+1; bit 0 shift, bit 1 alt, bit 2 ctrl, bit 3 meta.

package key

import (
	"strconv"
	"strings"
)

// modifiers is the zero-based bitmask carried by a sequence.
type modifiers int

const (
	modShift modifiers = 1 << iota // bit 0
	modAlt                         // bit 1
	modCtrl                        // bit 2
	modMeta                        // bit 3
)

// parseModifier decodes a transmitted modifier parameter.
// An absent or unparsable parameter means no modifiers.
func parseModifier(s string) modifiers {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	// Wire format is modifiers+1
	return modifiers(n - 1)
}

// apply sets the modifier flags on k. Alt and meta both map to Meta.
func (m modifiers) apply(k *Key) {
	k.Shift = m&modShift != 0
	k.Meta = m&(modAlt|modMeta) != 0
	k.Ctrl = m&modCtrl != 0
}

// unifiedLetter recovers a lowercase letter from a CSI-u or tilde code such as
// "[97u" when the code is not in the table.
func unifiedLetter(code string) (string, bool) {
	if !strings.HasSuffix(code, "u") && !strings.HasSuffix(code, "~") {
		return "", false
	}
	if len(code) < 3 {
		return "", false
	}
	n, err := strconv.Atoi(code[1 : len(code)-1])
	if err != nil || n < 'a' || n > 'z' {
		return "", false
	}
	return string(rune(n)), true
}
