// ABOUTME: Caret notation for raw terminal input so control bytes render visibly
// ABOUTME: ESC shows as ^[, DEL as ^?, other C0 controls as ^@ through ^_

package width

import "strings"

// Caret returns raw with every C0 control character and DEL replaced by its
// caret form. Printable text passes through unchanged.
func Caret(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r < 0x20:
			b.WriteByte('^')
			b.WriteRune(r + '@')
		case r == 0x7f:
			b.WriteString("^?")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
