// ABOUTME: Fixed-width cell fitting for column layouts
// ABOUTME: Pads short text with spaces and truncates long text with an ellipsis

package width

import "strings"

const ellipsis = "…"

// Fit returns s padded or truncated to exactly cols display columns.
// Truncated text ends in an ellipsis. ANSI sequences in s are dropped when
// truncating.
func Fit(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	w := VisibleWidth(s)
	if w <= cols {
		return s + strings.Repeat(" ", cols-w)
	}

	var b strings.Builder
	used := 0
	forEachCluster(StripANSI(s), func(cluster string, cw int) bool {
		if used+cw > cols-1 {
			return false
		}
		b.WriteString(cluster)
		used += cw
		return true
	})
	b.WriteString(ellipsis)
	used++
	// A wide cluster may leave one column unfilled.
	b.WriteString(strings.Repeat(" ", cols-used))
	return b.String()
}
