// ABOUTME: VisibleWidth computes display width of strings with grapheme-aware segmentation
// ABOUTME: Fast path for printable ASCII; ANSI escape sequences count as zero width

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the display width of s, accounting for ANSI escape
// sequences (which contribute zero width) and grapheme clusters (which may
// be wider than one cell for East Asian characters and emoji).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	forEachCluster(StripANSI(s), func(cluster string, cw int) bool {
		w += cw
		return true
	})
	return w
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// forEachCluster calls fn with each grapheme cluster of s and its width
// until fn returns false.
func forEachCluster(s string, fn func(cluster string, width int) bool) {
	state := -1
	for len(s) > 0 {
		cluster, rest, _, next := uniseg.FirstGraphemeClusterInString(s, state)
		if !fn(cluster, graphemeWidth(cluster)) {
			return
		}
		s, state = rest, next
	}
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
