// ABOUTME: OSC 52 clipboard report decoding for the escape-sequence decoder.
// ABOUTME: Base64 payloads are decoded and converted to UTF-8 text via golang.org/x/text.

package key

import (
	"encoding/base64"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// clipboardPattern matches the body of an OSC 52 clipboard or primary-selection report.
var clipboardPattern = regexp.MustCompile(`^52;[cp];(.*)$`)

// decodeClipboard returns the text carried by an OSC 52 body.
// It reports false for other OSC bodies, undecodable payloads, and empty text.
func decodeClipboard(body string) (string, bool) {
	m := clipboardPattern.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}

	// Terminals differ on padding; accept both forms.
	data, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(m[1], "="))
	if err != nil {
		return "", false
	}

	// Invalid UTF-8 becomes U+FFFD rather than failing the whole payload.
	text, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil || len(text) == 0 {
		return "", false
	}
	return string(text), true
}
