// ABOUTME: Builds the escape-code key table for --table as Markdown
// ABOUTME: Rendered for the terminal through glamour, falling back to plain Markdown

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/keyprobe/pkg/tui/key"
)

// keyTable returns a Markdown table of every escape body the decoder knows.
func keyTable() string {
	var b strings.Builder
	b.WriteString("# Escape sequences\n\n")
	b.WriteString("| Sequence | Key | Implied |\n")
	b.WriteString("|----------|-----|---------|\n")
	for _, code := range key.Codes() {
		info, _ := key.Lookup(code)
		fmt.Fprintf(&b, "| `ESC %s` | %s | %s |\n", code, info.Name, implied(info))
	}
	return b.String()
}

func implied(info key.Info) string {
	var mods []string
	if info.Ctrl {
		mods = append(mods, "ctrl")
	}
	if info.Shift {
		mods = append(mods, "shift")
	}
	if len(mods) == 0 {
		return "-"
	}
	return strings.Join(mods, "+")
}

// renderMarkdown styles md for a terminal of the given width.
func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Fallback: return raw text
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
