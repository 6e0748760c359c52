// ABOUTME: viewerModel is the Bubble Tea program showing the most recent key events
// ABOUTME: Events arrive via Program.Send; highlighted key names are emphasised

package main

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/keyprobe/pkg/tui/key"
	"github.com/mauromedda/keyprobe/pkg/tui/keypress"
	"github.com/mauromedda/keyprobe/pkg/tui/width"
)

const (
	keyCol  = 24
	rawCol  = 28
	timeCol = 13
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")) // yellow
	pasteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))            // cyan
)

// eventMsg carries a decoded event into the program.
type eventMsg struct {
	ev keypress.Event
	at time.Time
}

type viewerModel struct {
	events    []eventMsg
	limit     int
	highlight map[string]bool
	height    int
	quitting  bool
}

func newViewerModel(limit int, highlight []string) viewerModel {
	m := viewerModel{limit: limit, highlight: make(map[string]bool, len(highlight))}
	for _, name := range highlight {
		m.highlight[name] = true
	}
	return m
}

// Init returns nil; events are pushed in from outside.
func (m viewerModel) Init() tea.Cmd {
	return nil
}

// Update records events, tracks the window height, and quits on ctrl+c.
func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		if isInterrupt(msg.ev.Key) {
			m.quitting = true
			return m, tea.Quit
		}
		m.events = append(m.events, msg)
		if over := len(m.events) - m.limit; over > 0 {
			m.events = append(m.events[:0:0], m.events[over:]...)
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
	}
	return m, nil
}

// View renders a title, a column header, and as many recent events as fit.
func (m viewerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("keyprobe") + "  press keys; ctrl+c quits\n")
	b.WriteString(headerStyle.Render(width.Fit("TIME", timeCol)+width.Fit("KEY", keyCol)+width.Fit("RAW", rawCol)+"SEQUENCE") + "\n")

	rows := m.events
	if m.height > 2 && len(rows) > m.height-2 {
		rows = rows[len(rows)-(m.height-2):]
	}
	for _, e := range rows {
		b.WriteString(m.row(e))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m viewerModel) row(e eventMsg) string {
	k := e.ev.Key
	label := width.Fit(k.String(), keyCol)
	switch {
	case m.highlight[k.Name]:
		label = highlightStyle.Render(label)
	case k.Name == key.NamePaste:
		label = pasteStyle.Render(label)
	}
	return width.Fit(e.at.Format("15:04:05.000"), timeCol) +
		label +
		width.Fit(width.Caret(e.ev.Raw), rawCol) +
		strconv.Quote(k.Sequence)
}

// isInterrupt reports whether k is ctrl+c, which ends every mode.
func isInterrupt(k key.Key) bool {
	return k.Ctrl && !k.Meta && k.Name == "c"
}
