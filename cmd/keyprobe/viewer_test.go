// ABOUTME: Tests for the Bubble Tea event viewer model
// ABOUTME: Drives Update directly with event and window messages and inspects View

package main

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/keyprobe/pkg/tui/key"
	"github.com/mauromedda/keyprobe/pkg/tui/keypress"
)

func keyMsg(k key.Key, raw string) eventMsg {
	return eventMsg{ev: keypress.Event{Key: k, Raw: raw}, at: fixedTime}
}

func update(t *testing.T, m viewerModel, msg tea.Msg) (viewerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	vm, ok := next.(viewerModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return vm, cmd
}

func TestViewer_RecordsEvents(t *testing.T) {
	t.Parallel()

	m := newViewerModel(10, nil)
	m, _ = update(t, m, keyMsg(key.Key{Name: "up", Ctrl: true, Sequence: "\x1b[1;5A"}, "\x1b[1;5A"))
	m, _ = update(t, m, keyMsg(key.Key{Name: "q", Insertable: true, Sequence: "q"}, "q"))

	view := m.View()
	for _, want := range []string{"ctrl+up", "^[[1;5A", `"q"`, "12:30:00.000"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestViewer_LimitKeepsNewest(t *testing.T) {
	t.Parallel()

	m := newViewerModel(2, nil)
	for _, name := range []string{"a", "b", "c"} {
		m, _ = update(t, m, keyMsg(key.Key{Name: name, Sequence: name}, name))
	}
	if len(m.events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(m.events))
	}
	if m.events[0].ev.Key.Name != "b" || m.events[1].ev.Key.Name != "c" {
		t.Errorf("events = %v, %v; want b, c", m.events[0].ev.Key, m.events[1].ev.Key)
	}
}

func TestViewer_HeightTrimsRows(t *testing.T) {
	t.Parallel()

	m := newViewerModel(50, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 4})
	for _, name := range []string{"a", "b", "c", "d"} {
		m, _ = update(t, m, keyMsg(key.Key{Name: name, Sequence: name}, name))
	}

	lines := strings.Split(strings.TrimSuffix(m.View(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("View() has %d lines, want 4:\n%s", len(lines), m.View())
	}
	if !strings.Contains(lines[3], `"d"`) || !strings.Contains(lines[2], `"c"`) {
		t.Errorf("expected the newest rows, got %q", lines[2:])
	}
}

func TestViewer_Highlight(t *testing.T) {
	t.Parallel()

	m := newViewerModel(10, []string{"escape"})
	plain := m.row(keyMsg(key.Key{Name: "a", Sequence: "a"}, "a"))
	marked := m.row(keyMsg(key.Key{Name: "escape", Sequence: "\x1b"}, "\x1b"))

	if !strings.Contains(marked, "escape") || !strings.Contains(plain, "a") {
		t.Fatalf("rows lost their labels: %q %q", plain, marked)
	}
	if !m.highlight["escape"] || m.highlight["a"] {
		t.Errorf("highlight set = %v", m.highlight)
	}
}

func TestViewer_CtrlCQuits(t *testing.T) {
	t.Parallel()

	m := newViewerModel(10, nil)
	m, cmd := update(t, m, keyMsg(key.Key{Name: "c", Ctrl: true, Sequence: "\x03"}, "\x03"))
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c command should produce tea.QuitMsg")
	}
	if len(m.events) != 0 {
		t.Error("ctrl+c should not be recorded")
	}
	if m.View() != "" {
		t.Errorf("View() after quit = %q, want empty", m.View())
	}
}

func TestIsInterrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		k    key.Key
		want bool
	}{
		{key.Key{Name: "c", Ctrl: true}, true},
		{key.Key{Name: "c"}, false},
		{key.Key{Name: "c", Ctrl: true, Meta: true}, false},
		{key.Key{Name: "d", Ctrl: true}, false},
	}
	for _, tt := range tests {
		if got := isInterrupt(tt.k); got != tt.want {
			t.Errorf("isInterrupt(%s) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestViewer_TimeColumn(t *testing.T) {
	t.Parallel()

	m := newViewerModel(10, nil)
	at := time.Date(2024, 1, 1, 9, 5, 7, 42*int(time.Millisecond), time.UTC)
	row := m.row(eventMsg{ev: keypress.Event{Key: key.Key{Name: "x", Sequence: "x"}, Raw: "x"}, at: at})
	if !strings.HasPrefix(row, "09:05:07.042") {
		t.Errorf("row = %q, want time prefix", row)
	}
}
