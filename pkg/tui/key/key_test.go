// ABOUTME: Tests for Key labels and the mouse/focus report predicates.
// ABOUTME: Table-driven checks of String rendering and IsMouseSequence/IsFocusSequence.

package key

import "testing"

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  Key
		want string
	}{
		{name: "plain", key: Key{Name: "a", Sequence: "a"}, want: "a"},
		{name: "ctrl shift", key: Key{Name: "up", Ctrl: true, Shift: true}, want: "ctrl+shift+up"},
		{name: "meta", key: Key{Name: "b", Meta: true}, want: "meta+b"},
		{name: "all modifiers", key: Key{Name: "f5", Ctrl: true, Meta: true, Shift: true}, want: "ctrl+meta+shift+f5"},
		{name: "unnamed", key: Key{Sequence: "é"}, want: `"é"`},
		{name: "unnamed control", key: Key{Meta: true, Sequence: "\x1b."}, want: `"\x1b."`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMouseSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seq  string
		want bool
	}{
		{seq: "\x1b[<0;10;20M", want: true},
		{seq: "\x1b[<64;1;1m", want: true},
		{seq: "\x1b[M !!", want: true},
		{seq: "\x1b[Mé!!", want: true},
		{seq: "\x1b[<0;10M", want: false},
		{seq: "\x1b[<0;10;20", want: false},
		{seq: "\x1b[M !", want: false},
		{seq: "\x1b[M !!!", want: false},
		{seq: "\x1b[A", want: false},
		{seq: "M", want: false},
	}

	for _, tt := range tests {
		if got := IsMouseSequence(tt.seq); got != tt.want {
			t.Errorf("IsMouseSequence(%q) = %v, want %v", tt.seq, got, tt.want)
		}
	}
}

func TestIsFocusSequence(t *testing.T) {
	t.Parallel()

	if !IsFocusSequence(FocusIn) || !IsFocusSequence(FocusOut) {
		t.Error("focus sequences not recognised")
	}
	if IsFocusSequence("\x1b[I ") || IsFocusSequence("\x1b[A") {
		t.Error("non-focus sequence recognised as focus")
	}
}
