// ABOUTME: Escape-body lookup table for CSI, SS3, and CSI-u key codes.
// ABOUTME: Also holds the darwin Option-key character table used for Alt+letter.

package key

import "sort"

// Info describes the key identified by a canonical escape body.
// Shift and Ctrl, when set, force the modifier on; they never clear it.
type Info struct {
	Name  string
	Shift bool
	Ctrl  bool
}

// codes maps the escape body (the part after ESC, e.g. "[A") to its key.
var codes = map[string]Info{
	// Bracketed paste markers
	"[200~": {Name: NamePasteStart},
	"[201~": {Name: NamePasteEnd},

	// Linux console function keys
	"[[A": {Name: "f1"},
	"[[B": {Name: "f2"},
	"[[C": {Name: "f3"},
	"[[D": {Name: "f4"},
	"[[E": {Name: "f5"},

	// vt220 navigation
	"[1~": {Name: "home"},
	"[2~": {Name: "insert"},
	"[3~": {Name: "delete"},
	"[4~": {Name: "end"},
	"[5~": {Name: "pageup"},
	"[6~": {Name: "pagedown"},
	"[7~": {Name: "home"}, // rxvt
	"[8~": {Name: "end"},  // rxvt

	// xterm/vt220 function keys
	"[11~": {Name: "f1"},
	"[12~": {Name: "f2"},
	"[13~": {Name: "f3"},
	"[14~": {Name: "f4"},
	"[15~": {Name: "f5"},
	"[17~": {Name: "f6"},
	"[18~": {Name: "f7"},
	"[19~": {Name: "f8"},
	"[20~": {Name: "f9"},
	"[21~": {Name: "f10"},
	"[23~": {Name: "f11"},
	"[24~": {Name: "f12"},

	// CSI cursor and navigation
	"[A": {Name: "up"},
	"[B": {Name: "down"},
	"[C": {Name: "right"},
	"[D": {Name: "left"},
	"[E": {Name: "clear"},
	"[F": {Name: "end"},
	"[H": {Name: "home"},
	"[P": {Name: "f1"},
	"[Q": {Name: "f2"},
	"[R": {Name: "f3"},
	"[S": {Name: "f4"},

	// SS3 variants (application cursor mode)
	"OA": {Name: "up"},
	"OB": {Name: "down"},
	"OC": {Name: "right"},
	"OD": {Name: "left"},
	"OE": {Name: "clear"},
	"OF": {Name: "end"},
	"OH": {Name: "home"},
	"OP": {Name: "f1"},
	"OQ": {Name: "f2"},
	"OR": {Name: "f3"},
	"OS": {Name: "f4"},

	// putty
	"[[5~": {Name: "pageup"},
	"[[6~": {Name: "pagedown"},

	// CSI-u unified key codes
	"[9u":     {Name: NameTab},
	"[13u":    {Name: NameReturn},
	"[27u":    {Name: NameEscape},
	"[32u":    {Name: NameSpace},
	"[127u":   {Name: NameBackspace},
	"[57414u": {Name: NameReturn}, // keypad enter

	// rxvt shift variants
	"[a":  {Name: "up", Shift: true},
	"[b":  {Name: "down", Shift: true},
	"[c":  {Name: "right", Shift: true},
	"[d":  {Name: "left", Shift: true},
	"[e":  {Name: "clear", Shift: true},
	"[2$": {Name: "insert", Shift: true},
	"[3$": {Name: "delete", Shift: true},
	"[5$": {Name: "pageup", Shift: true},
	"[6$": {Name: "pagedown", Shift: true},
	"[7$": {Name: "home", Shift: true},
	"[8$": {Name: "end", Shift: true},
	"[Z":  {Name: NameTab, Shift: true},

	// rxvt ctrl variants
	"Oa": {Name: "up", Ctrl: true},
	"Ob": {Name: "down", Ctrl: true},
	"Oc": {Name: "right", Ctrl: true},
	"Od": {Name: "left", Ctrl: true},
	"Oe": {Name: "clear", Ctrl: true},
	"[2^": {Name: "insert", Ctrl: true},
	"[3^": {Name: "delete", Ctrl: true},
	"[5^": {Name: "pageup", Ctrl: true},
	"[6^": {Name: "pagedown", Ctrl: true},
	"[7^": {Name: "home", Ctrl: true},
	"[8^": {Name: "end", Ctrl: true},
}

// darwinAltKeys maps characters macOS produces for Option+letter to that letter.
var darwinAltKeys = map[rune]string{
	'∫': "b", // ∫ (Option+b, back one word)
	'ƒ': "f", // ƒ (Option+f, forward one word)
	'µ': "m", // µ (Option+m)
}

// Lookup returns the key registered for an escape body code such as "[A".
func Lookup(code string) (Info, bool) {
	info, ok := codes[code]
	return info, ok
}

// Codes returns every registered escape body code in sorted order.
func Codes() []string {
	out := make([]string, 0, len(codes))
	for c := range codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Names returns the distinct key names the decoder can produce, sorted.
// It includes the table names, control-letter names, and synthetic names.
func Names() []string {
	seen := map[string]bool{
		NameReturn: true, NameEnter: true, NameTab: true, NameBackspace: true,
		NameEscape: true, NameSpace: true, NamePaste: true, NameUndefined: true,
	}
	for _, info := range codes {
		seen[info.Name] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		seen[string(c)] = true
	}
	for c := '0'; c <= '9'; c++ {
		seen[string(c)] = true
	}

	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// altKey resolves a darwin Option-key character.
func altKey(r rune, platform string) (string, bool) {
	if platform != "darwin" {
		return "", false
	}
	name, ok := darwinAltKeys[r]
	return name, ok
}
