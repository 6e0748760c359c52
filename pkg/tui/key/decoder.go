// ABOUTME: Decoder is a streaming state machine turning input runes into Key events.
// ABOUTME: Resolves control characters, CSI/SS3/OSC escape bodies, modifiers, and the ESC timeout.

package key

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mauromedda/keyprobe/internal/log"
)

var (
	// CSI <num>[;<mod>[;<key>]] followed by ~ ^ $ or u
	unifiedPattern = regexp.MustCompile(`^(\d+)(?:;(\d+))?(?:;(\d+))?([~^$u])$`)
	// CSI [<num>][;<mod>]<letter>
	letterPattern = regexp.MustCompile(`^(\d+)?(?:;(\d+))?([A-Za-z])$`)
)

// state is the decoder's position within a sequence.
type state int

const (
	stateGround       state = iota
	stateEscape             // ESC
	stateDoubleEscape       // ESC ESC
	stateCSIStart           // ESC [
	stateCSIBracket         // ESC [ [
	stateCSIDigits          // leading parameter digits
	stateCSIParams          // ; separated parameter groups
	stateCSIMouse           // SGR mouse parameters after <
	stateCSIX10             // three raw bytes after M
	stateSS3                // ESC O
	stateSS3Letter          // ESC O <digit>
	stateOSC                // ESC ] body
	stateOSCEscape          // ESC inside an OSC body
)

// Decoder consumes input one rune at a time and calls its Handler once for
// every complete key. A Decoder is not safe for concurrent use.
type Decoder struct {
	emit     Handler
	platform string

	state    state
	seq      strings.Builder // every unit consumed for the current key
	escaped  bool
	code     string
	modifier modifiers
	cmdStart int // offset of the CSI parameters within seq
	x10Left  int
	osc      strings.Builder
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithPlatform sets the host platform (a runtime.GOOS value). "darwin"
// enables decoding of Option+letter characters.
func WithPlatform(platform string) DecoderOption {
	return func(d *Decoder) {
		d.platform = platform
	}
}

// NewDecoder returns a Decoder that delivers keys to h.
func NewDecoder(h Handler, opts ...DecoderOption) *Decoder {
	d := &Decoder{emit: h}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Feed consumes a single rune of input.
func (d *Decoder) Feed(r rune) {
	d.step(string(r))
}

// Timeout tells the decoder no more input is coming for now, letting it
// resolve a pending lone ESC or an unterminated sequence.
func (d *Decoder) Timeout() {
	d.step("")
}

// Pending reports whether a partial sequence is buffered.
func (d *Decoder) Pending() bool {
	return d.state != stateGround
}

// Reset discards any partial sequence without emitting it.
func (d *Decoder) Reset() {
	d.state = stateGround
	d.seq.Reset()
	d.osc.Reset()
}

// step advances the state machine by one unit. The empty string is the
// timeout sentinel.
func (d *Decoder) step(ch string) {
	switch d.state {
	case stateGround:
		d.begin()
		d.seq.WriteString(ch)
		if ch == Esc {
			d.escaped = true
			d.state = stateEscape
			return
		}
		d.finishChar(ch)

	case stateEscape:
		d.seq.WriteString(ch)
		if ch == Esc {
			d.state = stateDoubleEscape
			return
		}
		d.introducer(ch)

	case stateDoubleEscape:
		d.seq.WriteString(ch)
		d.introducer(ch)

	case stateCSIStart:
		d.seq.WriteString(ch)
		if ch == "[" {
			// Linux console keys carry a second bracket
			d.code += ch
			d.state = stateCSIBracket
			return
		}
		d.cmdStart = d.seq.Len() - len(ch)
		d.csiParam(ch)

	case stateCSIBracket:
		d.seq.WriteString(ch)
		d.cmdStart = d.seq.Len() - len(ch)
		d.csiParam(ch)

	case stateCSIDigits:
		d.seq.WriteString(ch)
		d.csiParam(ch)

	case stateCSIParams:
		d.seq.WriteString(ch)
		if ch == ";" || isDigit(ch) {
			return
		}
		d.finishCSI()

	case stateCSIMouse:
		d.seq.WriteString(ch)
		// The sentinel does not end a slow mouse report.
		if ch == "" || ch == ";" || isDigit(ch) {
			return
		}
		d.finishCSI()

	case stateCSIX10:
		d.seq.WriteString(ch)
		d.x10Left--
		if d.x10Left == 0 {
			d.finishCSI()
		}

	case stateSS3:
		d.seq.WriteString(ch)
		if isDigit(ch) {
			d.modifier = modifiers(ch[0]-'0') - 1
			d.state = stateSS3Letter
			return
		}
		d.code += ch
		d.finishCode()

	case stateSS3Letter:
		d.seq.WriteString(ch)
		d.code += ch
		d.finishCode()

	case stateOSC:
		d.seq.WriteString(ch)
		switch ch {
		case "", "\a":
			d.finishOSC()
		case Esc:
			d.state = stateOSCEscape
		default:
			d.osc.WriteString(ch)
		}

	case stateOSCEscape:
		d.seq.WriteString(ch)
		if ch == "" || ch == "\\" {
			d.finishOSC()
			return
		}
		d.osc.WriteString(Esc)
		d.osc.WriteString(ch)
		d.state = stateOSC
	}
}

// begin clears per-key state.
func (d *Decoder) begin() {
	d.seq.Reset()
	d.osc.Reset()
	d.escaped = false
	d.code = ""
	d.modifier = 0
	d.cmdStart = 0
	d.x10Left = 0
}

// introducer dispatches the unit following ESC.
func (d *Decoder) introducer(ch string) {
	switch ch {
	case "[":
		d.code = ch
		d.state = stateCSIStart
	case "O":
		d.code = ch
		d.state = stateSS3
	case "]":
		d.state = stateOSC
	default:
		d.finishChar(ch)
	}
}

// csiParam handles a unit in the leading-digits phase of a CSI sequence.
func (d *Decoder) csiParam(ch string) {
	switch {
	case isDigit(ch):
		d.state = stateCSIDigits
	case ch == ";":
		d.state = stateCSIParams
	case ch == "<":
		d.state = stateCSIMouse
	case ch == "M":
		d.x10Left = 3
		d.state = stateCSIX10
	default:
		d.finishCSI()
	}
}

// finishCSI extracts the code and modifier from the buffered CSI parameters.
func (d *Decoder) finishCSI() {
	cmd := d.seq.String()[d.cmdStart:]

	if m := unifiedPattern.FindStringSubmatch(cmd); m != nil {
		if m[1] == "27" && m[3] != "" && m[4] == "~" {
			// modifyOtherKeys: CSI 27 ; <mod> ; <key> ~ is read as CSI <key> u
			d.code += m[3] + "u"
		} else {
			d.code += m[1] + m[4]
		}
		d.modifier = parseModifier(m[2])
	} else if m := letterPattern.FindStringSubmatch(cmd); m != nil {
		d.code += m[3]
		param := m[2]
		if param == "" {
			param = m[1]
		}
		d.modifier = parseModifier(param)
	} else {
		d.code += cmd
	}

	d.finishCode()
}

// finishCode resolves the accumulated escape code against the key table.
func (d *Decoder) finishCode() {
	var k Key
	d.modifier.apply(&k)

	if info, ok := codes[d.code]; ok {
		k.Name = info.Name
		if info.Shift {
			k.Shift = true
		}
		if info.Ctrl {
			k.Ctrl = true
		}
	} else {
		k.Name = NameUndefined
		if k.Ctrl || k.Meta {
			if letter, ok := unifiedLetter(d.code); ok {
				k.Name = letter
			}
		}
	}

	raw := d.seq.String()
	k.Sequence = raw
	if k.Name == NameSpace && !k.Ctrl && !k.Meta {
		k.Sequence = " "
		k.Insertable = true
	}
	d.finish(k, raw, true)
}

// finishChar classifies a single unit, optionally preceded by ESC.
func (d *Decoder) finishChar(ch string) {
	raw := d.seq.String()
	k := Key{Sequence: raw}
	named := true

	switch {
	case ch == "":
		if !d.escaped {
			// Sentinel with nothing pending
			d.state = stateGround
			return
		}
		k.Meta = true
		k.Name = NameEscape
		if raw == Esc+Esc {
			// Double escape: the first ESC is a key of its own.
			d.state = stateGround
			d.emit(Key{Name: NameEscape, Meta: true, Sequence: Esc}, Esc)
			raw = Esc
		}
	case ch == "\r":
		k.Name = NameReturn
		k.Meta = d.escaped
	case ch == "\n":
		k.Name = NameEnter
		k.Meta = d.escaped
	case ch == "\t":
		k.Name = NameTab
		k.Meta = d.escaped
	case ch == "\b" || ch == "\x7f":
		k.Name = NameBackspace
		k.Meta = d.escaped
	case ch == Esc:
		k.Name = NameEscape
		k.Meta = d.escaped
	case ch == " ":
		k.Name = NameSpace
		k.Meta = d.escaped
		k.Insertable = true
	case !d.escaped && ch[0] <= 0x1a:
		k.Name = string(rune(ch[0]) + 'a' - 1)
		k.Ctrl = true
	case isAlnum(ch):
		k.Name = strings.ToLower(ch)
		k.Shift = ch[0] >= 'A' && ch[0] <= 'Z'
		k.Meta = d.escaped
		k.Insertable = true
	default:
		r, _ := utf8.DecodeRuneInString(ch)
		if name, ok := altKey(r, d.platform); ok {
			k.Name = name
			k.Meta = true
			break
		}
		named = false
		if d.escaped {
			k.Meta = true
		} else {
			k.Insertable = true
		}
	}

	d.finish(k, raw, named)
}

// finish applies the emission gate and returns to the ground state.
// Broken multi-unit sequences with no name are dropped.
func (d *Decoder) finish(k Key, raw string, named bool) {
	d.state = stateGround
	seq := d.seq.String()
	if (seq != "" && (named || d.escaped)) || utf8.RuneCountInString(seq) == 1 {
		d.emit(k, raw)
		return
	}
	log.Debug("key: dropped unresolved sequence %q", seq)
}

// finishOSC emits a paste for OSC 52 clipboard reports; other bodies are dropped.
func (d *Decoder) finishOSC() {
	d.state = stateGround
	raw := d.seq.String()
	text, ok := decodeClipboard(d.osc.String())
	if !ok {
		return
	}
	d.emit(Key{Name: NamePaste, Insertable: true, Sequence: text}, raw)
}

func isDigit(ch string) bool {
	return len(ch) == 1 && ch[0] >= '0' && ch[0] <= '9'
}

func isAlnum(ch string) bool {
	if len(ch) != 1 {
		return false
	}
	c := ch[0]
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
