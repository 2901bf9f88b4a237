package terminal

import "unicode/utf8"

// maxSequenceLen bounds escape sequence collection. A sequence that grows
// past this without resolving is not a key, drop it and recover
const maxSequenceLen = 24

type decodeState uint8

const (
	stateGround decodeState = iota
	stateEscape
	stateSequence
)

// Decoder converts raw terminal bytes into key events. It tolerates
// sequences split across reads: partial state is held between Feed calls
// and resolved either by later bytes or by Expire
type Decoder struct {
	reg   *SeqRegistry
	state decodeState
	seq   []byte

	utf     [4]byte
	utfLen  int
	utfNeed int
	utfAlt  bool

	events []Event
}

// NewDecoder creates a decoder using the given sequence registry
// A nil registry selects the built-in dialect tables
func NewDecoder(reg *SeqRegistry) *Decoder {
	if reg == nil {
		reg = DefaultSequences()
	}
	return &Decoder{
		reg: reg,
		seq: make([]byte, 0, maxSequenceLen),
	}
}

// Pending reports whether the decoder holds partial state that a
// timeout should resolve via Expire
func (d *Decoder) Pending() bool {
	return d.state != stateGround || d.utfNeed > 0
}

// Feed consumes raw bytes and returns the decoded events
// The returned slice is reused by the next Feed or Expire call
func (d *Decoder) Feed(data []byte) []Event {
	d.events = d.events[:0]
	for _, b := range data {
		d.step(b)
	}
	return d.events
}

// Expire resolves state stalled past the escape timeout: a lone ESC
// becomes a KeyEscape event, an unterminated sequence or partial rune
// is dropped. The returned slice is reused by the next Feed or Expire call
func (d *Decoder) Expire() []Event {
	d.events = d.events[:0]
	switch d.state {
	case stateEscape:
		d.emit(Event{Type: EventKey, Key: KeyEscape})
	case stateSequence:
		// Unterminated sequence, nothing usable
	}
	d.state = stateGround
	d.seq = d.seq[:0]
	d.utfLen, d.utfNeed, d.utfAlt = 0, 0, false
	return d.events
}

func (d *Decoder) emit(ev Event) {
	d.events = append(d.events, ev)
}

func (d *Decoder) step(b byte) {
	switch d.state {
	case stateGround:
		d.stepGround(b)
	case stateEscape:
		d.stepEscape(b)
	case stateSequence:
		d.stepSequence(b)
	}
}

func (d *Decoder) stepGround(b byte) {
	if d.utfNeed > 0 {
		if b&0xC0 == 0x80 {
			d.utf[d.utfLen] = b
			d.utfLen++
			if d.utfLen == d.utfNeed {
				d.finishRune()
			}
			return
		}
		// Broken multi-byte rune, drop it and reprocess b fresh
		d.utfLen, d.utfNeed, d.utfAlt = 0, 0, false
	}

	switch {
	case b == 0x1B:
		d.state = stateEscape
		d.seq = append(d.seq[:0], b)
	case b < 0x20 || b == 0x7F:
		if ev, ok := controlEvent(b); ok {
			d.emit(ev)
		}
	case b < 0x80:
		d.emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
	default:
		n := utf8SeqLen(b)
		if n < 2 {
			return // Stray continuation byte
		}
		d.utf[0] = b
		d.utfLen = 1
		d.utfNeed = n
	}
}

func (d *Decoder) stepEscape(b byte) {
	switch {
	case b == 0x1B:
		// ESC ESC, deliver as modified escape
		d.emit(Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt})
		d.state = stateGround
		d.seq = d.seq[:0]
	case b == '[' || b == 'O':
		d.seq = append(d.seq, b)
		d.state = stateSequence
	case b < 0x20 || b == 0x7F:
		if ev, ok := controlEvent(b); ok {
			ev.Modifiers |= ModAlt
			d.emit(ev)
		}
		d.state = stateGround
		d.seq = d.seq[:0]
	case b < 0x80:
		d.emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(b), Modifiers: ModAlt})
		d.state = stateGround
		d.seq = d.seq[:0]
	default:
		// Alt + multi-byte rune
		n := utf8SeqLen(b)
		d.state = stateGround
		d.seq = d.seq[:0]
		if n < 2 {
			return
		}
		d.utf[0] = b
		d.utfLen = 1
		d.utfNeed = n
		d.utfAlt = true
	}
}

func (d *Decoder) stepSequence(b byte) {
	if b == 0x1B {
		// New escape cancels the stalled sequence
		d.state = stateEscape
		d.seq = append(d.seq[:0], 0x1B)
		return
	}

	d.seq = append(d.seq, b)
	if ks, ok := d.reg.Lookup(d.seq); ok {
		d.emit(Event{Type: EventKey, Key: ks.Key, Rune: ks.Rune, Modifiers: ks.Mod})
		d.state = stateGround
		d.seq = d.seq[:0]
		return
	}
	if len(d.seq) >= maxSequenceLen {
		d.state = stateGround
		d.seq = d.seq[:0]
		return
	}
	if d.reg.HasPrefix(d.seq) {
		return
	}

	// Unregistered sequence. For CSI, keep collecting through parameter
	// and intermediate bytes so the whole unknown sequence is swallowed
	// as a unit, then drop it at the final byte
	if d.seq[1] == '[' {
		if b >= 0x20 && b <= 0x3F {
			return
		}
	}
	d.state = stateGround
	d.seq = d.seq[:0]
}

func (d *Decoder) finishRune() {
	r, _ := utf8.DecodeRune(d.utf[:d.utfLen])
	if r != utf8.RuneError {
		ev := Event{Type: EventKey, Key: KeyRune, Rune: r}
		if d.utfAlt {
			ev.Modifiers = ModAlt
		}
		d.emit(ev)
	}
	d.utfLen, d.utfNeed, d.utfAlt = 0, 0, false
}

// controlEvent maps a C0 control byte or DEL to its key event
func controlEvent(b byte) (Event, bool) {
	switch b {
	case 0x00:
		return Event{Type: EventKey, Key: KeyCtrlSpace}, true
	case 0x08, 0x7F:
		return Event{Type: EventKey, Key: KeyBackspace}, true
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}, true
	case 0x0A, 0x0D:
		return Event{Type: EventKey, Key: KeyEnter}, true
	case 0x1C:
		return Event{Type: EventKey, Key: KeyCtrlBackslash}, true
	case 0x1D:
		return Event{Type: EventKey, Key: KeyCtrlBracketRight}, true
	case 0x1E:
		return Event{Type: EventKey, Key: KeyCtrlCaret}, true
	case 0x1F:
		return Event{Type: EventKey, Key: KeyCtrlUnderscore}, true
	}
	if b >= 0x01 && b <= 0x1A {
		return Event{Type: EventKey, Key: KeyCtrlA + Key(b-0x01)}, true
	}
	return Event{}, false
}

// utf8SeqLen returns the byte length a UTF-8 sequence starting with b
// should have, or -1 if b cannot start one
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return -1
}
