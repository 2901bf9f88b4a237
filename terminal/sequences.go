package terminal

// Dialect identifies the terminal family a key sequence belongs to
type Dialect uint8

const (
	DialectCommon Dialect = iota // Emitted identically by all supported terminals
	DialectXTerm                 // xterm, rxvt and descendants
	DialectLinux                 // Linux virtual console
)

// String returns the dialect name
func (d Dialect) String() string {
	switch d {
	case DialectCommon:
		return "common"
	case DialectXTerm:
		return "xterm"
	case DialectLinux:
		return "linux"
	}
	return "unknown"
}

// KeySequence maps one raw byte sequence to a key
// Seq holds the full bytes as sent by the terminal, including the leading ESC
type KeySequence struct {
	Seq     string
	Key     Key
	Rune    rune // Payload for KeyRune entries (application keypad)
	Mod     Modifier
	Dialect Dialect
}

// SeqRegistry resolves raw escape sequences to keys
// Registration order is significant: the first registration of a byte
// string wins, later duplicates are ignored
type SeqRegistry struct {
	seqs     []KeySequence
	index    map[string]int
	prefixes map[string]struct{}
}

// NewSeqRegistry creates an empty registry
func NewSeqRegistry() *SeqRegistry {
	return &SeqRegistry{
		index:    make(map[string]int, 256),
		prefixes: make(map[string]struct{}, 512),
	}
}

// Register adds a sequence mapping. The first registration for a given
// byte string is kept, conflicting later ones are dropped silently
func (r *SeqRegistry) Register(ks KeySequence) {
	if ks.Seq == "" {
		return
	}
	if _, exists := r.index[ks.Seq]; exists {
		return
	}
	r.index[ks.Seq] = len(r.seqs)
	r.seqs = append(r.seqs, ks)
	for i := 1; i < len(ks.Seq); i++ {
		r.prefixes[ks.Seq[:i]] = struct{}{}
	}
}

// Lookup resolves a complete raw sequence by exact byte match
// The string([]byte) conversion inline in map access does not allocate
func (r *SeqRegistry) Lookup(raw []byte) (KeySequence, bool) {
	if i, ok := r.index[string(raw)]; ok {
		return r.seqs[i], true
	}
	return KeySequence{}, false
}

// HasPrefix reports whether any registered sequence starts with raw
// Used by the decoder to distinguish "still collecting" from "unknown"
func (r *SeqRegistry) HasPrefix(raw []byte) bool {
	_, ok := r.prefixes[string(raw)]
	return ok
}

// Len returns the number of registered sequences
func (r *SeqRegistry) Len() int {
	return len(r.seqs)
}

// Sequences returns a snapshot of all registered sequences in order
func (r *SeqRegistry) Sequences() []KeySequence {
	out := make([]KeySequence, len(r.seqs))
	copy(out, r.seqs)
	return out
}

// ByDialect returns registered sequences belonging to one dialect, in order
func (r *SeqRegistry) ByDialect(d Dialect) []KeySequence {
	var out []KeySequence
	for _, ks := range r.seqs {
		if ks.Dialect == d {
			out = append(out, ks)
		}
	}
	return out
}

// modCombo pairs the xterm modifier parameter with decoded modifier flags
// Parameter value is 1 + bitmask (shift=1, alt=2, ctrl=4)
type modCombo struct {
	param byte
	mod   Modifier
}

var modCombos = []modCombo{
	{'2', ModShift},
	{'3', ModAlt},
	{'4', ModShift | ModAlt},
	{'5', ModCtrl},
	{'6', ModShift | ModCtrl},
	{'7', ModAlt | ModCtrl},
	{'8', ModShift | ModAlt | ModCtrl},
}

// DefaultSequences returns a registry pre-loaded with the built-in
// dialect tables
func DefaultSequences() *SeqRegistry {
	r := NewSeqRegistry()

	// Arrows, Home, End (CSI final byte form)
	arrows := []struct {
		final byte
		key   Key
	}{
		{'A', KeyUp}, {'B', KeyDown}, {'C', KeyRight}, {'D', KeyLeft},
		{'H', KeyHome}, {'F', KeyEnd},
	}
	for _, a := range arrows {
		r.Register(KeySequence{Seq: "\x1b[" + string(a.final), Key: a.key, Dialect: DialectCommon})
	}
	r.Register(KeySequence{Seq: "\x1b[Z", Key: KeyBacktab, Mod: ModShift, Dialect: DialectCommon})

	// Editing cluster (CSI N ~)
	tilde := []struct {
		num string
		key Key
	}{
		{"1", KeyHome}, {"2", KeyInsert}, {"3", KeyDelete}, {"4", KeyEnd},
		{"5", KeyPageUp}, {"6", KeyPageDown}, {"7", KeyHome}, {"8", KeyEnd},
	}
	for _, t := range tilde {
		r.Register(KeySequence{Seq: "\x1b[" + t.num + "~", Key: t.key, Dialect: DialectCommon})
	}

	// F5-F12 (CSI N ~)
	fkeys := []struct {
		num string
		key Key
	}{
		{"15", KeyF5}, {"17", KeyF6}, {"18", KeyF7}, {"19", KeyF8},
		{"20", KeyF9}, {"21", KeyF10}, {"23", KeyF11}, {"24", KeyF12},
	}
	for _, f := range fkeys {
		r.Register(KeySequence{Seq: "\x1b[" + f.num + "~", Key: f.key, Dialect: DialectCommon})
	}

	// Modifier variants (xterm encoding, emitted by effectively everything)
	for _, mc := range modCombos {
		for _, a := range arrows {
			r.Register(KeySequence{
				Seq: "\x1b[1;" + string(mc.param) + string(a.final), Key: a.key, Mod: mc.mod, Dialect: DialectCommon,
			})
		}
		for _, t := range tilde[1:6] { // 2~ through 6~ carry modifier forms
			r.Register(KeySequence{
				Seq: "\x1b[" + t.num + ";" + string(mc.param) + "~", Key: t.key, Mod: mc.mod, Dialect: DialectCommon,
			})
		}
		for i, final := range []byte{'P', 'Q', 'R', 'S'} {
			r.Register(KeySequence{
				Seq: "\x1b[1;" + string(mc.param) + string(final), Key: KeyF1 + Key(i), Mod: mc.mod, Dialect: DialectCommon,
			})
		}
		for _, f := range fkeys {
			r.Register(KeySequence{
				Seq: "\x1b[" + f.num + ";" + string(mc.param) + "~", Key: f.key, Mod: mc.mod, Dialect: DialectCommon,
			})
		}
	}

	// F1-F4 (SS3, vt100 PF keys)
	for i, final := range []byte{'P', 'Q', 'R', 'S'} {
		r.Register(KeySequence{Seq: "\x1bO" + string(final), Key: KeyF1 + Key(i), Dialect: DialectCommon})
	}
	r.Register(KeySequence{Seq: "\x1bOM", Key: KeyEnter, Dialect: DialectCommon}) // Keypad Enter

	// F1-F4 (xterm/rxvt legacy CSI form)
	for i, num := range []string{"11", "12", "13", "14"} {
		r.Register(KeySequence{Seq: "\x1b[" + num + "~", Key: KeyF1 + Key(i), Dialect: DialectXTerm})
	}

	// Application cursor mode arrows (SS3)
	for _, a := range arrows {
		r.Register(KeySequence{Seq: "\x1bO" + string(a.final), Key: a.key, Dialect: DialectXTerm})
	}

	// Application keypad (SS3)
	keypad := []struct {
		final byte
		r     rune
	}{
		{'j', '*'}, {'k', '+'}, {'l', ','}, {'m', '-'}, {'n', '.'}, {'o', '/'},
		{'p', '0'}, {'q', '1'}, {'r', '2'}, {'s', '3'}, {'t', '4'},
		{'u', '5'}, {'v', '6'}, {'w', '7'}, {'x', '8'}, {'y', '9'},
		{'X', '='},
	}
	for _, k := range keypad {
		r.Register(KeySequence{Seq: "\x1bO" + string(k.final), Key: KeyRune, Rune: k.r, Dialect: DialectXTerm})
	}

	// Linux console F1-F5
	for i, final := range []byte{'A', 'B', 'C', 'D', 'E'} {
		r.Register(KeySequence{Seq: "\x1b[[" + string(final), Key: KeyF1 + Key(i), Dialect: DialectLinux})
	}

	return r
}
