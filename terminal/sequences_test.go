package terminal

import (
	"testing"
)

func TestRegistryFirstRegistrationWins(t *testing.T) {
	r := NewSeqRegistry()
	r.Register(KeySequence{Seq: "\x1b[A", Key: KeyUp, Dialect: DialectCommon})
	r.Register(KeySequence{Seq: "\x1b[A", Key: KeyDown, Dialect: DialectXTerm})

	ks, ok := r.Lookup([]byte("\x1b[A"))
	if !ok {
		t.Fatal("registered sequence not found")
	}
	if ks.Key != KeyUp {
		t.Errorf("got %v, want KeyUp (first registration)", ks.Key)
	}
	if r.Len() != 1 {
		t.Errorf("duplicate registration changed length to %d", r.Len())
	}
}

func TestRegistryLookupExact(t *testing.T) {
	r := DefaultSequences()

	if _, ok := r.Lookup([]byte("\x1b[")); ok {
		t.Error("bare CSI prefix matched as complete sequence")
	}
	if _, ok := r.Lookup([]byte("\x1b[A")); !ok {
		t.Error("arrow sequence not found")
	}
	if _, ok := r.Lookup([]byte("\x1b[Q")); ok {
		t.Error("unregistered sequence matched")
	}
}

func TestRegistryHasPrefix(t *testing.T) {
	r := DefaultSequences()

	prefixes := []string{"\x1b", "\x1b[", "\x1b[1", "\x1b[1;", "\x1b[1;5", "\x1bO", "\x1b[["}
	for _, p := range prefixes {
		if !r.HasPrefix([]byte(p)) {
			t.Errorf("HasPrefix(%q) = false, want true", p)
		}
	}

	// Mouse reports are not registered
	if r.HasPrefix([]byte("\x1b[<")) {
		t.Error("HasPrefix matched SGR mouse prefix")
	}
	// Complete sequences are not prefixes of themselves
	if r.HasPrefix([]byte("\x1b[A")) {
		t.Error("complete arrow sequence reported as prefix")
	}
}

func TestRegistryByDialect(t *testing.T) {
	r := DefaultSequences()

	linux := r.ByDialect(DialectLinux)
	if len(linux) != 5 {
		t.Fatalf("linux dialect has %d sequences, want 5", len(linux))
	}
	for i, ks := range linux {
		if ks.Key != KeyF1+Key(i) {
			t.Errorf("linux entry %d: got %v, want F%d", i, ks.Key, i+1)
		}
	}

	for _, ks := range r.ByDialect(DialectXTerm) {
		if ks.Dialect != DialectXTerm {
			t.Errorf("ByDialect returned foreign entry %q", ks.Seq)
		}
	}
}

func TestRegistrySnapshotIsolated(t *testing.T) {
	r := DefaultSequences()
	snap := r.Sequences()
	if len(snap) != r.Len() {
		t.Fatalf("snapshot length %d, registry %d", len(snap), r.Len())
	}

	snap[0].Key = KeyNone
	ks, ok := r.Lookup([]byte(r.Sequences()[0].Seq))
	if !ok || ks.Key == KeyNone {
		t.Error("mutating snapshot affected registry")
	}
}

// Every built-in sequence must decode back to exactly the key it was
// registered for when fed to a fresh decoder
func TestDefaultSequencesRoundTrip(t *testing.T) {
	reg := DefaultSequences()

	for _, ks := range reg.Sequences() {
		d := NewDecoder(reg)
		evs := d.Feed([]byte(ks.Seq))
		if len(evs) != 1 {
			t.Errorf("%q: got %d events, want 1", ks.Seq, len(evs))
			continue
		}
		ev := evs[0]
		if ev.Key != ks.Key || ev.Rune != ks.Rune || ev.Modifiers != ks.Mod {
			t.Errorf("%q: decoded (%v, %q, mod %v), registered (%v, %q, mod %v)",
				ks.Seq, ev.Key, ev.Rune, ev.Modifiers, ks.Key, ks.Rune, ks.Mod)
		}
		if d.Pending() {
			t.Errorf("%q: decoder left pending", ks.Seq)
		}
	}
}

func TestRegisterCustomSequence(t *testing.T) {
	r := DefaultSequences()
	r.Register(KeySequence{Seq: "\x1b[200~", Key: KeyInsert, Mod: ModShift, Dialect: DialectXTerm})

	d := NewDecoder(r)
	evs := d.Feed([]byte("\x1b[200~"))
	if len(evs) != 1 || evs[0].Key != KeyInsert || evs[0].Modifiers != ModShift {
		t.Fatalf("custom sequence decoded as %+v", evs)
	}
}

func TestDialectString(t *testing.T) {
	tests := []struct {
		d    Dialect
		want string
	}{
		{DialectCommon, "common"},
		{DialectXTerm, "xterm"},
		{DialectLinux, "linux"},
		{Dialect(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Dialect(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// No registered sequence may be a strict prefix of another, otherwise the
// longer one could never be reached by exact-match decoding
func TestNoSequenceShadowsAnother(t *testing.T) {
	seqs := DefaultSequences().Sequences()
	for _, a := range seqs {
		for _, b := range seqs {
			if a.Seq == b.Seq {
				continue
			}
			if len(a.Seq) < len(b.Seq) && b.Seq[:len(a.Seq)] == a.Seq {
				t.Errorf("%q shadows %q", a.Seq, b.Seq)
			}
		}
	}
}
