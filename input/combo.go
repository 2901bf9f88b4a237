package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/lixenwraith/termkit/terminal"
)

// Combo is a normalized key combination: base key plus modifier flags.
// Printable keys use KeyRune with a lowercase rune; Ctrl+letter events,
// uppercase letters, space, and Backtab fold into the modifier flags so
// each reachable chord has exactly one representation and == compares
// combos structurally. Construct combos with ParseCombo or FromEvent
type Combo struct {
	Key  terminal.Key
	Rune rune
	Mod  terminal.Modifier
}

// Runes whose tokens cannot be the character itself
var runeToName = map[rune]string{
	'\\': "BACKSLASH",
	'[':  "BRACKET_LEFT",
	']':  "BRACKET_RIGHT",
	'^':  "CARET",
	'_':  "UNDERSCORE",
}

var nameToRune map[string]rune

func init() {
	nameToRune = make(map[string]rune, len(runeToName))
	for r, name := range runeToName {
		nameToRune[name] = r
	}
}

var modPrefixes = []struct {
	name string
	mod  terminal.Modifier
}{
	{"ctrl", terminal.ModCtrl},
	{"alt", terminal.ModAlt},
	{"meta", terminal.ModAlt},
	{"shift", terminal.ModShift},
}

// FromEvent normalizes a decoded key event to a Combo
// Returns false for non-key events
func FromEvent(ev terminal.Event) (Combo, bool) {
	if ev.Type != terminal.EventKey {
		return Combo{}, false
	}
	return normalize(ev.Key, ev.Rune, ev.Modifiers), true
}

// ParseCombo parses a human-readable key combination. Modifier names
// (ctrl, alt, meta, shift) are case-insensitive and joined by "+", "_",
// or "-"; the final token is a key name resolvable by terminal.KeyByName,
// a named rune (BACKSLASH, CARET, ...), or a single character. Tokens
// produced by Token parse back to the same combo
func ParseCombo(s string) (Combo, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Combo{}, errors.New("empty key combination")
	}

	var mod terminal.Modifier
	rest := trimmed
	for {
		// Whole-remainder key names first, so PAGE_UP and the CTRL_X
		// tokens are never split at their underscores
		if k, ok := terminal.KeyByName(rest); ok {
			return normalize(k, 0, mod), nil
		}
		m, n := stripModPrefix(rest)
		if n == 0 {
			break
		}
		mod |= m
		rest = rest[n:]
	}

	if r, ok := nameToRune[strings.ToUpper(rest)]; ok {
		return normalize(terminal.KeyRune, r, mod), nil
	}
	if runes := []rune(rest); len(runes) == 1 {
		return normalize(terminal.KeyRune, runes[0], mod), nil
	}
	return Combo{}, fmt.Errorf("invalid key combination %q", s)
}

// stripModPrefix matches a leading modifier name plus separator,
// returning the modifier and consumed length, or zero length if none
func stripModPrefix(s string) (terminal.Modifier, int) {
	lower := strings.ToLower(s)
	for _, p := range modPrefixes {
		n := len(p.name)
		if len(lower) > n && strings.HasPrefix(lower, p.name) &&
			(s[n] == '+' || s[n] == '_' || s[n] == '-') {
			return p.mod, n + 1
		}
	}
	return 0, 0
}

// normalize folds equivalent key encodings into the canonical form
func normalize(k terminal.Key, r rune, mod terminal.Modifier) Combo {
	switch {
	case k >= terminal.KeyCtrlA && k <= terminal.KeyCtrlZ:
		return Combo{Key: terminal.KeyRune, Rune: 'a' + rune(k-terminal.KeyCtrlA), Mod: mod | terminal.ModCtrl}
	case k == terminal.KeyCtrlSpace:
		return Combo{Key: terminal.KeySpace, Mod: mod | terminal.ModCtrl}
	case k == terminal.KeyCtrlBackslash:
		return Combo{Key: terminal.KeyRune, Rune: '\\', Mod: mod | terminal.ModCtrl}
	case k == terminal.KeyCtrlBracketLeft:
		return Combo{Key: terminal.KeyRune, Rune: '[', Mod: mod | terminal.ModCtrl}
	case k == terminal.KeyCtrlBracketRight:
		return Combo{Key: terminal.KeyRune, Rune: ']', Mod: mod | terminal.ModCtrl}
	case k == terminal.KeyCtrlCaret:
		return Combo{Key: terminal.KeyRune, Rune: '^', Mod: mod | terminal.ModCtrl}
	case k == terminal.KeyCtrlUnderscore:
		return Combo{Key: terminal.KeyRune, Rune: '_', Mod: mod | terminal.ModCtrl}
	case k == terminal.KeyBacktab:
		return Combo{Key: terminal.KeyTab, Mod: mod | terminal.ModShift}
	case k == terminal.KeyRune:
		if r == ' ' {
			return Combo{Key: terminal.KeySpace, Mod: mod}
		}
		if unicode.IsUpper(r) {
			return Combo{Key: terminal.KeyRune, Rune: unicode.ToLower(r), Mod: mod | terminal.ModShift}
		}
		return Combo{Key: terminal.KeyRune, Rune: r, Mod: mod}
	default:
		return Combo{Key: k, Mod: mod}
	}
}

// Token returns the canonical token: modifier prefixes in CTRL, ALT,
// SHIFT order joined to the base key token with underscores
// Returns empty string for an invalid combo
func (c Combo) Token() string {
	base := c.baseToken()
	if base == "" {
		return ""
	}
	var b strings.Builder
	if c.Mod&terminal.ModCtrl != 0 {
		b.WriteString("CTRL_")
	}
	if c.Mod&terminal.ModAlt != 0 {
		b.WriteString("ALT_")
	}
	if c.Mod&terminal.ModShift != 0 {
		b.WriteString("SHIFT_")
	}
	b.WriteString(base)
	return b.String()
}

func (c Combo) baseToken() string {
	if c.Key == terminal.KeyRune {
		if c.Rune == 0 {
			return ""
		}
		if name, ok := runeToName[c.Rune]; ok {
			return name
		}
		return strings.ToUpper(string(c.Rune))
	}
	return terminal.KeyName(c.Key)
}

// Match reports whether token denotes this combo, accepting any modifier
// order and case
func (c Combo) Match(token string) bool {
	other, err := ParseCombo(token)
	return err == nil && other == c
}

// Valid reports whether the combo denotes an actual key
func (c Combo) Valid() bool {
	return c.Key != terminal.KeyNone && (c.Key != terminal.KeyRune || c.Rune != 0)
}

// String implements fmt.Stringer
func (c Combo) String() string {
	return c.Token()
}
