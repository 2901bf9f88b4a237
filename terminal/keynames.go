package terminal

import "strings"

// keyToName maps Key constants to canonical token names
// Tokens are stable identifiers used in binding configs and diagnostics
var keyToName = map[Key]string{
	KeyEscape:    "ESCAPE",
	KeyEnter:     "ENTER",
	KeyTab:       "TAB",
	KeyBacktab:   "BACKTAB",
	KeyBackspace: "BACKSPACE",
	KeyDelete:    "DELETE",
	KeySpace:     "SPACE",

	KeyUp:       "UP",
	KeyDown:     "DOWN",
	KeyLeft:     "LEFT",
	KeyRight:    "RIGHT",
	KeyHome:     "HOME",
	KeyEnd:      "END",
	KeyPageUp:   "PAGE_UP",
	KeyPageDown: "PAGE_DOWN",
	KeyInsert:   "INSERT",

	KeyF1:  "F1",
	KeyF2:  "F2",
	KeyF3:  "F3",
	KeyF4:  "F4",
	KeyF5:  "F5",
	KeyF6:  "F6",
	KeyF7:  "F7",
	KeyF8:  "F8",
	KeyF9:  "F9",
	KeyF10: "F10",
	KeyF11: "F11",
	KeyF12: "F12",

	KeyCtrlA:            "CTRL_A",
	KeyCtrlB:            "CTRL_B",
	KeyCtrlC:            "CTRL_C",
	KeyCtrlD:            "CTRL_D",
	KeyCtrlE:            "CTRL_E",
	KeyCtrlF:            "CTRL_F",
	KeyCtrlG:            "CTRL_G",
	KeyCtrlH:            "CTRL_H",
	KeyCtrlI:            "CTRL_I",
	KeyCtrlJ:            "CTRL_J",
	KeyCtrlK:            "CTRL_K",
	KeyCtrlL:            "CTRL_L",
	KeyCtrlM:            "CTRL_M",
	KeyCtrlN:            "CTRL_N",
	KeyCtrlO:            "CTRL_O",
	KeyCtrlP:            "CTRL_P",
	KeyCtrlQ:            "CTRL_Q",
	KeyCtrlR:            "CTRL_R",
	KeyCtrlS:            "CTRL_S",
	KeyCtrlT:            "CTRL_T",
	KeyCtrlU:            "CTRL_U",
	KeyCtrlV:            "CTRL_V",
	KeyCtrlW:            "CTRL_W",
	KeyCtrlX:            "CTRL_X",
	KeyCtrlY:            "CTRL_Y",
	KeyCtrlZ:            "CTRL_Z",
	KeyCtrlSpace:        "CTRL_SPACE",
	KeyCtrlBackslash:    "CTRL_BACKSLASH",
	KeyCtrlBracketLeft:  "CTRL_BRACKET_LEFT",
	KeyCtrlBracketRight: "CTRL_BRACKET_RIGHT",
	KeyCtrlCaret:        "CTRL_CARET",
	KeyCtrlUnderscore:   "CTRL_UNDERSCORE",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName))
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["SHIFT_TAB"] = KeyBacktab
	nameToKey["ESC"] = KeyEscape
	nameToKey["RETURN"] = KeyEnter
	nameToKey["DEL"] = KeyDelete
	nameToKey["PGUP"] = KeyPageUp
	nameToKey["PGDN"] = KeyPageDown
}

// KeyName returns the canonical token for a Key constant
// Returns empty string for KeyNone and KeyRune
func KeyName(k Key) string {
	return keyToName[k]
}

// KeyByName resolves a token to a Key constant, case-insensitively
// Returns KeyNone and false if the token is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[strings.ToUpper(name)]
	return k, ok
}
