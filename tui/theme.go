package tui

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/termkit/terminal"
)

// Theme defines the semantic palette widgets draw with
type Theme struct {
	Bg     terminal.Color
	Fg     terminal.Color
	Border terminal.Color
	Title  terminal.Color

	CursorFg terminal.Color
	CursorBg terminal.Color

	HeaderFg terminal.Color
	HeaderBg terminal.Color

	StatusFg terminal.Color
	StatusBg terminal.Color

	KeyFg   terminal.Color
	KeyBg   terminal.Color
	LabelFg terminal.Color
	LabelBg terminal.Color

	HintFg  terminal.Color
	ErrorFg terminal.Color
}

// DefaultTheme provides the classic blue-panel look
var DefaultTheme = Theme{
	Bg:       terminal.ColorBlue,
	Fg:       terminal.ColorWhite,
	Border:   terminal.ColorWhite,
	Title:    terminal.ColorBrightYellow,
	CursorFg: terminal.ColorBlack,
	CursorBg: terminal.ColorCyan,
	HeaderFg: terminal.ColorBrightWhite,
	HeaderBg: terminal.ColorBlue,
	StatusFg: terminal.ColorBlack,
	StatusBg: terminal.ColorCyan,
	KeyFg:    terminal.ColorWhite,
	KeyBg:    terminal.ColorDefault,
	LabelFg:  terminal.ColorBlack,
	LabelBg:  terminal.ColorCyan,
	HintFg:   terminal.ColorBrightCyan,
	ErrorFg:  terminal.ColorBrightRed,
}

// Base returns the default text style
func (t Theme) Base() terminal.Style {
	return terminal.Style{Fg: t.Fg, Bg: t.Bg}
}

// BorderStyle returns the style for boxes and dividers
func (t Theme) BorderStyle() terminal.Style {
	return terminal.Style{Fg: t.Border, Bg: t.Bg}
}

// TitleStyle returns the style for card titles
func (t Theme) TitleStyle() terminal.Style {
	return terminal.Style{Fg: t.Title, Bg: t.Bg, Attrs: terminal.AttrBold}
}

// Cursor returns the style for the row under the cursor
func (t Theme) Cursor() terminal.Style {
	return terminal.Style{Fg: t.CursorFg, Bg: t.CursorBg}
}

// Header returns the style for panel headers
func (t Theme) Header() terminal.Style {
	return terminal.Style{Fg: t.HeaderFg, Bg: t.HeaderBg, Attrs: terminal.AttrBold}
}

// Status returns the style for the status bar
func (t Theme) Status() terminal.Style {
	return terminal.Style{Fg: t.StatusFg, Bg: t.StatusBg}
}

// Key returns the style for key tokens in the key bar
func (t Theme) Key() terminal.Style {
	return terminal.Style{Fg: t.KeyFg, Bg: t.KeyBg}
}

// Label returns the style for action labels in the key bar
func (t Theme) Label() terminal.Style {
	return terminal.Style{Fg: t.LabelFg, Bg: t.LabelBg}
}

// Hint returns the style for secondary hint text
func (t Theme) Hint() terminal.Style {
	return terminal.Style{Fg: t.HintFg, Bg: t.Bg}
}

// Error returns the style for error text
func (t Theme) Error() terminal.Style {
	return terminal.Style{Fg: t.ErrorFg, Bg: t.Bg, Attrs: terminal.AttrBold}
}

// themeFile mirrors the TOML theme schema. Unset fields keep the base
// theme's value
type themeFile struct {
	Bg     string `toml:"bg"`
	Fg     string `toml:"fg"`
	Border string `toml:"border"`
	Title  string `toml:"title"`

	CursorFg string `toml:"cursor_fg"`
	CursorBg string `toml:"cursor_bg"`

	HeaderFg string `toml:"header_fg"`
	HeaderBg string `toml:"header_bg"`

	StatusFg string `toml:"status_fg"`
	StatusBg string `toml:"status_bg"`

	KeyFg   string `toml:"key_fg"`
	KeyBg   string `toml:"key_bg"`
	LabelFg string `toml:"label_fg"`
	LabelBg string `toml:"label_bg"`

	HintFg  string `toml:"hint_fg"`
	ErrorFg string `toml:"error_fg"`
}

// LoadTheme parses TOML theme data over a base theme. Color values are
// palette names ("cyan", "bright_blue") or palette indices ("214")
func LoadTheme(data []byte, base Theme) (Theme, error) {
	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Theme{}, fmt.Errorf("theme parse: %w", err)
	}

	t := base
	fields := []struct {
		name string
		val  string
		dst  *terminal.Color
	}{
		{"bg", f.Bg, &t.Bg},
		{"fg", f.Fg, &t.Fg},
		{"border", f.Border, &t.Border},
		{"title", f.Title, &t.Title},
		{"cursor_fg", f.CursorFg, &t.CursorFg},
		{"cursor_bg", f.CursorBg, &t.CursorBg},
		{"header_fg", f.HeaderFg, &t.HeaderFg},
		{"header_bg", f.HeaderBg, &t.HeaderBg},
		{"status_fg", f.StatusFg, &t.StatusFg},
		{"status_bg", f.StatusBg, &t.StatusBg},
		{"key_fg", f.KeyFg, &t.KeyFg},
		{"key_bg", f.KeyBg, &t.KeyBg},
		{"label_fg", f.LabelFg, &t.LabelFg},
		{"label_bg", f.LabelBg, &t.LabelBg},
		{"hint_fg", f.HintFg, &t.HintFg},
		{"error_fg", f.ErrorFg, &t.ErrorFg},
	}

	for _, fd := range fields {
		if fd.val == "" {
			continue
		}
		c, ok := terminal.ParseColor(fd.val)
		if !ok {
			return Theme{}, fmt.Errorf("theme %s: unknown color %q", fd.name, fd.val)
		}
		*fd.dst = c
	}

	return t, nil
}
