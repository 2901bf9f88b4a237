package terminal

import (
	"os"
	"strconv"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode16  ColorMode = iota // Basic ANSI palette
	ColorMode256                  // xterm-256 palette
)

// Color identifies a palette color. Zero is the terminal default,
// 1-8 the basic ANSI colors, 9-16 their bright variants, and higher
// values address the xterm-256 palette
type Color uint16

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	color256Base = ColorBrightWhite + 1
)

// Color256 returns the color addressing 256-palette index n
func Color256(n uint8) Color {
	return color256Base + Color(n)
}

// Is256 reports whether c addresses the 256-color palette
func (c Color) Is256() bool {
	return c >= color256Base
}

// Index256 returns the palette index of a 256-palette color
func (c Color) Index256() uint8 {
	return uint8(c - color256Base)
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// ansiRGB holds reference values for the 16 basic colors (VGA ordering)
var ansiRGB = [16][3]int{
	{0, 0, 0}, {170, 0, 0}, {0, 170, 0}, {170, 85, 0},
	{0, 0, 170}, {170, 0, 170}, {0, 170, 170}, {170, 170, 170},
	{85, 85, 85}, {255, 85, 85}, {85, 255, 85}, {255, 255, 85},
	{85, 85, 255}, {255, 85, 255}, {85, 255, 255}, {255, 255, 255},
}

// to16LUT maps each 256-palette index to the nearest basic color
// Pre-computed at init time
var to16LUT [256]Color

func init() {
	for i := 0; i < 256; i++ {
		to16LUT[i] = nearestANSI(paletteRGB(uint8(i)))
	}
}

// paletteRGB returns the reference RGB for a 256-palette index
func paletteRGB(n uint8) (int, int, int) {
	if n < 16 {
		c := ansiRGB[n]
		return c[0], c[1], c[2]
	}
	if n < 232 {
		i := int(n) - 16
		return int(cubeValues[i/36]), int(cubeValues[i/6%6]), int(cubeValues[i%6])
	}
	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	level := 8 + 10*(int(n)-232)
	return level, level, level
}

// nearestANSI returns the basic color closest to an RGB value
func nearestANSI(r, g, b int) Color {
	best := 0
	bestDist := 1 << 30
	for i, ref := range ansiRGB {
		d := sq(r-ref[0]) + sq(g-ref[1]) + sq(b-ref[2])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return ColorBlack + Color(best)
}

func sq(x int) int {
	return x * x
}

// To16 degrades a color to the basic 16-color palette
func (c Color) To16() Color {
	if !c.Is256() {
		return c
	}
	return to16LUT[c.Index256()]
}

var colorTokens = [...]string{
	"default",
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

var colorNames map[string]Color

func init() {
	colorNames = make(map[string]Color, len(colorTokens))
	for i, name := range colorTokens {
		colorNames[name] = Color(i)
	}
	// Underscore spelling accepted too
	colorNames["bright_black"] = ColorBrightBlack
	colorNames["bright_red"] = ColorBrightRed
	colorNames["bright_green"] = ColorBrightGreen
	colorNames["bright_yellow"] = ColorBrightYellow
	colorNames["bright_blue"] = ColorBrightBlue
	colorNames["bright_magenta"] = ColorBrightMagenta
	colorNames["bright_cyan"] = ColorBrightCyan
	colorNames["bright_white"] = ColorBrightWhite
	colorNames["gray"] = ColorBrightBlack
	colorNames["grey"] = ColorBrightBlack
}

// ParseColor resolves a color name or a numeric 256-palette index
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return Color256(uint8(n)), true
	}
	return ColorDefault, false
}

// String returns the color name, or the palette index for 256-colors
func (c Color) String() string {
	if int(c) < len(colorTokens) {
		return colorTokens[c]
	}
	return strconv.Itoa(int(c.Index256()))
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "" || term == "dumb" {
		return ColorMode16
	}

	// Modern terminals advertise through COLORTERM or their own vars
	if os.Getenv("COLORTERM") != "" {
		return ColorMode256
	}
	for _, v := range [...]string{
		"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID", "WEZTERM_PANE",
	} {
		if os.Getenv(v) != "" {
			return ColorMode256
		}
	}

	if strings.Contains(term, "256color") ||
		strings.Contains(term, "truecolor") ||
		strings.Contains(term, "direct") {
		return ColorMode256
	}

	// Linux console and hardware-era terminals stay on the basic palette
	if term == "linux" || term == "ansi" || strings.HasPrefix(term, "vt") {
		return ColorMode16
	}

	return ColorMode256
}
