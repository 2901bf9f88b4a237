package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal columns s occupies
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Clip truncates s to at most width columns without an ellipsis
// A two-column rune that would straddle the edge is dropped
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	col := 0
	for i, r := range s {
		w := runewidth.RuneWidth(r)
		if col+w > width {
			return s[:i]
		}
		col += w
	}
	return s
}

// CutLeft removes the leftmost n columns of s. A two-column rune
// straddling the cut is replaced by a space
func CutLeft(s string, n int) string {
	if n <= 0 {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		switch {
		case col >= n:
			b.WriteRune(r)
		case col+w <= n:
			// Wholly left of the cut
		default:
			b.WriteByte(' ')
		}
		col += w
	}
	return b.String()
}

// Truncate truncates to maxWidth columns with … suffix if it exceeds
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if DisplayWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return Clip(s, maxWidth-1) + "…"
}

// TruncateLeft truncates with … prefix, keeping the end of the string
func TruncateLeft(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	w := DisplayWidth(s)
	if w <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return "…" + CutLeft(s, w-maxWidth+1)
}

// TruncateMiddle keeps start and end with … in the middle
func TruncateMiddle(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	w := DisplayWidth(s)
	if w <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return Truncate(s, maxWidth)
	}

	// Favor the start slightly
	startW := (maxWidth - 1) / 2
	endW := maxWidth - 1 - startW
	return Clip(s, startW) + "…" + CutLeft(s, w-endW)
}

// PadRight pads with spaces to width columns
func PadRight(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// PadLeft left-pads with spaces to width columns
func PadLeft(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// PadCenter centers within width columns
func PadCenter(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
