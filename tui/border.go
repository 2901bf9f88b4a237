package tui

import (
	"github.com/lixenwraith/termkit/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws a border around the region edge
func (r Region) Box(line LineType, st terminal.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]

	// Corners
	r.SetCell(0, 0, chars[boxTL], st)
	r.SetCell(r.W-1, 0, chars[boxTR], st)
	r.SetCell(0, r.H-1, chars[boxBL], st)
	r.SetCell(r.W-1, r.H-1, chars[boxBR], st)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		r.SetCell(x, 0, chars[boxH], st)
		r.SetCell(x, r.H-1, chars[boxH], st)
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		r.SetCell(0, y, chars[boxV], st)
		r.SetCell(r.W-1, y, chars[boxV], st)
	}
}

// HLine draws a horizontal line across the region width at row y
func (r Region) HLine(y int, line LineType, st terminal.Style) {
	if y < 0 || y >= r.H {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxH]
	for x := 0; x < r.W; x++ {
		r.SetCell(x, y, ch, st)
	}
}

// VLine draws a vertical line across the region height at column x
func (r Region) VLine(x int, line LineType, st terminal.Style) {
	if x < 0 || x >= r.W {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxV]
	for y := 0; y < r.H; y++ {
		r.SetCell(x, y, ch, st)
	}
}

// Divider draws a horizontal line with an optional centered label
func (r Region) Divider(y int, label string, line LineType, st terminal.Style) {
	r.HLine(y, line, st)

	if label != "" && r.W > 4 {
		text := " " + Truncate(label, r.W-4) + " "
		bold := st
		bold.Attrs |= terminal.AttrBold
		r.Text((r.W-DisplayWidth(text))/2, y, text, bold)
	}
}

// Card draws a titled border and returns the inner content region
func (r Region) Card(title string, line LineType, st terminal.Style) Region {
	r.Box(line, st)

	if title != "" && r.W > 4 {
		text := " " + Truncate(title, r.W-4) + " "
		bold := st
		bold.Attrs |= terminal.AttrBold
		r.Text((r.W-DisplayWidth(text))/2, 0, text, bold)
	}

	return r.Inset(1)
}
