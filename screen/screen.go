package screen

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termkit/terminal"
)

// Buffer is the application-side cell grid. Draw calls accumulate between
// BeginFrame and EndFrame; EndFrame hands the whole grid to the terminal,
// which diffs it against what is already on screen
// Uses []terminal.Cell directly to allow zero-copy export, worth the coupling
type Buffer struct {
	term   terminal.Terminal
	cells  []terminal.Cell
	width  int
	height int
	fill   terminal.Style
}

// New creates a buffer sized to the terminal
func New(term terminal.Terminal) *Buffer {
	b := &Buffer{term: term}
	w, h := term.Size()
	b.resize(w, h)
	return b
}

// Size returns the current grid dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// SetFill sets the style Clear paints the grid with
func (b *Buffer) SetFill(st terminal.Style) {
	b.fill = st
}

// BeginFrame synchronizes the grid with the live terminal size and clears
// it. A size change reallocates the grid; the terminal side notices the
// new dimensions at the next flush and repaints in full
func (b *Buffer) BeginFrame() {
	w, h := b.term.Size()
	if w != b.width || h != b.height {
		b.resize(w, h)
	}
	b.Clear()
}

// EndFrame hands the finished grid to the terminal for diffing. A frame
// whose size no longer matches the live terminal is dropped there
func (b *Buffer) EndFrame() {
	b.term.Flush(b.cells, b.width, b.height)
}

// resize adjusts grid dimensions, reallocates only if capacity insufficient
func (b *Buffer) resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to the fill style using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{Rune: 0, Fg: b.fill.Fg, Bg: b.fill.Bg, Attrs: b.fill.Attrs}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in grid bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell out of bounds
func (b *Buffer) Get(x, y int) terminal.Cell {
	if !b.inBounds(x, y) {
		return terminal.Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetCell writes a single narrow cell. Overwriting half of a two-column
// glyph blanks the orphaned half so the pair never splits
func (b *Buffer) SetCell(x, y int, r rune, st terminal.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.breakWide(x, y)
	b.cells[y*b.width+x] = terminal.Cell{Rune: r, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attrs &^ terminal.AttrWide}
}

// breakWide dissolves the wide pair covering (x, y), if any
func (b *Buffer) breakWide(x, y int) {
	idx := y*b.width + x
	c := b.cells[idx]
	if c.Attrs&terminal.AttrWide == 0 {
		return
	}
	if c.Rune == 0 {
		// Tail cell: the head loses its glyph
		if x > 0 {
			head := &b.cells[idx-1]
			if head.Attrs&terminal.AttrWide != 0 && head.Rune != 0 {
				head.Rune = ' '
				head.Attrs &^= terminal.AttrWide
			}
		}
	} else {
		// Head cell: the tail becomes a plain empty cell
		if x+1 < b.width {
			tail := &b.cells[idx+1]
			if tail.Attrs&terminal.AttrWide != 0 && tail.Rune == 0 {
				tail.Attrs &^= terminal.AttrWide
			}
		}
	}
}

// Fill paints a rectangle with one rune and style, clipped to the grid
func (b *Buffer) Fill(x, y, w, h int, r rune, st terminal.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetCell(col, row, r, st)
		}
	}
}

// WriteAt writes text at cell coordinates with one style and returns the
// number of columns consumed. Out-of-bounds cells are clipped. Wide runes
// occupy two columns, zero-width runes are dropped
func (b *Buffer) WriteAt(x, y int, text string, st terminal.Style) int {
	return b.write(x, y, text, st, nil)
}

// WriteAtFunc is WriteAt with a per-rune style callback. The callback
// receives the rune index within text and the rune itself
func (b *Buffer) WriteAtFunc(x, y int, text string, fn func(i int, r rune) terminal.Style) int {
	return b.write(x, y, text, terminal.Style{}, fn)
}

func (b *Buffer) write(x, y int, text string, st terminal.Style, fn func(int, rune) terminal.Style) int {
	if y < 0 || y >= b.height || x >= b.width {
		return 0
	}

	cx := x
	runeIdx := 0
	for _, r := range text {
		if cx >= b.width {
			break
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			// Zero-width and control runes have no cell of their own
			runeIdx++
			continue
		}
		if fn != nil {
			st = fn(runeIdx, r)
		}

		switch {
		case cx >= 0 && cx+w <= b.width:
			b.placeRune(cx, y, r, w, st)
		case cx < 0 && cx+w > 0:
			// Left-clipped wide rune, blank its visible column
			b.SetCell(0, y, ' ', st)
		case cx >= 0:
			// Wide rune at the right edge with no room for its tail
			b.SetCell(cx, y, ' ', st)
		}

		cx += w
		runeIdx++
	}
	return cx - x
}

// placeRune writes one glyph whose full width fits at (x, y)
func (b *Buffer) placeRune(x, y int, r rune, w int, st terminal.Style) {
	idx := y*b.width + x
	b.breakWide(x, y)
	if w == 2 {
		b.breakWide(x+1, y)
		b.cells[idx] = terminal.Cell{Rune: r, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attrs | terminal.AttrWide}
		b.cells[idx+1] = terminal.Cell{Rune: 0, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attrs | terminal.AttrWide}
		return
	}
	b.cells[idx] = terminal.Cell{Rune: r, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attrs &^ terminal.AttrWide}
}
