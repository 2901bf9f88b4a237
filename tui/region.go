package tui

import (
	"github.com/lixenwraith/termkit/screen"
	"github.com/lixenwraith/termkit/terminal"
)

// Region represents a rectangular area within a screen buffer
// All coordinates are relative to the region's origin
type Region struct {
	buf  *screen.Buffer
	X, Y int // Absolute position in the buffer
	W, H int // Region dimensions
}

// NewRegion returns a region covering the whole buffer
func NewRegion(buf *screen.Buffer) Region {
	w, h := buf.Size()
	return Region{buf: buf, W: w, H: h}
}

// Sub returns a nested region with coordinates relative to the parent,
// clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		buf: r.buf,
		X:   r.X + x,
		Y:   r.Y + y,
		W:   w,
		H:   h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// SetCell sets a single cell with bounds checking
func (r Region) SetCell(x, y int, ch rune, st terminal.Style) {
	if r.buf == nil || x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.buf.SetCell(r.X+x, r.Y+y, ch, st)
}

// Get returns the cell at region coordinates, zero Cell out of bounds
func (r Region) Get(x, y int) terminal.Cell {
	if r.buf == nil || x < 0 || x >= r.W || y < 0 || y >= r.H {
		return terminal.Cell{}
	}
	return r.buf.Get(r.X+x, r.Y+y)
}

// Fill paints the region with one rune and style
func (r Region) Fill(ch rune, st terminal.Style) {
	if r.buf == nil {
		return
	}
	r.buf.Fill(r.X, r.Y, r.W, r.H, ch, st)
}

// Clear fills the region with blank cells in the given style
func (r Region) Clear(st terminal.Style) {
	r.Fill(0, st)
}

// Text writes a string with one style, clipped to the region
// Returns the number of columns consumed inside the region
func (r Region) Text(x, y int, s string, st terminal.Style) int {
	if r.buf == nil || y < 0 || y >= r.H || x >= r.W {
		return 0
	}
	if x < 0 {
		s = CutLeft(s, -x)
		x = 0
	}
	s = Clip(s, r.W-x)
	return r.buf.WriteAt(r.X+x, r.Y+y, s, st)
}

// TextRight writes text right-aligned on a row
func (r Region) TextRight(y int, s string, st terminal.Style) {
	r.Text(r.W-DisplayWidth(s), y, s, st)
}

// TextCenter writes text centered on a row
func (r Region) TextCenter(y int, s string, st terminal.Style) {
	r.Text((r.W-DisplayWidth(s))/2, y, s, st)
}

// Width returns region width
func (r Region) Width() int {
	return r.W
}

// Height returns region height
func (r Region) Height() int {
	return r.H
}

// Bounds returns absolute position and dimensions
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}
