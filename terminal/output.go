// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"
	"io"
)

// outputBuffer manages double-buffered terminal output with diffing
type outputBuffer struct {
	front     []Cell
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    Color
	lastBg    Color
	lastAttr  Attr
	lastValid bool
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, 131072), // 128KB buffer
		colorMode: colorMode,
	}
}

// resize updates buffer dimensions
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height

	for i := range o.front {
		o.front[i] = Cell{Rune: 0}
	}
	o.lastValid = false
	o.cursorValid = false
}

// cellEqual compares two cells for equality (standalone for inlining)
// Glyphless cells render identically regardless of foreground, skip it
func cellEqual(a, b Cell) bool {
	if a.Rune != b.Rune || a.Attrs != b.Attrs {
		return false
	}
	if a.Rune == 0 {
		return a.Bg == b.Bg
	}
	return a.Fg == b.Fg && a.Bg == b.Bg
}

// flush writes the back buffer to terminal, diffing against front buffer
// A frame with no cell changes writes nothing at all
func (o *outputBuffer) flush(cells []Cell, width, height int) {
	if width != o.width || height != o.height {
		o.resize(width, height)
		// Screen content is unknown after a size change
		o.writer.Write(csiClear)
	}

	expectedSize := width * height
	if len(cells) < expectedSize {
		return
	}

	w := o.writer
	wrote := w.Buffered() > 0

	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0

		for x < width {
			idx := rowStart + x
			newCell := cells[idx]

			if cellEqual(newCell, o.front[idx]) {
				x++
				continue
			}

			// A dirty continuation cell repaints from its head so the
			// glyph spanning both columns is redrawn whole
			force := false
			if newCell.Rune == 0 && newCell.Attrs&AttrWide != 0 && x > 0 {
				x--
				force = true
			}

			// Position cursor once for this dirty region
			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				// Always use non-destructive cursor movement
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX = x
				o.cursorY = y
				o.cursorValid = true
			}
			wrote = true

			// Write all contiguous dirty cells, emitting style only when changed
			for x < width {
				cidx := rowStart + x
				c := cells[cidx]

				if !force && cellEqual(c, o.front[cidx]) {
					break
				}
				force = false

				o.writeStyleCoalesced(w, c.Fg, c.Bg, c.Attrs)

				r := c.Rune
				if r == 0 {
					r = ' '
				}
				wide := c.Attrs&AttrWide != 0 && c.Rune != 0
				if wide && x == width-1 {
					// No room for the second column, blank the edge
					r = ' '
					wide = false
				}
				if r < 0x80 {
					w.WriteByte(byte(r))
				} else {
					w.WriteRune(r)
				}

				o.front[cidx] = c
				o.cursorX++
				x++
				if wide {
					// Terminal advanced two columns, sync the tail cell
					o.front[cidx+1] = cells[cidx+1]
					o.cursorX++
					x++
				}
			}
		}
	}

	if !wrote {
		return
	}

	w.Write(csiSGR0)
	o.lastValid = false

	w.Flush()
}

// writeStyleCoalesced emits a single combined SGR sequence when style changes
func (o *outputBuffer) writeStyleCoalesced(w *bufio.Writer, fg, bg Color, attr Attr) {
	fgChanged := !o.lastValid || fg != o.lastFg
	bgChanged := !o.lastValid || bg != o.lastBg
	styleAttr := attr & AttrStyle
	lastStyleAttr := o.lastAttr & AttrStyle
	attrChanged := !o.lastValid || styleAttr != lastStyleAttr

	if !fgChanged && !bgChanged && !attrChanged {
		return
	}

	// If attributes changed, must reset first
	if attrChanged {
		w.Write(csi) // \x1b[
		first := true

		// Reset
		w.WriteByte('0')
		first = false

		// Style attributes
		if styleAttr&AttrBold != 0 {
			if !first {
				w.WriteByte(';')
			}
			w.WriteByte('1')
			first = false
		}
		if styleAttr&AttrDim != 0 {
			if !first {
				w.WriteByte(';')
			}
			w.WriteByte('2')
			first = false
		}
		if styleAttr&AttrItalic != 0 {
			if !first {
				w.WriteByte(';')
			}
			w.WriteByte('3')
			first = false
		}
		if styleAttr&AttrUnderline != 0 {
			if !first {
				w.WriteByte(';')
			}
			w.WriteByte('4')
			first = false
		}
		if styleAttr&AttrBlink != 0 {
			if !first {
				w.WriteByte(';')
			}
			w.WriteByte('5')
			first = false
		}
		if styleAttr&AttrReverse != 0 {
			if !first {
				w.WriteByte(';')
			}
			w.WriteByte('7')
			first = false
		}

		// Foreground
		w.WriteByte(';')
		o.writeFgInline(w, fg)

		// Background
		w.WriteByte(';')
		o.writeBgInline(w, bg)

		w.WriteByte('m')
	} else {
		// Only colors changed, emit minimal sequence
		if fgChanged && bgChanged {
			w.Write(csi)
			o.writeFgInline(w, fg)
			w.WriteByte(';')
			o.writeBgInline(w, bg)
			w.WriteByte('m')
		} else if fgChanged {
			o.writeFgFull(w, fg)
		} else if bgChanged {
			o.writeBgFull(w, bg)
		}
	}

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

// writeFgInline writes fg color parameters (no CSI prefix, separator or
// 'm' suffix)
func (o *outputBuffer) writeFgInline(w *bufio.Writer, fg Color) {
	if o.colorMode == ColorMode16 {
		fg = fg.To16()
	}
	switch {
	case fg == ColorDefault:
		w.Write([]byte("39"))
	case fg <= ColorWhite:
		writeInt(w, 29+int(fg)) // 30-37
	case fg <= ColorBrightWhite:
		writeInt(w, 81+int(fg)) // 90-97
	default:
		w.Write([]byte("38;5;"))
		writeInt(w, int(fg.Index256()))
	}
}

// writeBgInline writes bg color parameters (no CSI prefix, separator or
// 'm' suffix)
func (o *outputBuffer) writeBgInline(w *bufio.Writer, bg Color) {
	if o.colorMode == ColorMode16 {
		bg = bg.To16()
	}
	switch {
	case bg == ColorDefault:
		w.Write([]byte("49"))
	case bg <= ColorWhite:
		writeInt(w, 39+int(bg)) // 40-47
	case bg <= ColorBrightWhite:
		writeInt(w, 91+int(bg)) // 100-107
	default:
		w.Write([]byte("48;5;"))
		writeInt(w, int(bg.Index256()))
	}
}

// writeFgFull writes complete fg color sequence
func (o *outputBuffer) writeFgFull(w *bufio.Writer, fg Color) {
	if o.colorMode == ColorMode16 {
		fg = fg.To16()
	}
	switch {
	case fg == ColorDefault:
		w.Write(csiDefaultFg)
	case fg <= ColorWhite:
		w.Write(csi)
		writeInt(w, 29+int(fg))
		w.WriteByte('m')
	case fg <= ColorBrightWhite:
		w.Write(csi)
		writeInt(w, 81+int(fg))
		w.WriteByte('m')
	default:
		w.Write(csiFg256)
		writeInt(w, int(fg.Index256()))
		w.WriteByte('m')
	}
}

// writeBgFull writes complete bg color sequence
func (o *outputBuffer) writeBgFull(w *bufio.Writer, bg Color) {
	if o.colorMode == ColorMode16 {
		bg = bg.To16()
	}
	switch {
	case bg == ColorDefault:
		w.Write(csiDefaultBg)
	case bg <= ColorWhite:
		w.Write(csi)
		writeInt(w, 39+int(bg))
		w.WriteByte('m')
	case bg <= ColorBrightWhite:
		w.Write(csi)
		writeInt(w, 91+int(bg))
		w.WriteByte('m')
	default:
		w.Write(csiBg256)
		writeInt(w, int(bg.Index256()))
		w.WriteByte('m')
	}
}

// forceFullRedraw clears front buffer to force complete redraw
func (o *outputBuffer) forceFullRedraw() {
	for i := range o.front {
		o.front[i] = Cell{Rune: 0}
	}
	o.lastValid = false
	o.cursorValid = false
}

// clear writes a clear screen with specified background
func (o *outputBuffer) clear(bg Color) {
	w := o.writer
	w.Write(csiSGR0)
	o.writeBgFull(w, bg)
	w.Write(csiClear)

	o.lastValid = false
	o.cursorValid = false
	w.Flush()

	for i := range o.front {
		o.front[i] = Cell{Rune: ' ', Bg: bg}
	}
}

// invalidateCursor marks cursor position as unknown
func (o *outputBuffer) invalidateCursor() {
	o.cursorValid = false
}
