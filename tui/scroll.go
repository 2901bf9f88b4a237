package tui

import (
	"fmt"

	"github.com/lixenwraith/termkit/terminal"
)

// ScrollState tracks scroll position for a scrollable container
type ScrollState struct {
	Offset    int // First visible item index
	Total     int // Total item count
	Visible   int // Visible item count (viewport height)
	Selection int // Currently selected item, -1 if none
}

// NewScrollState creates initialized scroll state
func NewScrollState(total, visible int) *ScrollState {
	return &ScrollState{
		Total:     total,
		Visible:   visible,
		Selection: -1,
	}
}

// ScrollBy adjusts offset by delta, clamping to valid range
func (s *ScrollState) ScrollBy(delta int) {
	s.Offset += delta
	s.Clamp()
}

// ScrollTo sets offset to a specific position
func (s *ScrollState) ScrollTo(pos int) {
	s.Offset = pos
	s.Clamp()
}

// EnsureVisible adjusts offset to make the item at pos visible
func (s *ScrollState) EnsureVisible(pos int) {
	if pos < s.Offset {
		s.Offset = pos
	} else if pos >= s.Offset+s.Visible {
		s.Offset = pos - s.Visible + 1
	}
	s.Clamp()
}

// Clamp ensures offset is within valid range
func (s *ScrollState) Clamp() {
	s.Offset = ClampScroll(s.Offset, s.Visible, s.Total)
}

// PageUp scrolls up by half the visible height
func (s *ScrollState) PageUp() {
	s.ScrollBy(-PageDelta(s.Visible))
}

// PageDown scrolls down by half the visible height
func (s *ScrollState) PageDown() {
	s.ScrollBy(PageDelta(s.Visible))
}

// SetTotal updates total count and reclamps
func (s *ScrollState) SetTotal(total int) {
	s.Total = total
	s.Clamp()
	if s.Selection >= total {
		s.Selection = total - 1
	}
}

// SetVisible updates visible count and reclamps
func (s *ScrollState) SetVisible(visible int) {
	s.Visible = visible
	s.Clamp()
}

// AtTop returns true if scrolled to top
func (s *ScrollState) AtTop() bool {
	return s.Offset == 0
}

// AtBottom returns true if scrolled to bottom
func (s *ScrollState) AtBottom() bool {
	if s.Total <= s.Visible {
		return true
	}
	return s.Offset >= s.Total-s.Visible
}

// Select sets the selection and ensures it is visible
func (s *ScrollState) Select(idx int) {
	s.Selection = ClampCursor(idx, s.Total)
	s.EnsureVisible(s.Selection)
}

// SelectNext moves the selection down
func (s *ScrollState) SelectNext() {
	if s.Selection < s.Total-1 {
		s.Selection++
		s.EnsureVisible(s.Selection)
	}
}

// SelectPrev moves the selection up
func (s *ScrollState) SelectPrev() {
	if s.Selection > 0 {
		s.Selection--
		s.EnsureVisible(s.Selection)
	}
}

// PageDelta returns the recommended page scroll amount
func PageDelta(visible int) int {
	delta := visible / 2
	if delta < 1 {
		delta = 1
	}
	return delta
}

// ClampScroll ensures a scroll offset is within valid range
func ClampScroll(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}

// ClampCursor ensures a cursor index is within valid range
func ClampCursor(cursor, total int) int {
	if total <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}

// ScrollPercent returns scroll position as a 0-100 percentage
func ScrollPercent(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	pct := (scroll * 100) / maxScroll
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// ScrollBar draws a vertical scrollbar track with a thumb in column x
func (r Region) ScrollBar(x int, offset, visible, total int, st terminal.Style) {
	if x < 0 || x >= r.W || r.H < 1 {
		return
	}

	trackH := r.H
	if total <= visible || trackH < 3 {
		// No scrolling needed or track too small
		for y := 0; y < trackH; y++ {
			r.SetCell(x, y, '│', st)
		}
		return
	}

	thumbH := (visible * trackH) / total
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > trackH {
		thumbH = trackH
	}

	maxScroll := total - visible
	thumbY := (offset * (trackH - thumbH)) / maxScroll
	if thumbY < 0 {
		thumbY = 0
	}
	if thumbY+thumbH > trackH {
		thumbY = trackH - thumbH
	}

	for y := 0; y < trackH; y++ {
		ch := '░'
		if y >= thumbY && y < thumbY+thumbH {
			ch = '█'
		}
		r.SetCell(x, y, ch, st)
	}
}

// ScrollIndicator draws a compact position readout right-aligned on row y:
// "Top", "Bot", or a percentage
func (r Region) ScrollIndicator(y int, offset, visible, total int, st terminal.Style) {
	if y < 0 || y >= r.H {
		return
	}

	var text string
	switch {
	case total <= visible || offset <= 0:
		text = "Top"
	case offset+visible >= total:
		text = "Bot"
	default:
		pct := ScrollPercent(offset, visible, total)
		if pct > 99 {
			pct = 99
		}
		text = fmt.Sprintf("%2d%%", pct)
	}

	r.TextRight(y, text, st)
}
