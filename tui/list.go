package tui

import "github.com/lixenwraith/termkit/terminal"

// ListItem represents a single row in a scrollable list
type ListItem struct {
	Text  string
	Style terminal.Style // Unset colors inherit from the row style
}

// ListOpts configures list rendering
type ListOpts struct {
	Base   terminal.Style // Plain rows
	Cursor terminal.Style // Row under the cursor
}

// DefaultListOpts returns list options styled by a theme
func DefaultListOpts(th Theme) ListOpts {
	return ListOpts{
		Base:   th.Base(),
		Cursor: th.Cursor(),
	}
}

// List renders items into the region starting at scroll offset, one row
// per line, and returns the number of rows rendered. The cursor row is
// repainted edge to edge so the bar covers the full width
func (r Region) List(items []ListItem, cursor, scroll int, opts ListOpts) int {
	if r.H < 1 || len(items) == 0 {
		return 0
	}
	scroll = ClampScroll(scroll, r.H, len(items))

	rendered := 0
	for y := 0; y < r.H; y++ {
		idx := scroll + y
		if idx >= len(items) {
			break
		}

		item := items[idx]
		base := opts.Base
		if idx == cursor {
			base = opts.Cursor
		}

		for x := 0; x < r.W; x++ {
			r.SetCell(x, y, ' ', base)
		}
		r.Text(0, y, Truncate(item.Text, r.W), overlayStyle(item.Style, base))

		rendered++
	}

	return rendered
}
