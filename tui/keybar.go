package tui

import (
	"sort"
	"strconv"

	"github.com/lixenwraith/termkit/input"
	"github.com/lixenwraith/termkit/terminal"
)

// KeyBarOpts configures the function-key bar
type KeyBarOpts struct {
	KeyStyle   terminal.Style // Combo tokens ("1", "10", "CTRL_Q")
	LabelStyle terminal.Style // Action descriptions
}

// DefaultKeyBarOpts returns key bar options styled by a theme
func DefaultKeyBarOpts(th Theme) KeyBarOpts {
	return KeyBarOpts{
		KeyStyle:   th.Key(),
		LabelStyle: th.Label(),
	}
}

// KeyBar renders a function-key bar on row y: each binding occupies an
// equal slot showing its key and description, ordered by Priority then
// registration order. Plain function keys display as their number, so a
// category of F-key bindings reads "1Help  2Menu .. 10Quit"
func (r Region) KeyBar(y int, bindings []input.Binding, opts KeyBarOpts) {
	if y < 0 || y >= r.H || len(bindings) == 0 {
		return
	}

	sorted := make([]input.Binding, len(bindings))
	copy(sorted, bindings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	for x := 0; x < r.W; x++ {
		r.SetCell(x, y, ' ', opts.KeyStyle)
	}

	slotW := r.W / len(sorted)
	if slotW < 2 {
		return
	}

	x := 0
	for _, b := range sorted {
		key := keyLabel(b.Combo)
		keyW := DisplayWidth(key)
		if keyW >= slotW {
			key = Clip(key, slotW-1)
			keyW = DisplayWidth(key)
		}
		label := PadRight(Truncate(b.Description, slotW-keyW-1), slotW-keyW-1)

		x += r.Text(x, y, key, opts.KeyStyle)
		x += r.Text(x, y, label, opts.LabelStyle)
		x++ // Slot gap stays in the key style
	}
}

// keyLabel returns the display form of a combo: bare F-keys show their
// number alone, everything else its canonical token
func keyLabel(c input.Combo) string {
	if c.Mod == terminal.ModNone && c.Key >= terminal.KeyF1 && c.Key <= terminal.KeyF12 {
		return strconv.Itoa(1 + int(c.Key-terminal.KeyF1))
	}
	return c.Token()
}
