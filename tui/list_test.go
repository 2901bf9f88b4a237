package tui

import (
	"testing"

	"github.com/lixenwraith/termkit/terminal"
)

var listOpts = ListOpts{
	Base:   terminal.Style{Fg: terminal.ColorWhite, Bg: terminal.ColorBlue},
	Cursor: terminal.Style{Fg: terminal.ColorBlack, Bg: terminal.ColorCyan},
}

func listItems(names ...string) []ListItem {
	items := make([]ListItem, len(names))
	for i, n := range names {
		items[i] = ListItem{Text: n}
	}
	return items
}

func TestListRendersVisibleRows(t *testing.T) {
	r := newTestRegion(10, 2)
	items := listItems("alpha", "beta", "gamma", "delta")

	n := r.List(items, -1, 0, listOpts)
	if n != 2 {
		t.Fatalf("rendered = %d, want 2", n)
	}
	if got := rowString(r, 0); got != "alpha     " {
		t.Errorf("row 0 = %q", got)
	}
	if got := rowString(r, 1); got != "beta      " {
		t.Errorf("row 1 = %q", got)
	}
}

func TestListScrollOffset(t *testing.T) {
	r := newTestRegion(10, 2)
	items := listItems("alpha", "beta", "gamma", "delta")

	r.List(items, -1, 2, listOpts)
	if got := rowString(r, 0); got != "gamma     " {
		t.Errorf("row 0 = %q", got)
	}
	if got := rowString(r, 1); got != "delta     " {
		t.Errorf("row 1 = %q", got)
	}
}

func TestListScrollClamped(t *testing.T) {
	r := newTestRegion(10, 2)
	items := listItems("alpha", "beta", "gamma", "delta")

	// Offset past the end clamps so the last page stays full
	n := r.List(items, -1, 99, listOpts)
	if n != 2 {
		t.Fatalf("rendered = %d, want 2", n)
	}
	if got := rowString(r, 0); got != "gamma     " {
		t.Errorf("row 0 = %q", got)
	}
}

func TestListCursorRow(t *testing.T) {
	r := newTestRegion(10, 3)
	items := listItems("alpha", "beta", "gamma")

	r.List(items, 1, 0, listOpts)

	if c := r.Get(0, 1); c.Bg != terminal.ColorCyan || c.Fg != terminal.ColorBlack {
		t.Errorf("cursor text cell = %+v", c)
	}
	// The bar runs the full width, not just under the text
	if c := r.Get(9, 1); c.Bg != terminal.ColorCyan {
		t.Errorf("cursor row end = %+v, want bar background", c)
	}
	if c := r.Get(0, 0); c.Bg != terminal.ColorBlue {
		t.Errorf("plain row = %+v", c)
	}
}

func TestListItemStyleOverlay(t *testing.T) {
	r := newTestRegion(10, 1)
	items := []ListItem{
		{Text: "dir", Style: terminal.Style{Fg: terminal.ColorBrightWhite, Attrs: terminal.AttrBold}},
	}

	r.List(items, -1, 0, listOpts)

	c := r.Get(0, 0)
	if c.Fg != terminal.ColorBrightWhite || c.Attrs&terminal.AttrBold == 0 {
		t.Errorf("item cell = %+v, want explicit fg and bold", c)
	}
	if c.Bg != terminal.ColorBlue {
		t.Errorf("item bg = %v, want inherited row background", c.Bg)
	}
}

func TestListTruncatesLongText(t *testing.T) {
	r := newTestRegion(6, 1)
	r.List(listItems("longertext"), -1, 0, listOpts)

	if got := rowString(r, 0); got != "longe…" {
		t.Errorf("row = %q", got)
	}
}

func TestListEmpty(t *testing.T) {
	r := newTestRegion(10, 2)
	if n := r.List(nil, 0, 0, listOpts); n != 0 {
		t.Errorf("rendered = %d, want 0", n)
	}
}

func TestDefaultListOpts(t *testing.T) {
	opts := DefaultListOpts(DefaultTheme)
	if opts.Base != DefaultTheme.Base() || opts.Cursor != DefaultTheme.Cursor() {
		t.Errorf("opts = %+v", opts)
	}
}
