package tui

import (
	"strings"
	"testing"

	"github.com/lixenwraith/termkit/screen"
	"github.com/lixenwraith/termkit/terminal"
)

// fakeTerm satisfies terminal.Terminal through embedding; only the methods
// the widgets reach are implemented
type fakeTerm struct {
	terminal.Terminal
	width, height int
}

func (f *fakeTerm) Size() (int, int) { return f.width, f.height }

func newTestRegion(w, h int) Region {
	return NewRegion(screen.New(&fakeTerm{width: w, height: h}))
}

// rowString renders a row of the region as text, blank cells as spaces.
// Wide-rune tail cells are skipped so the string reads like the screen
func rowString(r Region, y int) string {
	var b strings.Builder
	for x := 0; x < r.W; x++ {
		c := r.Get(x, y)
		if c.Rune == 0 {
			if c.Attrs&terminal.AttrWide == 0 {
				b.WriteByte(' ')
			}
			continue
		}
		b.WriteRune(c.Rune)
	}
	return b.String()
}

func TestNewRegionCoversBuffer(t *testing.T) {
	r := newTestRegion(12, 5)
	if r.X != 0 || r.Y != 0 || r.W != 12 || r.H != 5 {
		t.Fatalf("region = %+v, want 0,0 12x5", r)
	}
	if r.Width() != 12 || r.Height() != 5 {
		t.Errorf("Width/Height = %d,%d", r.Width(), r.Height())
	}
}

func TestSubClipsToParent(t *testing.T) {
	r := newTestRegion(10, 5)

	tests := []struct {
		name       string
		x, y, w, h int
		wantX      int
		wantY      int
		wantW      int
		wantH      int
	}{
		{"Inside", 2, 1, 4, 3, 2, 1, 4, 3},
		{"NegativeOrigin", -2, -1, 6, 4, 0, 0, 4, 3},
		{"OverflowsRight", 8, 0, 5, 2, 8, 0, 2, 2},
		{"OverflowsBottom", 0, 4, 3, 9, 0, 4, 3, 1},
		{"FullyOutside", 20, 20, 3, 3, 20, 20, 0, 0},
		{"NegativeSize", 2, 2, -1, -1, 2, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := r.Sub(tt.x, tt.y, tt.w, tt.h)
			if sub.X != tt.wantX || sub.Y != tt.wantY || sub.W != tt.wantW || sub.H != tt.wantH {
				t.Errorf("Sub(%d,%d,%d,%d) = %d,%d %dx%d, want %d,%d %dx%d",
					tt.x, tt.y, tt.w, tt.h,
					sub.X, sub.Y, sub.W, sub.H,
					tt.wantX, tt.wantY, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSubNestedComposesOffsets(t *testing.T) {
	r := newTestRegion(10, 5)
	sub := r.Sub(2, 1, 6, 3).Sub(1, 1, 100, 100)
	if sub.X != 3 || sub.Y != 2 || sub.W != 5 || sub.H != 2 {
		t.Fatalf("nested sub = %d,%d %dx%d, want 3,2 5x2", sub.X, sub.Y, sub.W, sub.H)
	}
}

func TestInset(t *testing.T) {
	r := newTestRegion(10, 5)
	in := r.Inset(1)
	if in.X != 1 || in.Y != 1 || in.W != 8 || in.H != 3 {
		t.Fatalf("inset = %d,%d %dx%d, want 1,1 8x3", in.X, in.Y, in.W, in.H)
	}
	if empty := r.Inset(3); empty.W != 4 || empty.H != 0 {
		t.Errorf("over-inset = %dx%d, want 4x0", empty.W, empty.H)
	}
}

func TestTextWritesThroughOffset(t *testing.T) {
	r := newTestRegion(10, 3)
	sub := r.Sub(2, 1, 6, 2)

	n := sub.Text(1, 0, "hi", terminal.Style{Fg: terminal.ColorRed})
	if n != 2 {
		t.Fatalf("columns = %d, want 2", n)
	}
	if c := r.Get(3, 1); c.Rune != 'h' || c.Fg != terminal.ColorRed {
		t.Errorf("cell (3,1) = %+v", c)
	}
	if c := r.Get(4, 1); c.Rune != 'i' {
		t.Errorf("cell (4,1) = %+v", c)
	}
}

func TestTextClipsAtRightEdge(t *testing.T) {
	r := newTestRegion(10, 1)
	n := r.Text(8, 0, "hello", terminal.Style{})
	if n != 2 {
		t.Fatalf("columns = %d, want 2", n)
	}
	if got := rowString(r, 0); got != "        he" {
		t.Errorf("row = %q", got)
	}
}

func TestTextNegativeXCutsLeft(t *testing.T) {
	r := newTestRegion(10, 1)
	n := r.Text(-2, 0, "hello", terminal.Style{})
	if n != 3 {
		t.Fatalf("columns = %d, want 3", n)
	}
	if got := rowString(r, 0); got != "llo       " {
		t.Errorf("row = %q", got)
	}
}

func TestTextWideRuneStraddlesLeftEdge(t *testing.T) {
	r := newTestRegion(10, 1)
	r.Text(-1, 0, "世x", terminal.Style{})
	if c := r.Get(0, 0); c.Rune != ' ' {
		t.Errorf("cell (0,0) = %+v, want blank for the cut half", c)
	}
	if c := r.Get(1, 0); c.Rune != 'x' {
		t.Errorf("cell (1,0) = %+v", c)
	}
}

func TestTextOutsideRows(t *testing.T) {
	r := newTestRegion(5, 2)
	if n := r.Text(0, -1, "no", terminal.Style{}); n != 0 {
		t.Errorf("row -1 wrote %d columns", n)
	}
	if n := r.Text(0, 2, "no", terminal.Style{}); n != 0 {
		t.Errorf("row 2 wrote %d columns", n)
	}
}

func TestTextRightAndCenter(t *testing.T) {
	r := newTestRegion(10, 2)
	r.TextRight(0, "ab", terminal.Style{})
	r.TextCenter(1, "mid", terminal.Style{})

	if got := rowString(r, 0); got != "        ab" {
		t.Errorf("right row = %q", got)
	}
	if got := rowString(r, 1); got != "   mid    " {
		t.Errorf("center row = %q", got)
	}
}

func TestSetCellAndGetBounds(t *testing.T) {
	r := newTestRegion(4, 2)
	r.SetCell(1, 1, 'x', terminal.Style{Fg: terminal.ColorGreen})
	r.SetCell(-1, 0, 'n', terminal.Style{})
	r.SetCell(4, 0, 'n', terminal.Style{})
	r.SetCell(0, 2, 'n', terminal.Style{})

	if c := r.Get(1, 1); c.Rune != 'x' || c.Fg != terminal.ColorGreen {
		t.Errorf("cell (1,1) = %+v", c)
	}
	if c := r.Get(-1, 0); c != (terminal.Cell{}) {
		t.Errorf("out of bounds Get = %+v, want zero", c)
	}
	if got := rowString(r, 0); got != "    " {
		t.Errorf("row 0 = %q, want untouched", got)
	}
}

func TestFillAndClear(t *testing.T) {
	r := newTestRegion(6, 2)
	st := terminal.Style{Fg: terminal.ColorBlack, Bg: terminal.ColorCyan}

	sub := r.Sub(1, 0, 4, 2)
	sub.Fill('.', st)
	if c := r.Get(1, 0); c.Rune != '.' || c.Bg != terminal.ColorCyan {
		t.Errorf("filled cell = %+v", c)
	}
	if c := r.Get(0, 0); c.Rune != 0 {
		t.Errorf("cell left of fill = %+v, want untouched", c)
	}

	sub.Clear(st)
	if c := r.Get(1, 0); c.Rune != 0 || c.Bg != terminal.ColorCyan {
		t.Errorf("cleared cell = %+v", c)
	}
}

func TestZeroRegionSafe(t *testing.T) {
	var r Region
	r.SetCell(0, 0, 'x', terminal.Style{})
	r.Fill('x', terminal.Style{})
	r.Clear(terminal.Style{})
	if n := r.Text(0, 0, "x", terminal.Style{}); n != 0 {
		t.Errorf("zero region Text = %d, want 0", n)
	}
	if c := r.Get(0, 0); c != (terminal.Cell{}) {
		t.Errorf("zero region Get = %+v, want zero", c)
	}
}
