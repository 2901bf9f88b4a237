package tui

import "github.com/lixenwraith/termkit/terminal"

// BarSection represents one segment of a status bar
type BarSection struct {
	Label      string
	Value      string
	LabelStyle terminal.Style
	ValueStyle terminal.Style
	Priority   int // Higher = survives truncation
}

// BarAlign specifies status bar alignment mode
type BarAlign uint8

const (
	BarAlignLeft  BarAlign = iota // Pack sections from left
	BarAlignRight                 // Pack sections from right
)

// BarOpts configures status bar rendering
type BarOpts struct {
	Separator string         // Between sections, default " │ "
	SepStyle  terminal.Style // Separator styling
	Fill      terminal.Style // Row background
	Align     BarAlign
	Padding   int // Left/right padding, default 1
}

// DefaultBarOpts returns bar options styled by a theme
func DefaultBarOpts(th Theme) BarOpts {
	return BarOpts{
		Separator: " │ ",
		SepStyle:  th.Status(),
		Fill:      th.Status(),
		Padding:   1,
	}
}

// StatusBar renders a horizontal status bar on row y. Sections that do
// not fit are dropped lowest priority first
func (r Region) StatusBar(y int, sections []BarSection, opts BarOpts) {
	if y < 0 || y >= r.H || len(sections) == 0 {
		return
	}

	if opts.Separator == "" {
		opts.Separator = " │ "
	}
	if opts.Padding == 0 {
		opts.Padding = 1
	}

	for x := 0; x < r.W; x++ {
		r.SetCell(x, y, ' ', opts.Fill)
	}

	// Sections render inside the padding and clip at its edges
	inner := r.Sub(opts.Padding, y, r.W-opts.Padding*2, 1)
	sepW := DisplayWidth(opts.Separator)

	widths := make([]int, len(sections))
	totalW := 0
	for i, sec := range sections {
		widths[i] = DisplayWidth(sec.Label) + DisplayWidth(sec.Value)
		totalW += widths[i]
		if i < len(sections)-1 {
			totalW += sepW
		}
	}

	if totalW > inner.W {
		sections, widths = dropSections(sections, widths, sepW, inner.W)
		totalW = 0
		for i, w := range widths {
			totalW += w
			if i < len(widths)-1 {
				totalW += sepW
			}
		}
	}

	x := 0
	if opts.Align == BarAlignRight {
		x = inner.W - totalW
		if x < 0 {
			x = 0
		}
	}

	for i, sec := range sections {
		x += inner.Text(x, 0, sec.Label, overlayStyle(sec.LabelStyle, opts.Fill))
		x += inner.Text(x, 0, sec.Value, overlayStyle(sec.ValueStyle, opts.Fill))
		if i < len(sections)-1 {
			x += inner.Text(x, 0, opts.Separator, overlayStyle(opts.SepStyle, opts.Fill))
		}
	}
}

// overlayStyle fills unset colors of st from the bar fill
func overlayStyle(st, fill terminal.Style) terminal.Style {
	if st.Fg == terminal.ColorDefault {
		st.Fg = fill.Fg
	}
	if st.Bg == terminal.ColorDefault {
		st.Bg = fill.Bg
	}
	return st
}

// dropSections removes lowest priority sections until the rest fit
func dropSections(sections []BarSection, widths []int, sepW, availW int) ([]BarSection, []int) {
	secs := make([]BarSection, len(sections))
	copy(secs, sections)
	ws := make([]int, len(widths))
	copy(ws, widths)

	for {
		total := 0
		for i, w := range ws {
			total += w
			if i < len(ws)-1 {
				total += sepW
			}
		}
		if total <= availW || len(secs) <= 1 {
			break
		}

		minIdx := 0
		minPrio := secs[0].Priority
		for i, sec := range secs {
			if sec.Priority < minPrio {
				minPrio = sec.Priority
				minIdx = i
			}
		}

		secs = append(secs[:minIdx], secs[minIdx+1:]...)
		ws = append(ws[:minIdx], ws[minIdx+1:]...)
	}

	return secs, ws
}
