package tui

// Center returns a centered region of the given size within outer
func Center(outer Region, w, h int) Region {
	x := (outer.W - w) / 2
	y := (outer.H - h) / 2
	return outer.Sub(x, y, w, h)
}

// SplitH splits a region into side-by-side columns by ratio.
// Ratios are normalized if they do not sum to 1; the last column
// absorbs rounding remainder so the columns always tile the region
func SplitH(r Region, ratios ...float64) []Region {
	if len(ratios) == 0 {
		return nil
	}

	var sum float64
	for _, ratio := range ratios {
		sum += ratio
	}
	if sum <= 0 {
		sum = 1
	}

	regions := make([]Region, len(ratios))
	x := 0
	remaining := r.W

	for i, ratio := range ratios {
		var w int
		if i == len(ratios)-1 {
			w = remaining
		} else {
			w = int(float64(r.W)*ratio/sum + 0.5)
			if w > remaining {
				w = remaining
			}
		}
		regions[i] = r.Sub(x, 0, w, r.H)
		x += w
		remaining -= w
	}

	return regions
}

// SplitV splits a region into stacked rows by ratio, same rules as SplitH
func SplitV(r Region, ratios ...float64) []Region {
	if len(ratios) == 0 {
		return nil
	}

	var sum float64
	for _, ratio := range ratios {
		sum += ratio
	}
	if sum <= 0 {
		sum = 1
	}

	regions := make([]Region, len(ratios))
	y := 0
	remaining := r.H

	for i, ratio := range ratios {
		var h int
		if i == len(ratios)-1 {
			h = remaining
		} else {
			h = int(float64(r.H)*ratio/sum + 0.5)
			if h > remaining {
				h = remaining
			}
		}
		regions[i] = r.Sub(0, y, r.W, h)
		y += h
		remaining -= h
	}

	return regions
}

// SplitHFixed splits with a fixed left width, rest to the right
func SplitHFixed(r Region, leftW int) (left, right Region) {
	if leftW > r.W {
		leftW = r.W
	}
	if leftW < 0 {
		leftW = 0
	}
	left = r.Sub(0, 0, leftW, r.H)
	right = r.Sub(leftW, 0, r.W-leftW, r.H)
	return
}

// SplitVFixed splits with a fixed top height, rest to the bottom
func SplitVFixed(r Region, topH int) (top, bottom Region) {
	if topH > r.H {
		topH = r.H
	}
	if topH < 0 {
		topH = 0
	}
	top = r.Sub(0, 0, r.W, topH)
	bottom = r.Sub(0, topH, r.W, r.H-topH)
	return
}

// SplitHEqual splits a region into n equal-width columns with gap cells
// between them. Leftover width goes to the leftmost columns one cell each
func SplitHEqual(r Region, n, gap int) []Region {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Region{r}
	}

	availW := r.W - gap*(n-1)
	if availW < n {
		availW = n
	}

	baseW := availW / n
	extra := availW % n

	regions := make([]Region, n)
	x := 0
	for i := 0; i < n; i++ {
		w := baseW
		if i < extra {
			w++
		}
		regions[i] = r.Sub(x, 0, w, r.H)
		x += w + gap
	}
	return regions
}

// SplitVEqual splits a region into n equal-height rows with gap cells
// between them
func SplitVEqual(r Region, n, gap int) []Region {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Region{r}
	}

	availH := r.H - gap*(n-1)
	if availH < n {
		availH = n
	}

	baseH := availH / n
	extra := availH % n

	regions := make([]Region, n)
	y := 0
	for i := 0; i < n; i++ {
		h := baseH
		if i < extra {
			h++
		}
		regions[i] = r.Sub(0, y, r.W, h)
		y += h + gap
	}
	return regions
}
