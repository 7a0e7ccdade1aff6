package layout

import (
	"math"
	"sort"
)

// Columns holds resolved column widths in surface units
type Columns []int

// Sum returns the total width of all columns
func (c Columns) Sum() int {
	sum := 0
	for _, w := range c {
		sum += w
	}
	return sum
}

// Offsets returns the left edge of every column followed by the right
// edge of the last one
func (c Columns) Offsets() []int {
	offsets := make([]int, len(c)+1)
	for i, w := range c {
		offsets[i+1] = offsets[i] + w
	}
	return offsets
}

// Visible reports whether column i has a non-zero width
func (c Columns) Visible(i int) bool {
	return i >= 0 && i < len(c) && c[i] > 0
}

// ResolveColumns distributes usableWidth over the columns in proportion
// to their stretches, rounding with the largest-remainder method so the
// widths add up to usableWidth exactly. Leftover units go to the columns
// with the largest fractional parts, lower index first on ties. Columns
// with a zero stretch always get zero width.
//
// The stretches must already be validated: finite, non-negative, with a
// positive sum.
func ResolveColumns(stretches []float64, usableWidth int) Columns {
	widths := make(Columns, len(stretches))
	largest := 0.0
	for _, s := range stretches {
		largest = max(largest, s)
	}
	if largest <= 0 || math.IsInf(largest, 0) || usableWidth <= 0 {
		return widths
	}

	// Weights are scaled into [0, 1] so the total stays finite for any
	// finite input.
	total := 0.0
	for _, s := range stretches {
		if s > 0 {
			total += s / largest
		}
	}

	type remainder struct {
		index int
		frac  float64
	}
	remainders := make([]remainder, 0, len(stretches))

	assigned := 0
	for i, s := range stretches {
		if s <= 0 {
			continue
		}
		ideal := s / largest / total * float64(usableWidth)
		whole := math.Floor(ideal)
		widths[i] = int(whole)
		assigned += widths[i]
		remainders = append(remainders, remainder{index: i, frac: ideal - whole})
	}

	sort.SliceStable(remainders, func(a, b int) bool {
		if remainders[a].frac != remainders[b].frac {
			return remainders[a].frac > remainders[b].frac
		}
		return remainders[a].index < remainders[b].index
	})

	// Floating point error can leave the deficit outside [0, len); cycling
	// keeps the sum exact either way.
	for deficit := usableWidth - assigned; deficit > 0; {
		for _, r := range remainders {
			if deficit == 0 {
				break
			}
			widths[r.index]++
			deficit--
		}
	}
	for surplus := assigned - usableWidth; surplus > 0; {
		progressed := false
		for i := len(remainders) - 1; i >= 0 && surplus > 0; i-- {
			if idx := remainders[i].index; widths[idx] > 0 {
				widths[idx]--
				surplus--
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	return widths
}
