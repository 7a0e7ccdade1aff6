package pagination

import (
	"math"

	"github.com/gompdf/tableprint/internal/layout"
)

// DefaultTitleTemplate is used when Geometry.TitleTemplate is empty
const DefaultTitleTemplate = "Page %d"

// Geometry holds the vertical measurements used to break rows into pages.
// Row and header heights come from the rendering surface's font metrics.
type Geometry struct {
	UsableHeight int
	RowHeight    float64
	HeaderHeight float64
	// TitleTemplate receives the page number through a single %d verb
	TitleTemplate string
	// RepeatHeader draws header chrome on every page. When false only the
	// first page has a header and later pages give its space to rows.
	RepeatHeader bool
}

// NewGeometry returns a geometry with the default title template and
// repeated headers
func NewGeometry(usableHeight int, rowHeight, headerHeight float64) Geometry {
	return Geometry{
		UsableHeight:  usableHeight,
		RowHeight:     rowHeight,
		HeaderHeight:  headerHeight,
		TitleTemplate: DefaultTitleTemplate,
		RepeatHeader:  true,
	}
}

// Check reports whether at least one row fits on a page with a header
func (g Geometry) Check() error {
	if g.RowHeight <= 0 || g.HeaderHeight < 0 || math.IsNaN(g.RowHeight) || math.IsNaN(g.HeaderHeight) {
		return &layout.Error{Code: layout.InvalidMetrics}
	}
	if g.rowsFitting(g.HeaderHeight) < 1 {
		return &layout.Error{Code: layout.MarginsExceedArea}
	}
	return nil
}

// RowsPerPage returns how many rows fit on a page that carries a header
func (g Geometry) RowsPerPage() int {
	return max(g.rowsFitting(g.HeaderHeight), 1)
}

// rowsPerContinuationPage returns how many rows fit on pages after the first
func (g Geometry) rowsPerContinuationPage() int {
	if g.RepeatHeader {
		return g.RowsPerPage()
	}
	return max(g.rowsFitting(0), 1)
}

func (g Geometry) rowsFitting(header float64) int {
	body := float64(g.UsableHeight) - header
	if body <= 0 || g.RowHeight <= 0 {
		return 0
	}
	return int(math.Floor(body / g.RowHeight))
}

// PageCount returns the number of pages needed for rows rows
func (g Geometry) PageCount(rows int) int {
	first := g.RowsPerPage()
	if rows <= first {
		return 1
	}
	rest := g.rowsPerContinuationPage()
	return 1 + (rows-first+rest-1)/rest
}
