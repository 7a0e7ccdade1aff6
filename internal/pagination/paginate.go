package pagination

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/gompdf/tableprint/internal/layout"
	"github.com/gompdf/tableprint/internal/model"
)

// RowRange is a half-open range [Start, End) of model row indices
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range
func (r RowRange) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range holds no rows
func (r RowRange) Empty() bool {
	return r.End <= r.Start
}

// Page represents a single page of a printed table
type Page struct {
	Number  int
	Title   string
	Rows    RowRange
	Columns layout.Columns
	// Header is true when header chrome is drawn on this page
	Header bool
}

// Composer breaks a model's rows into pages. It holds only immutable
// inputs, so every sequence it hands out starts again from page 1.
type Composer struct {
	model    model.Tabular
	columns  layout.Columns
	geometry Geometry
	rows     int
}

// NewComposer creates a composer after checking that at least one row
// fits on a page
func NewComposer(m model.Tabular, columns layout.Columns, g Geometry) (*Composer, error) {
	if err := g.Check(); err != nil {
		return nil, err
	}
	if g.TitleTemplate == "" {
		g.TitleTemplate = DefaultTitleTemplate
	}
	return &Composer{
		model:    m,
		columns:  slices.Clone(columns),
		geometry: g,
		rows:     m.RowCount(),
	}, nil
}

// Columns returns a copy of the resolved column widths
func (c *Composer) Columns() layout.Columns {
	return slices.Clone(c.columns)
}

// RowsPerPage returns the number of rows on a page with header chrome
func (c *Composer) RowsPerPage() int {
	return c.geometry.RowsPerPage()
}

// PageCount returns the number of pages the model will produce
func (c *Composer) PageCount() int {
	return c.geometry.PageCount(c.rows)
}

// First returns the first page. A model without rows still yields one
// page so the header and title are printed.
func (c *Composer) First() Page {
	return c.page(1, 0, c.geometry.RowsPerPage(), true)
}

// Next returns the page following prev, derived only from prev's number
// and end index. The second result is false after the last page.
func (c *Composer) Next(prev Page) (Page, bool) {
	if prev.Rows.End >= c.rows {
		return Page{}, false
	}
	return c.page(prev.Number+1, prev.Rows.End, c.geometry.rowsPerContinuationPage(), c.geometry.RepeatHeader), true
}

// All returns the pages in order. Iteration can stop at any point.
func (c *Composer) All() iter.Seq[Page] {
	return func(yield func(Page) bool) {
		for p, ok := c.First(), true; ok; p, ok = c.Next(p) {
			if !yield(p) {
				return
			}
		}
	}
}

// Cells returns the cell texts of the page's rows, one slice per row
func (c *Composer) Cells(p Page) [][]string {
	cells := make([][]string, 0, p.Rows.Len())
	for row := p.Rows.Start; row < p.Rows.End; row++ {
		line := make([]string, c.model.ColumnCount())
		for col := range line {
			line[col] = c.model.Cell(row, col)
		}
		cells = append(cells, line)
	}
	return cells
}

func (c *Composer) page(number, start, size int, header bool) Page {
	return Page{
		Number:  number,
		Title:   FormatTitle(c.geometry.TitleTemplate, number),
		Rows:    RowRange{Start: start, End: min(start+size, c.rows)},
		Columns: slices.Clone(c.columns),
		Header:  header,
	}
}

// FormatTitle replaces the first %d in template with the page number. Any
// other text, including further % signs, is kept as written.
func FormatTitle(template string, number int) string {
	return strings.Replace(template, "%d", strconv.Itoa(number), 1)
}
