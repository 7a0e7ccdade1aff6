package pagination

import (
	"fmt"
	"testing"

	"github.com/gompdf/tableprint/internal/layout"
	"github.com/gompdf/tableprint/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, rows int) *model.Table {
	t.Helper()
	data := make([][]string, rows)
	for i := range data {
		data[i] = []string{fmt.Sprintf("r%d", i), fmt.Sprintf("%d", i*10)}
	}
	table, err := model.NewTable([]string{"name", "value"}, data)
	require.NoError(t, err)
	return table
}

func collect(c *Composer) []Page {
	var pages []Page
	for p := range c.All() {
		pages = append(pages, p)
	}
	return pages
}

// geometry with 10 rows per page: (230 - 30) / 20
func tenPerPage() Geometry {
	return NewGeometry(230, 20, 30)
}

func TestGeometryCheck(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want layout.Code
	}{
		{"fits", tenPerPage(), layout.NoError},
		{"exactly one row", NewGeometry(50, 20, 30), layout.NoError},
		{"no row fits", NewGeometry(49, 20, 30), layout.MarginsExceedArea},
		{"header fills page", NewGeometry(30, 20, 30), layout.MarginsExceedArea},
		{"zero row height", NewGeometry(230, 0, 30), layout.InvalidMetrics},
		{"negative header", NewGeometry(230, 20, -1), layout.InvalidMetrics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.CodeOf(tt.g.Check()))
		})
	}
}

func TestNewComposerRejectsGeometry(t *testing.T) {
	_, err := NewComposer(newTable(t, 3), layout.Columns{10, 10}, NewGeometry(40, 20, 30))
	assert.ErrorIs(t, err, layout.ErrMarginsExceedArea)
}

func TestComposeBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		wantPages []RowRange
	}{
		{"zero rows", 0, []RowRange{{0, 0}}},
		{"one row", 1, []RowRange{{0, 1}}},
		{"exactly one page", 10, []RowRange{{0, 10}}},
		{"one over", 11, []RowRange{{0, 10}, {10, 11}}},
		{"three pages", 25, []RowRange{{0, 10}, {10, 20}, {20, 25}}},
		{"two full pages", 20, []RowRange{{0, 10}, {10, 20}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComposer(newTable(t, tt.rows), layout.Columns{50, 50}, tenPerPage())
			require.NoError(t, err)

			pages := collect(c)
			require.Len(t, pages, len(tt.wantPages))
			assert.Equal(t, len(tt.wantPages), c.PageCount())
			for i, p := range pages {
				assert.Equal(t, i+1, p.Number)
				assert.Equal(t, tt.wantPages[i], p.Rows)
				assert.Equal(t, fmt.Sprintf("Page %d", i+1), p.Title)
				assert.Equal(t, layout.Columns{50, 50}, p.Columns)
				assert.True(t, p.Header)
			}
		})
	}
}

func TestComposeCoversAllRows(t *testing.T) {
	for _, rows := range []int{0, 1, 7, 9, 10, 11, 99, 100, 101, 1000} {
		for _, g := range []Geometry{tenPerPage(), NewGeometry(100, 7.5, 12.25), NewGeometry(51, 20, 30)} {
			c, err := NewComposer(newTable(t, rows), layout.Columns{1, 1}, g)
			require.NoError(t, err)

			next := 0
			for p := range c.All() {
				require.Equal(t, next, p.Rows.Start)
				require.LessOrEqual(t, p.Rows.Len(), c.RowsPerPage())
				if rows > 0 {
					require.False(t, p.Rows.Empty())
				}
				next = p.Rows.End
			}
			assert.Equal(t, rows, next)
		}
	}
}

func TestComposeRestartable(t *testing.T) {
	c, err := NewComposer(newTable(t, 35), layout.Columns{1, 1}, tenPerPage())
	require.NoError(t, err)

	first := collect(c)
	second := collect(c)
	assert.Equal(t, first, second)

	// stopping early leaves no state behind
	for p := range c.All() {
		if p.Number == 2 {
			break
		}
	}
	assert.Equal(t, first, collect(c))
}

func TestComposeNextIsPure(t *testing.T) {
	c, err := NewComposer(newTable(t, 25), layout.Columns{1, 1}, tenPerPage())
	require.NoError(t, err)

	p1 := c.First()
	p2, ok := c.Next(p1)
	require.True(t, ok)
	again, ok := c.Next(p1)
	require.True(t, ok)
	assert.Equal(t, p2, again)

	p3, ok := c.Next(p2)
	require.True(t, ok)
	assert.Equal(t, RowRange{20, 25}, p3.Rows)

	_, ok = c.Next(p3)
	assert.False(t, ok)
}

func TestComposeWithoutRepeatedHeader(t *testing.T) {
	g := tenPerPage()
	g.RepeatHeader = false // continuation pages fit floor(230 / 20) = 11 rows

	c, err := NewComposer(newTable(t, 32), layout.Columns{1, 1}, g)
	require.NoError(t, err)

	pages := collect(c)
	require.Len(t, pages, 3)
	assert.Equal(t, RowRange{0, 10}, pages[0].Rows)
	assert.True(t, pages[0].Header)
	assert.Equal(t, RowRange{10, 21}, pages[1].Rows)
	assert.False(t, pages[1].Header)
	assert.Equal(t, RowRange{21, 32}, pages[2].Rows)
	assert.Equal(t, 3, c.PageCount())
}

func TestComposeTitleTemplate(t *testing.T) {
	g := tenPerPage()
	g.TitleTemplate = "Seite %d"
	c, err := NewComposer(newTable(t, 15), layout.Columns{1, 1}, g)
	require.NoError(t, err)

	pages := collect(c)
	require.Len(t, pages, 2)
	assert.Equal(t, "Seite 2", pages[1].Title)

	g.TitleTemplate = ""
	c, err = NewComposer(newTable(t, 1), layout.Columns{1, 1}, g)
	require.NoError(t, err)
	assert.Equal(t, "Page 1", c.First().Title)

	assert.Equal(t, "Modules", FormatTitle("Modules", 4))
}

func TestFormatTitle(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"Page %d", "Page 3"},
		{"Seite %d", "Seite 3"},
		{"100%", "100%"},
		{"100% done", "100% done"},
		{"Page %d of %d", "Page 3 of %d"},
		{"%s %v %x", "%s %v %x"},
		{"%%d", "%3"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTitle(tt.template, 3))
		})
	}
}

func TestComposerPagesOwnColumns(t *testing.T) {
	columns := layout.Columns{60, 40}
	c, err := NewComposer(newTable(t, 25), columns, tenPerPage())
	require.NoError(t, err)

	columns[0] = 1
	first := c.First()
	assert.Equal(t, layout.Columns{60, 40}, first.Columns)

	first.Columns[0] = 999
	next, ok := c.Next(first)
	require.True(t, ok)
	assert.Equal(t, layout.Columns{60, 40}, next.Columns)
	assert.Equal(t, layout.Columns{60, 40}, c.First().Columns)

	widths := c.Columns()
	widths[1] = 0
	assert.Equal(t, layout.Columns{60, 40}, c.Columns())
}

func TestComposerCells(t *testing.T) {
	c, err := NewComposer(newTable(t, 12), layout.Columns{1, 1}, tenPerPage())
	require.NoError(t, err)

	p, ok := c.Next(c.First())
	require.True(t, ok)
	assert.Equal(t, [][]string{{"r10", "100"}, {"r11", "110"}}, c.Cells(p))

	empty, err := NewComposer(newTable(t, 0), layout.Columns{1, 1}, tenPerPage())
	require.NoError(t, err)
	assert.Empty(t, empty.Cells(empty.First()))
}
