package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/tableprint/internal/model"
)

const transfers = `<!DOCTYPE html>
<html><body>
<h1>Anerkennungen</h1>
<table>
  <thead><tr><th>Module</th><th>Origin</th><th>ECTS</th></tr></thead>
  <tbody>
    <tr><td>Statistik   I</td><td>Universit&auml;t Wien</td><td>9</td></tr>
    <tr><td>Lineare<br>Algebra</td><td><b>LMU</b> M&uuml;nchen</td><td>6</td></tr>
    <tr><td colspan="2">Praktikum</td><td>12</td></tr>
    <tr><td>Seminar</td></tr>
  </tbody>
</table>
<table><tr><td>a</td><td>b</td></tr><tr><td>1</td><td>2</td></tr></table>
</body></html>`

func TestParse(t *testing.T) {
	table, err := NewParser().ParseString(transfers, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"Module", "Origin", "ECTS"}, model.Headers(table))
	require.Equal(t, 4, table.RowCount())

	assert.Equal(t, "Statistik I", table.Cell(0, 0))
	assert.Equal(t, "Universität Wien", table.Cell(0, 1))
	assert.Equal(t, "Lineare Algebra", table.Cell(1, 0))
	assert.Equal(t, "LMU München", table.Cell(1, 1))
	assert.Equal(t, "Praktikum", table.Cell(2, 0))
	assert.Equal(t, "Praktikum", table.Cell(2, 1))
	assert.Equal(t, "12", table.Cell(2, 2))
	assert.Equal(t, "Seminar", table.Cell(3, 0))
	assert.Equal(t, "", table.Cell(3, 2))
}

func TestParseWithoutHeaderCells(t *testing.T) {
	table, err := NewParser().ParseString(transfers, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, model.Headers(table))
	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, "2", table.Cell(0, 1))
}

func TestParseMissingTable(t *testing.T) {
	_, err := NewParser().ParseString(transfers, 2)
	assert.ErrorIs(t, err, ErrNoTable)

	_, err = NewParser().ParseString("<p>nothing here</p>", 0)
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestParseDropsSurplusCells(t *testing.T) {
	doc := `<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>2</td><td>3</td></tr></table>`
	table, err := NewParser().ParseString(doc, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, table.ColumnCount())
	assert.Equal(t, "2", table.Cell(0, 1))
}

func TestParseStrictRows(t *testing.T) {
	p := &Parser{Pad: false}
	_, err := p.ParseString(transfers, 0)
	assert.ErrorIs(t, err, model.ErrRaggedRow)
}

func TestParseSkipsNestedTables(t *testing.T) {
	doc := `<table>
<tr><th>Outer</th></tr>
<tr><td><table><tr><td>inner</td></tr></table></td></tr>
</table>`
	table, err := NewParser().ParseString(doc, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"Outer"}, model.Headers(table))
	assert.Equal(t, 1, table.RowCount())
	assert.Equal(t, "inner", table.Cell(0, 0))
}

func TestParseTable(t *testing.T) {
	table, err := ParseTable(strings.NewReader(transfers), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, table.ColumnCount())
}

func TestParseEmptyTable(t *testing.T) {
	table, err := NewParser().ParseString("<table></table>", 0)
	require.NoError(t, err)
	assert.Zero(t, table.ColumnCount())
	assert.Zero(t, table.RowCount())
}

func TestParseClampsColspan(t *testing.T) {
	tests := []struct {
		name string
		span string
		want int
	}{
		{"plain", "3", 3},
		{"limit", "1000", 1000},
		{"above limit", "1000000000", 1000},
		{"overflowing int", "99999999999999999999", 1},
		{"zero", "0", 1},
		{"negative", "-4", 1},
		{"garbage", "wide", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<table><tr><td colspan="` + tt.span + `">x</td></tr></table>`
			table, err := NewParser().ParseString(doc, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, table.ColumnCount())
		})
	}
}

func TestParseHugeColspanInBody(t *testing.T) {
	doc := `<table><tr><th>A</th><th>B</th></tr><tr><td colspan="1000000000">x</td></tr></table>`
	table, err := NewParser().ParseString(doc, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, table.ColumnCount())
	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, "x", table.Cell(0, 1))
}
