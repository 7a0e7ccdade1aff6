package model

import (
	"errors"
	"fmt"
)

// ErrRaggedRow is returned when a row does not have one cell per column
var ErrRaggedRow = errors.New("row length differs from column count")

// Tabular is a read-only view of a table: rows of fixed-arity text cells
// under named columns. The column count must stay constant while a print
// job runs over it.
type Tabular interface {
	RowCount() int
	ColumnCount() int
	Header(col int) string
	Cell(row, col int) string
}

// Table is an in-memory Tabular
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table from headers and rows. Every row must have
// exactly len(headers) cells. The slices are copied.
func NewTable(headers []string, rows [][]string) (*Table, error) {
	t := &Table{
		headers: append([]string(nil), headers...),
		rows:    make([][]string, 0, len(rows)),
	}
	for i, row := range rows {
		if err := t.Append(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}

// Append adds a row to the end of the table
func (t *Table) Append(row []string) error {
	if len(row) != len(t.headers) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRaggedRow, len(row), len(t.headers))
	}
	t.rows = append(t.rows, append([]string(nil), row...))
	return nil
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.headers)
}

// Header returns the header of column col, or "" when out of range
func (t *Table) Header(col int) string {
	if col < 0 || col >= len(t.headers) {
		return ""
	}
	return t.headers[col]
}

// Cell returns the text at (row, col), or "" when out of range
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.headers) {
		return ""
	}
	return t.rows[row][col]
}

// Headers returns a copy of all column headers of m
func Headers(m Tabular) []string {
	headers := make([]string, m.ColumnCount())
	for i := range headers {
		headers[i] = m.Header(i)
	}
	return headers
}
