package api

import (
	"github.com/gompdf/tableprint/internal/layout"
	"github.com/gompdf/tableprint/internal/model"
	"github.com/gompdf/tableprint/internal/parser/html"
)

// Tabular is the read-only table model accepted by PrintTable
type Tabular = model.Tabular

// Table is an in-memory Tabular
type Table = model.Table

// LayoutError is returned when a table cannot be laid out
type LayoutError = layout.Error

// ErrorCode identifies the reason of a LayoutError
type ErrorCode = layout.Code

var (
	// NewTable builds a Table from headers and rows
	NewTable = model.NewTable
	// FromRows reads an executed query into a Table
	FromRows = model.FromRows
	// CodeOf returns the layout code carried by an error
	CodeOf = layout.CodeOf
)

// Layout failures, usable with errors.Is
var (
	ErrTargetInvalid         = layout.ErrTargetInvalid
	ErrTargetNotActive       = layout.ErrTargetNotActive
	ErrStretchCountMismatch  = layout.ErrStretchCountMismatch
	ErrHeaderCountMismatch   = layout.ErrHeaderCountMismatch
	ErrMarginsExceedArea     = layout.ErrMarginsExceedArea
	ErrNegativeColumnStretch = layout.ErrNegativeColumnStretch
	ErrNoPrintableColumn     = layout.ErrNoPrintableColumn
	ErrInvalidMetrics        = layout.ErrInvalidMetrics
	ErrRaggedRow             = model.ErrRaggedRow
	ErrNoTable               = html.ErrNoTable
)
