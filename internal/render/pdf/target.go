package pdf

import (
	"errors"
	"math"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gompdf/tableprint/internal/layout"
)

// ErrDocument is returned when the underlying document is in an error state
var ErrDocument = errors.New("pdf document is not usable")

// Target adapts an fpdf document to layout.Target. The document is owned
// by the caller; Target only tracks whether drawing has been started.
type Target struct {
	doc    *fpdf.Fpdf
	active bool
}

// NewTarget wraps doc. The document must use points as its unit.
func NewTarget(doc *fpdf.Fpdf) *Target {
	return &Target{doc: doc}
}

// Begin starts accepting draw operations
func (t *Target) Begin() error {
	if !t.Valid() {
		if t.doc != nil && t.doc.Err() {
			return errors.Join(ErrDocument, t.doc.Error())
		}
		return ErrDocument
	}
	t.doc.SetAutoPageBreak(false, 0)
	t.active = true
	return nil
}

// End stops accepting draw operations
func (t *Target) End() {
	t.active = false
}

// Valid reports whether the document is error free and has a usable page size
func (t *Target) Valid() bool {
	if t == nil || t.doc == nil || !t.doc.Ok() {
		return false
	}
	w, h := t.doc.GetPageSize()
	return w > 0 && h > 0
}

// Active reports whether Begin has been called without a matching End
func (t *Target) Active() bool {
	return t.Valid() && t.active
}

// PageSize returns the page size rounded down to whole points
func (t *Target) PageSize() layout.Size {
	w, h := t.doc.GetPageSize()
	return layout.Size{Width: int(math.Floor(w)), Height: int(math.Floor(h))}
}

// Document returns the wrapped document
func (t *Target) Document() *fpdf.Fpdf {
	return t.doc
}
