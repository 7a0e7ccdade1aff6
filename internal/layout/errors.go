package layout

import (
	"errors"
	"fmt"
)

// Code identifies a layout failure. Codes are stable and safe to compare.
type Code int

const (
	NoError Code = iota
	TargetInvalid
	TargetNotActive
	StretchCountMismatch
	HeaderCountMismatch
	MarginsExceedArea
	NegativeColumnStretch
	NoPrintableColumn
	// InvalidMetrics is reported for a non-positive row height or a
	// negative header height
	InvalidMetrics
)

var codeNames = map[Code]string{
	NoError:               "NoError",
	TargetInvalid:         "TargetInvalid",
	TargetNotActive:       "TargetNotActive",
	StretchCountMismatch:  "StretchCountMismatch",
	HeaderCountMismatch:   "HeaderCountMismatch",
	MarginsExceedArea:     "MarginsExceedArea",
	NegativeColumnStretch: "NegativeColumnStretch",
	NoPrintableColumn:     "NoPrintableColumn",
	InvalidMetrics:        "InvalidMetrics",
}

// String returns the identifier of the code
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Error is a layout failure together with the offending data
type Error struct {
	Code Code
	// Column and Stretch are set for NegativeColumnStretch
	Column  int
	Stretch float64
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Code {
	case TargetInvalid:
		return "printer is not valid"
	case TargetNotActive:
		return "painter is not active"
	case StretchCountMismatch:
		return "different column count in model and in column stretch"
	case HeaderCountMismatch:
		return "different column count in model and in headers"
	case MarginsExceedArea:
		return "margins larger than print area"
	case NegativeColumnStretch:
		return fmt.Sprintf("negative column stretch for column: %d (%g)", e.Column, e.Stretch)
	case NoPrintableColumn:
		return "no column to print"
	case InvalidMetrics:
		return "row or header height is not usable"
	}
	return e.Code.String()
}

// Is matches any *Error with the same code, so the sentinels below work
// with errors.Is regardless of the offending data
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrTargetInvalid         = &Error{Code: TargetInvalid}
	ErrTargetNotActive       = &Error{Code: TargetNotActive}
	ErrStretchCountMismatch  = &Error{Code: StretchCountMismatch}
	ErrHeaderCountMismatch   = &Error{Code: HeaderCountMismatch}
	ErrMarginsExceedArea     = &Error{Code: MarginsExceedArea}
	ErrNegativeColumnStretch = &Error{Code: NegativeColumnStretch}
	ErrNoPrintableColumn     = &Error{Code: NoPrintableColumn}
	ErrInvalidMetrics        = &Error{Code: InvalidMetrics}
)

// CodeOf returns the layout code carried by err. A nil error is NoError;
// an error that is not a layout error yields -1.
func CodeOf(err error) Code {
	if err == nil {
		return NoError
	}
	var le *Error
	if errors.As(err, &le) {
		return le.Code
	}
	return -1
}
