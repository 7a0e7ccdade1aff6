package tableprint

import (
	"github.com/gompdf/tableprint/pkg/api"
)

type Printer = api.Printer
type Options = api.Options
type Option = api.Option
type PageOrientation = api.PageOrientation
type Tabular = api.Tabular
type Table = api.Table
type LayoutError = api.LayoutError
type ErrorCode = api.ErrorCode

func New(opts ...Option) *Printer             { return api.New(opts...) }
func NewWithOptions(options Options) *Printer { return api.NewWithOptions(options) }
func DefaultOptions() Options                 { return api.DefaultOptions() }

var (
	NewTable         = api.NewTable
	FromRows         = api.FromRows
	CodeOf           = api.CodeOf
	PageSizeByName   = api.PageSizeByName
	ParseOrientation = api.ParseOrientation
)

var (
	WithPageSize        = api.WithPageSize
	WithPageSizeName    = api.WithPageSizeName
	WithMargins         = api.WithMargins
	WithPageOrientation = api.WithPageOrientation
	WithTitleTemplate   = api.WithTitleTemplate
	WithCaption         = api.WithCaption
	WithRepeatHeader    = api.WithRepeatHeader
	WithFont            = api.WithFont
	WithHeaderStyle     = api.WithHeaderStyle
	WithCellPadding     = api.WithCellPadding
	WithResourcePath    = api.WithResourcePath
	WithTitle           = api.WithTitle
	WithAuthor          = api.WithAuthor
	WithSubject         = api.WithSubject
	WithKeywords        = api.WithKeywords
	WithLogger          = api.WithLogger
	WithPageSizeA4      = api.WithPageSizeA4
	WithPageSizeLetter  = api.WithPageSizeLetter
	WithPageSizeLegal   = api.WithPageSizeLegal
)

var (
	ErrUnknownPageSize       = api.ErrUnknownPageSize
	ErrTargetInvalid         = api.ErrTargetInvalid
	ErrTargetNotActive       = api.ErrTargetNotActive
	ErrStretchCountMismatch  = api.ErrStretchCountMismatch
	ErrHeaderCountMismatch   = api.ErrHeaderCountMismatch
	ErrMarginsExceedArea     = api.ErrMarginsExceedArea
	ErrNegativeColumnStretch = api.ErrNegativeColumnStretch
	ErrNoPrintableColumn     = api.ErrNoPrintableColumn
	ErrInvalidMetrics        = api.ErrInvalidMetrics
	ErrRaggedRow             = api.ErrRaggedRow
	ErrNoTable               = api.ErrNoTable
)

const (
	PageSizeA3Width  = api.PageSizeA3Width
	PageSizeA3Height = api.PageSizeA3Height
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height
	PageSizeA5Width  = api.PageSizeA5Width
	PageSizeA5Height = api.PageSizeA5Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight

	PageOrientationPortrait  = api.PageOrientationPortrait
	PageOrientationLandscape = api.PageOrientationLandscape
)
