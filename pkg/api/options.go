package api

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrUnknownPageSize is returned for a page size name that is not supported
var ErrUnknownPageSize = errors.New("unknown page size")

// Options represents configuration options for the table printer
type Options struct {
	// Page dimensions in points, before orientation is applied
	PageWidth  float64
	PageHeight float64
	// Page orientation: portrait or landscape
	PageOrientation PageOrientation

	// Page margins
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// TitleTemplate formats the page title; %d is the 1-based page number
	TitleTemplate string
	// Caption is printed in the top margin of every page
	Caption string
	// RepeatHeader prints the header row on every page, not only the first
	RepeatHeader bool

	// Fonts
	FontFamily  string
	FontSize    float64
	HeaderStyle string
	CellPadding float64

	// Resource paths searched for input documents
	ResourcePaths []string

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string

	Logger *zap.Logger
}

// Option is a function that modifies Options
type Option func(*Options)

// PageOrientation represents page orientation
type PageOrientation string

const (
	// PageOrientationPortrait sets the page to portrait orientation
	PageOrientationPortrait PageOrientation = "portrait"
	// PageOrientationLandscape sets the page to landscape orientation
	PageOrientationLandscape PageOrientation = "landscape"
)

// ParseOrientation converts an orientation name to a PageOrientation
func ParseOrientation(name string) (PageOrientation, error) {
	switch PageOrientation(strings.ToLower(strings.TrimSpace(name))) {
	case "", PageOrientationPortrait:
		return PageOrientationPortrait, nil
	case PageOrientationLandscape:
		return PageOrientationLandscape, nil
	default:
		return "", fmt.Errorf("unknown page orientation %q", name)
	}
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		PageWidth:       PageSizeA4Width,
		PageHeight:      PageSizeA4Height,
		PageOrientation: PageOrientationPortrait,

		MarginTop:    40,
		MarginRight:  40,
		MarginBottom: 40,
		MarginLeft:   40,

		TitleTemplate: "Page %d",
		RepeatHeader:  true,

		FontFamily:  "Helvetica",
		FontSize:    10,
		HeaderStyle: "BI",
		CellPadding: 5,

		ResourcePaths: []string{},
	}
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithMargins sets the page margins
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTop = top
		o.MarginRight = right
		o.MarginBottom = bottom
		o.MarginLeft = left
	}
}

// WithPageOrientation sets the page orientation
func WithPageOrientation(orientation PageOrientation) Option {
	return func(o *Options) {
		o.PageOrientation = orientation
	}
}

// WithTitleTemplate sets the page title template
func WithTitleTemplate(template string) Option {
	return func(o *Options) {
		o.TitleTemplate = template
	}
}

// WithCaption sets the caption printed on every page
func WithCaption(caption string) Option {
	return func(o *Options) {
		o.Caption = caption
	}
}

// WithRepeatHeader sets whether the header row is printed on every page
func WithRepeatHeader(repeat bool) Option {
	return func(o *Options) {
		o.RepeatHeader = repeat
	}
}

// WithFont sets the font family and size
func WithFont(family string, size float64) Option {
	return func(o *Options) {
		o.FontFamily = family
		o.FontSize = size
	}
}

// WithHeaderStyle sets the font style of the header row, e.g. "B" or "BI"
func WithHeaderStyle(style string) Option {
	return func(o *Options) {
		o.HeaderStyle = style
	}
}

// WithCellPadding sets the padding around cell text
func WithCellPadding(padding float64) Option {
	return func(o *Options) {
		o.CellPadding = padding
	}
}

// WithResourcePath adds a path to search for input documents
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Standard page sizes in points (1/72 inch)
const (
	// A series
	PageSizeA3Width  = 841.89
	PageSizeA3Height = 1190.55
	PageSizeA4Width  = 595.28
	PageSizeA4Height = 841.89
	PageSizeA5Width  = 419.53
	PageSizeA5Height = 595.28

	// US Letter and Legal
	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
	PageSizeLegalWidth   = 612
	PageSizeLegalHeight  = 1008
)

var pageSizes = map[string][2]float64{
	"a3":     {PageSizeA3Width, PageSizeA3Height},
	"a4":     {PageSizeA4Width, PageSizeA4Height},
	"a5":     {PageSizeA5Width, PageSizeA5Height},
	"letter": {PageSizeLetterWidth, PageSizeLetterHeight},
	"legal":  {PageSizeLegalWidth, PageSizeLegalHeight},
}

// PageSizeByName returns the portrait width and height of a named page size
func PageSizeByName(name string) (width, height float64, err error) {
	size, ok := pageSizes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPageSize, name)
	}
	return size[0], size[1], nil
}

// WithPageSizeName sets a named page size. Unknown names leave the size unchanged.
func WithPageSizeName(name string) Option {
	return func(o *Options) {
		if w, h, err := PageSizeByName(name); err == nil {
			o.PageWidth = w
			o.PageHeight = h
		}
	}
}

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}
