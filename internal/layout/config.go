package layout

import "github.com/gompdf/tableprint/internal/model"

// Margins represents page margins in surface units
type Margins struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Size represents the printable area of a page in surface units
type Size struct {
	Width  int
	Height int
}

// Target is the output surface a table is printed on. Drawing itself is
// done by the caller; layout only asks whether the surface can be used.
type Target interface {
	// Valid reports whether the target is in a usable, selectable state
	Valid() bool
	// Active reports whether the target currently accepts draw operations
	Active() bool
}

// Config describes how a table is laid out on pages
type Config struct {
	// Headers holds one header text per model column
	Headers []string
	// Stretches holds one relative width weight per model column.
	// A zero weight collapses the column.
	Stretches []float64
	Margins   Margins
	PageSize  Size
}

// UsableWidth returns the page width minus the left and right margins
func (c Config) UsableWidth() int {
	return c.PageSize.Width - c.Margins.Left - c.Margins.Right
}

// UsableHeight returns the page height minus the top and bottom margins
func (c Config) UsableHeight() int {
	return c.PageSize.Height - c.Margins.Top - c.Margins.Bottom
}

// HeadersOf returns the headers reported by the model, for configs that
// print the model's own column names
func HeadersOf(m model.Tabular) []string {
	return model.Headers(m)
}

// UniformStretches returns n equal stretch weights
func UniformStretches(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 1
	}
	return s
}
