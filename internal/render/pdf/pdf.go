package pdf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"codeberg.org/go-pdf/fpdf"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/gompdf/tableprint/internal/layout"
	"github.com/gompdf/tableprint/internal/model"
	"github.com/gompdf/tableprint/internal/pagination"
	"github.com/gompdf/tableprint/internal/printjob"
)

const lineSpread = 1.2

// Font describes a core PDF font
type Font struct {
	Family string
	Style  string
	Size   float64
}

// Padding is the space between a cell's border and its text
type Padding struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Color is an RGB color
type Color struct {
	R, G, B int
}

// Renderer draws laid out pages onto a Target
type Renderer struct {
	// HeaderFont and ContentFont are used for the header row and body rows
	HeaderFont  Font
	ContentFont Font
	HeaderColor Color
	TextColor   Color
	// GridColor and GridDash style the table lines. An empty dash draws solid lines.
	GridColor Color
	GridDash  []float64
	GridWidth float64
	Padding   Padding
	// Caption is printed in the top margin of every page
	Caption string

	target  *Target
	model   model.Tabular
	margins layout.Margins
	headers []string
	encoder *encoding.Encoder
	logger  *zap.Logger
}

// NewRenderer creates a renderer for m on target. Headers and margins come
// from cfg so the drawing matches the validated layout.
func NewRenderer(target *Target, m model.Tabular, cfg layout.Config) *Renderer {
	return &Renderer{
		HeaderFont:  Font{Family: "Helvetica", Style: "BI", Size: 10},
		ContentFont: Font{Family: "Helvetica", Size: 10},
		GridColor:   Color{128, 128, 128},
		GridDash:    []float64{3, 2},
		GridWidth:   0.5,
		Padding:     Padding{Top: 5, Bottom: 5, Left: 5, Right: 5},
		target:      target,
		model:       m,
		margins:     cfg.Margins,
		headers:     cfg.Headers,
		encoder:     encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()),
		logger:      zap.NewNop(),
	}
}

// SetLogger sets the logger used for debug output
func (r *Renderer) SetLogger(logger *zap.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Metrics returns the row and header heights for the configured fonts
func (r *Renderer) Metrics() printjob.Metrics {
	return printjob.Metrics{
		RowHeight:    r.lineHeight(r.ContentFont) + r.Padding.Top + r.Padding.Bottom,
		HeaderHeight: r.lineHeight(r.HeaderFont) + r.Padding.Top + r.Padding.Bottom,
	}
}

func (r *Renderer) lineHeight(f Font) float64 {
	doc := r.target.Document()
	doc.SetFont(f.Family, f.Style, f.Size)
	_, size := doc.GetFontSize()
	return size * lineSpread
}

// DrawPage adds a page to the document and draws the caption, the table
// slice belonging to p, and the page title in the bottom margin. It is
// meant to be used as a printjob.EmitFunc.
func (r *Renderer) DrawPage(p pagination.Page) error {
	doc := r.target.Document()
	if !r.target.Active() {
		return fmt.Errorf("%w: target is not active", ErrDocument)
	}

	doc.AddPage()
	_, pageHeight := doc.GetPageSize()
	left := float64(r.margins.Left)
	top := float64(r.margins.Top)
	offsets := p.Columns.Offsets()
	metrics := r.Metrics()

	if r.Caption != "" {
		r.setFont(r.ContentFont)
		doc.Text(left, top/2, r.encode(r.Caption))
	}

	y := top
	r.hline(left, y, p.Columns)

	if p.Header {
		r.setFont(r.HeaderFont)
		r.setTextColor(r.HeaderColor)
		for col := range p.Columns {
			r.cell(left, y, offsets, p.Columns, col, metrics.HeaderHeight, r.header(col))
		}
		y += metrics.HeaderHeight
		r.hline(left, y, p.Columns)
	}

	r.setFont(r.ContentFont)
	r.setTextColor(r.TextColor)
	for row := p.Rows.Start; row < p.Rows.End; row++ {
		for col := range p.Columns {
			r.cell(left, y, offsets, p.Columns, col, metrics.RowHeight, r.model.Cell(row, col))
		}
		y += metrics.RowHeight
		r.hline(left, y, p.Columns)
	}

	r.vlines(left, top, y, offsets)

	r.setFont(r.ContentFont)
	doc.Text(left, pageHeight-float64(r.margins.Bottom)/2, r.encode(p.Title))

	r.logger.Debug("page drawn",
		zap.Int("page", p.Number),
		zap.Int("first_row", p.Rows.Start),
		zap.Int("rows", p.Rows.Len()),
	)

	if !doc.Ok() {
		return fmt.Errorf("failed to draw page %d: %w", p.Number, doc.Error())
	}
	return nil
}

func (r *Renderer) header(col int) string {
	if col < len(r.headers) {
		return r.headers[col]
	}
	return r.model.Header(col)
}

// cell draws text clipped to its column. Collapsed columns are skipped.
func (r *Renderer) cell(left, y float64, offsets []int, cols layout.Columns, col int, height float64, text string) {
	if !cols.Visible(col) {
		return
	}
	doc := r.target.Document()
	width := float64(cols[col]) - r.Padding.Left - r.Padding.Right
	if width <= 0 {
		return
	}
	text = r.fit(strings.TrimSpace(text), width)
	if text == "" {
		return
	}
	doc.SetXY(left+float64(offsets[col])+r.Padding.Left, y+r.Padding.Top)
	doc.CellFormat(width, height-r.Padding.Top-r.Padding.Bottom, text, "", 0, "LM", false, 0, "")
}

// fit encodes text and shortens it with an ellipsis until it fits width
func (r *Renderer) fit(text string, width float64) string {
	doc := r.target.Document()
	encoded := r.encode(text)
	if doc.GetStringWidth(encoded) <= width {
		return encoded
	}
	const ellipsis = "..."
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := r.encode(string(runes[:n])) + ellipsis
		if doc.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}

func (r *Renderer) hline(left, y float64, cols layout.Columns) {
	doc := r.target.Document()
	r.setPen()
	doc.Line(left, y, left+float64(cols.Sum()), y)
	r.resetPen()
}

func (r *Renderer) vlines(left, top, bottom float64, offsets []int) {
	doc := r.target.Document()
	r.setPen()
	for i, off := range offsets {
		if i > 0 && off == offsets[i-1] {
			continue
		}
		x := left + float64(off)
		doc.Line(x, top, x, bottom)
	}
	r.resetPen()
}

func (r *Renderer) setPen() {
	doc := r.target.Document()
	doc.SetDrawColor(r.GridColor.R, r.GridColor.G, r.GridColor.B)
	doc.SetLineWidth(r.GridWidth)
	if len(r.GridDash) > 0 {
		doc.SetDashPattern(r.GridDash, 0)
	}
}

func (r *Renderer) resetPen() {
	if len(r.GridDash) > 0 {
		r.target.Document().SetDashPattern([]float64{}, 0)
	}
}

func (r *Renderer) setFont(f Font) {
	r.target.Document().SetFont(f.Family, f.Style, f.Size)
}

func (r *Renderer) setTextColor(c Color) {
	r.target.Document().SetTextColor(c.R, c.G, c.B)
}

// encode converts UTF-8 text to the cp1252 encoding used by the core
// fonts. Characters outside cp1252 are replaced.
func (r *Renderer) encode(text string) string {
	if isASCII(text) {
		return text
	}
	out, err := r.encoder.String(text)
	if err != nil {
		return text
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// FontFamily maps common family names to the core PDF fonts
func FontFamily(name string) string {
	first := strings.Split(name, ",")[0]
	first = strings.TrimSpace(strings.Trim(first, "'\""))
	switch strings.ToLower(first) {
	case "times", "times new roman", "serif":
		return "Times"
	case "courier", "courier new", "monospace":
		return "Courier"
	default:
		return "Helvetica"
	}
}

// NewDocument creates an fpdf document in points. size is already
// oriented: a landscape page is passed with its width larger than its height.
func NewDocument(size layout.Size) *fpdf.Fpdf {
	return fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: float64(size.Width), Ht: float64(size.Height)},
	})
}
