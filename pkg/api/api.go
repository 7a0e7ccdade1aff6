package api

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/gompdf/tableprint/internal/layout"
	"github.com/gompdf/tableprint/internal/model"
	"github.com/gompdf/tableprint/internal/parser/html"
	"github.com/gompdf/tableprint/internal/printjob"
	"github.com/gompdf/tableprint/internal/render/pdf"
	"github.com/gompdf/tableprint/internal/res"
)

// Printer is the main API for printing tables to PDF. A Printer is
// immutable and may be shared between goroutines; every call builds its own
// document.
type Printer struct {
	options Options
	job     *printjob.Job
	logger  *zap.Logger
}

// New creates a new table printer with default options modified by opts
func New(opts ...Option) *Printer {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return NewWithOptions(options)
}

// NewWithOptions creates a new table printer with the specified options
func NewWithOptions(options Options) *Printer {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Printer{
		options: options,
		logger:  logger,
		job: printjob.New(
			printjob.WithLogger(logger),
			printjob.WithTitleTemplate(options.TitleTemplate),
			printjob.WithRepeatHeader(options.RepeatHeader),
		),
	}
}

// Options returns a copy of the printer options
func (p *Printer) Options() Options {
	return p.options
}

// WithOption returns a new printer with the specified option set
func (p *Printer) WithOption(option Option) *Printer {
	options := p.options
	options.ResourcePaths = append([]string(nil), p.options.ResourcePaths...)
	option(&options)
	return NewWithOptions(options)
}

// PageSize returns the oriented page size in whole points
func (p *Printer) PageSize() layout.Size {
	w, h := p.options.PageWidth, p.options.PageHeight
	switch p.options.PageOrientation {
	case PageOrientationLandscape:
		if w < h {
			w, h = h, w
		}
	default:
		if w > h {
			w, h = h, w
		}
	}
	return layout.Size{Width: int(math.Round(w)), Height: int(math.Round(h))}
}

// Margins returns the page margins in whole points
func (p *Printer) Margins() layout.Margins {
	return layout.Margins{
		Top:    int(math.Round(p.options.MarginTop)),
		Bottom: int(math.Round(p.options.MarginBottom)),
		Left:   int(math.Round(p.options.MarginLeft)),
		Right:  int(math.Round(p.options.MarginRight)),
	}
}

// PrintTable lays out m and writes the PDF to w. A nil stretches slice
// gives every column the same weight. Layout failures are returned as
// *layout.Error and nothing is written.
func (p *Printer) PrintTable(m model.Tabular, stretches []float64, w io.Writer) error {
	if stretches == nil {
		stretches = layout.UniformStretches(m.ColumnCount())
	}

	doc := pdf.NewDocument(p.PageSize())
	p.setMetadata(doc)

	target := pdf.NewTarget(doc)
	if err := target.Begin(); err != nil {
		return fmt.Errorf("failed to start document: %w", err)
	}
	defer target.End()

	cfg := layout.Config{
		Headers:   layout.HeadersOf(m),
		Stretches: stretches,
		Margins:   p.Margins(),
		PageSize:  target.PageSize(),
	}
	renderer := p.renderer(target, m, cfg)

	if err := p.job.Run(m, cfg, target, renderer.Metrics(), renderer.DrawPage); err != nil {
		return fmt.Errorf("failed to print table: %w", err)
	}
	target.End()

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	if _, err := io.Copy(w, &buf); err != nil {
		return fmt.Errorf("failed to copy PDF to output: %w", err)
	}

	p.logger.Info("table printed",
		zap.Int("rows", m.RowCount()),
		zap.Int("columns", m.ColumnCount()),
		zap.Int("pages", doc.PageNo()),
	)
	return nil
}

// PrintTableToFile prints m to the file at outputPath. The file is only
// created when the layout succeeds.
func (p *Printer) PrintTableToFile(m model.Tabular, stretches []float64, outputPath string) error {
	var buf bytes.Buffer
	if err := p.PrintTable(m, stretches, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	return nil
}

// PrintHTML prints the index-th table of an HTML document
func (p *Printer) PrintHTML(htmlContent string, index int, stretches []float64, w io.Writer) error {
	table, err := html.ParseTable(strings.NewReader(htmlContent), index)
	if err != nil {
		return fmt.Errorf("failed to read table: %w", err)
	}
	return p.PrintTable(table, stretches, w)
}

// PrintHTMLFile prints the index-th table of the HTML document at ref, which
// may be a file path, a file:// URL or an http(s) URL
func (p *Printer) PrintHTMLFile(ref string, index int, stretches []float64, w io.Writer) error {
	loader := res.NewLoader("")
	for _, path := range p.options.ResourcePaths {
		loader.AddSearchPath(path)
	}
	resource, err := loader.LoadHTML(ref)
	if err != nil {
		return fmt.Errorf("failed to load HTML: %w", err)
	}

	table, err := html.ParseTable(resource.Reader(), index)
	if err != nil {
		return fmt.Errorf("failed to read table from %s: %w", resource.URL, err)
	}
	p.logger.Debug("table loaded",
		zap.String("source", resource.URL),
		zap.Int("index", index),
		zap.Int("rows", table.RowCount()),
	)
	return p.PrintTable(table, stretches, w)
}

func (p *Printer) renderer(target *pdf.Target, m model.Tabular, cfg layout.Config) *pdf.Renderer {
	r := pdf.NewRenderer(target, m, cfg)
	family := pdf.FontFamily(p.options.FontFamily)
	r.ContentFont = pdf.Font{Family: family, Size: p.options.FontSize}
	r.HeaderFont = pdf.Font{Family: family, Style: p.options.HeaderStyle, Size: p.options.FontSize}
	pad := p.options.CellPadding
	r.Padding = pdf.Padding{Top: pad, Bottom: pad, Left: pad, Right: pad}
	r.Caption = p.options.Caption
	r.SetLogger(p.logger)
	return r
}

func (p *Printer) setMetadata(doc *fpdf.Fpdf) {
	doc.SetCreator("tableprint", false)
	if p.options.Title != "" {
		doc.SetTitle(p.options.Title, true)
	}
	if p.options.Author != "" {
		doc.SetAuthor(p.options.Author, true)
	}
	if p.options.Subject != "" {
		doc.SetSubject(p.options.Subject, true)
	}
	if p.options.Keywords != "" {
		doc.SetKeywords(p.options.Keywords, true)
	}
}
