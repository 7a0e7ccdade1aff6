package printjob

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gompdf/tableprint/internal/layout"
	"github.com/gompdf/tableprint/internal/model"
	"github.com/gompdf/tableprint/internal/pagination"
)

// ErrEmit wraps an error returned by the page callback
var ErrEmit = errors.New("page emit failed")

// Metrics are the font-derived heights supplied by the rendering surface
type Metrics struct {
	RowHeight    float64
	HeaderHeight float64
}

// EmitFunc receives each page in order. Returning an error stops the job.
type EmitFunc func(page pagination.Page) error

// Job lays out tables and hands the resulting pages to a callback.
// A Job holds no per-run state and can be shared.
type Job struct {
	logger        *zap.Logger
	titleTemplate string
	repeatHeader  bool
}

// Option configures a Job
type Option func(*Job)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(j *Job) {
		if logger != nil {
			j.logger = logger
		}
	}
}

// WithTitleTemplate sets the page title template, e.g. "Page %d"
func WithTitleTemplate(template string) Option {
	return func(j *Job) {
		j.titleTemplate = template
	}
}

// WithRepeatHeader controls whether the header row is printed on every page
func WithRepeatHeader(repeat bool) Option {
	return func(j *Job) {
		j.repeatHeader = repeat
	}
}

// New creates a print job
func New(opts ...Option) *Job {
	j := &Job{
		logger:        zap.NewNop(),
		titleTemplate: pagination.DefaultTitleTemplate,
		repeatHeader:  true,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Run validates the layout, resolves the column widths and calls emit once
// per page in ascending page order. On a layout failure no page is emitted
// and the *layout.Error is returned. An emit failure stops the run and is
// returned wrapped in ErrEmit.
func (j *Job) Run(m model.Tabular, cfg layout.Config, t layout.Target, metrics Metrics, emit EmitFunc) error {
	id := uuid.New()
	log := j.logger.With(zap.String("job_id", id.String()))

	composer, err := j.prepare(m, cfg, t, metrics)
	if err != nil {
		log.Warn("table layout rejected",
			zap.Stringer("code", layout.CodeOf(err)),
			zap.Error(err),
		)
		return err
	}

	log.Debug("table layout resolved",
		zap.Int("rows", m.RowCount()),
		zap.Ints("column_widths", composer.Columns()),
		zap.Int("rows_per_page", composer.RowsPerPage()),
		zap.Int("pages", composer.PageCount()),
	)

	emitted := 0
	for page := range composer.All() {
		if err := emit(page); err != nil {
			log.Error("page emit failed", zap.Int("page", page.Number), zap.Error(err))
			return fmt.Errorf("%w: page %d: %w", ErrEmit, page.Number, err)
		}
		emitted++
	}

	log.Debug("table printed", zap.Int("pages", emitted))
	return nil
}

// Pages validates the layout and returns the composer whose All method
// yields the pages lazily. Cells of each page are read through it as well.
func (j *Job) Pages(m model.Tabular, cfg layout.Config, t layout.Target, metrics Metrics) (*pagination.Composer, error) {
	return j.prepare(m, cfg, t, metrics)
}

// prepare runs every check before any width is computed, so a rejected
// job does no partial work
func (j *Job) prepare(m model.Tabular, cfg layout.Config, t layout.Target, metrics Metrics) (*pagination.Composer, error) {
	if err := layout.Validate(m, cfg, t); err != nil {
		return nil, err
	}

	g := pagination.Geometry{
		UsableHeight:  cfg.UsableHeight(),
		RowHeight:     metrics.RowHeight,
		HeaderHeight:  metrics.HeaderHeight,
		TitleTemplate: j.titleTemplate,
		RepeatHeader:  j.repeatHeader,
	}
	if err := g.Check(); err != nil {
		return nil, err
	}

	widths := layout.ResolveColumns(cfg.Stretches, cfg.UsableWidth())
	return pagination.NewComposer(m, widths, g)
}
