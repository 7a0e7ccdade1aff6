package layout

import (
	"math"

	"github.com/gompdf/tableprint/internal/model"
)

// Validate checks cfg against the model and the target before any layout
// work is done. Checks run in a fixed order and the first failure is
// returned as an *Error; nil means the job can be laid out. Row data is
// never read.
func Validate(m model.Tabular, cfg Config, t Target) error {
	if t == nil || !t.Valid() {
		return &Error{Code: TargetInvalid}
	}
	if !t.Active() {
		return &Error{Code: TargetNotActive}
	}

	columns := m.ColumnCount()
	if len(cfg.Stretches) != columns {
		return &Error{Code: StretchCountMismatch}
	}
	if len(cfg.Headers) != columns {
		return &Error{Code: HeaderCountMismatch}
	}
	if cfg.UsableWidth() <= 0 || cfg.UsableHeight() <= 0 {
		return &Error{Code: MarginsExceedArea}
	}

	total := 0.0
	for i, s := range cfg.Stretches {
		if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return &Error{Code: NegativeColumnStretch, Column: i, Stretch: s}
		}
		total += s
	}
	if total <= 0 {
		return &Error{Code: NoPrintableColumn}
	}
	return nil
}
