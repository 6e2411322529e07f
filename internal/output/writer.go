package output

import (
	"io"

	"github.com/lgbarn/chesscore-go/internal/config"
)

// ReportWriter is the interface for writing perft reports.
// Different implementations handle different formats (text, JSON).
type ReportWriter interface {
	WriteReport(r *Report) error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.OutputConfig) ReportWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}
