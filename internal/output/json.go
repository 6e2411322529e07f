package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/perft"
)

// JSONReport is the JSON form of a Report.
type JSONReport struct {
	FEN        string              `json:"fen"`
	Moves      []string            `json:"moves,omitempty"`
	Draw       string              `json:"draw,omitempty"`
	Depth      int                 `json:"depth"`
	Nodes      int64               `json:"nodes"`
	Divide     []perft.DivideEntry `json:"divide,omitempty"`
	Stats      *perft.Counts       `json:"stats,omitempty"`
	Unique     *perft.UniqueCounts `json:"unique,omitempty"`
	Verified   *bool               `json:"verified,omitempty"`
	Mismatches []perft.Mismatch    `json:"mismatches,omitempty"`
	Workers    int                 `json:"workers,omitempty"`
	ElapsedMS  *int64              `json:"elapsedMs,omitempty"`
	NPS        *int64              `json:"nps,omitempty"`
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(r *Report, cfg *config.OutputConfig) *JSONReport {
	jr := &JSONReport{
		FEN:     r.FEN,
		Moves:   r.Moves,
		Draw:    r.Draw,
		Depth:   r.Depth,
		Nodes:   r.Nodes,
		Divide:  r.Divide,
		Stats:   r.Stats,
		Unique:  r.Unique,
		Workers: r.Workers,
	}
	if r.Verified {
		ok := len(r.Mismatches) == 0
		jr.Verified = &ok
		jr.Mismatches = r.Mismatches
	}
	if cfg.ShowTiming {
		ms := r.Elapsed.Milliseconds()
		nps := r.NodesPerSecond()
		jr.ElapsedMS = &ms
		jr.NPS = &nps
	}
	return jr
}

// JSONWriter writes each report as one indented JSON object.
type JSONWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WriteReport writes r.
func (jw *JSONWriter) WriteReport(r *Report) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(r, jw.cfg))
}
