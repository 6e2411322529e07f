package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chesscore-go/internal/config"
)

// TextWriter writes reports in the plain layout used by perft tools:
// one "move: nodes" line per root move followed by a summary.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes r.
func (tw *TextWriter) WriteReport(r *Report) error {
	ew := &errWriter{w: tw.w}

	ew.printf("Position: %s\n", r.FEN)
	if len(r.Moves) > 0 {
		ew.printf("Moves: %s\n", strings.Join(r.Moves, " "))
	}
	if r.Draw != "" {
		ew.printf("Draw: %s\n", r.Draw)
	}

	if r.Divide != nil {
		ew.printf("\n")
		for _, e := range r.Divide {
			ew.printf("%s: %d\n", e.UCI, e.Nodes)
		}
		ew.printf("\n")
	}

	ew.printf("Depth: %d\n", r.Depth)
	ew.printf("Nodes: %d\n", r.Nodes)

	if s := r.Stats; s != nil {
		ew.printf("Captures: %d\n", s.Captures)
		ew.printf("En passant: %d\n", s.EnPassant)
		ew.printf("Castles: %d\n", s.Castles)
		ew.printf("Promotions: %d\n", s.Promotions)
		ew.printf("Checks: %d\n", s.Checks)
		ew.printf("Checkmates: %d\n", s.Checkmates)
	}

	if u := r.Unique; u != nil {
		ew.printf("Distinct positions: %d", u.Distinct)
		if u.Truncated {
			ew.printf(" (capacity reached)")
		}
		ew.printf("\n")
	}

	if r.Verified {
		if len(r.Mismatches) == 0 {
			ew.printf("Reference: match\n")
		} else {
			ew.printf("Reference: %d mismatches\n", len(r.Mismatches))
			for _, m := range r.Mismatches {
				ew.printf("  %s: %d, reference %d\n", m.UCI, m.Nodes, m.Reference)
			}
		}
	}

	if tw.cfg.ShowTiming {
		ew.printf("Time: %s\n", r.Elapsed.Round(time.Microsecond))
		ew.printf("NPS: %d\n", r.NodesPerSecond())
	}
	return ew.err
}

// errWriter keeps the first write error so a run of prints can be checked
// once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
