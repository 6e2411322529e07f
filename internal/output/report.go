// Package output renders perft reports as text or JSON.
package output

import (
	"time"

	"github.com/lgbarn/chesscore-go/internal/perft"
)

// Report is the result of one perft run.
type Report struct {
	FEN   string   // position the count started from
	Moves []string // moves played from FEN before counting
	Depth int

	Nodes  int64
	Divide []perft.DivideEntry // nil unless a divide was requested

	Stats  *perft.Counts
	Unique *perft.UniqueCounts

	// Mismatches is non-nil when the reference check ran.
	Mismatches []perft.Mismatch
	Verified   bool

	// Draw names a drawn state reached while playing Moves, if any.
	Draw string

	Workers int
	Elapsed time.Duration
}

// NodesPerSecond returns the counting rate, or 0 when no time was measured.
func (r *Report) NodesPerSecond() int64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return int64(float64(r.Nodes) / secs)
}
