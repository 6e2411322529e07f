package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/fen"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/perft"
	"github.com/lgbarn/chesscore-go/internal/processing"
)

// logf writes a diagnostic line when the configured verbosity is at least
// level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity >= level {
		fmt.Fprintf(cfg.LogFile, format, args...)
	}
}

// checkLine rejects a -moves line that cannot be played from cfg.FEN,
// naming the first bad ply.
func checkLine(cfg *config.Config) error {
	v := processing.ValidateLine(cfg.FEN, cfg.Moves)
	switch {
	case v.Valid:
		return nil
	case v.ErrorPly == 0:
		return errors.Wrap(errors.ErrInvalidFEN, v.ErrorMsg)
	}
	return errors.Wrapf(errors.ErrIllegalMove, "-moves ply %d (%s)", v.ErrorPly, cfg.Moves[v.ErrorPly-1])
}

// setupBoard plays cfg.Moves from cfg.FEN and returns the resulting board
// with the name of any draw it is in.
func setupBoard(cfg *config.Config) (*chess.Board, string, error) {
	la, err := processing.AnalyzeLine(cfg.FEN, cfg.Moves)
	if err != nil {
		return nil, "", err
	}
	if cfg.Verbosity >= 2 {
		for i, m := range la.Stack.Moves() {
			logf(cfg, 2, "ply %d %s: key %016x\n", i+1, m, uint64(la.Keys[i+1]))
		}
	}
	if la.HasRepetition && la.Draw == "" {
		logf(cfg, 1, "Note: the moves pass through a threefold repetition\n")
	}
	return la.FinalBoard, la.Draw, nil
}

// run performs the count described by cfg.
func run(cfg *config.Config) (*output.Report, error) {
	b, draw, err := setupBoard(cfg)
	if err != nil {
		return nil, err
	}
	if draw != "" {
		logf(cfg, 1, "Note: position is drawn by %s\n", draw)
	}

	pc := cfg.Perft
	numWorkers := cfg.EffectiveWorkers()
	r := &output.Report{
		FEN:     fen.Format(b),
		Moves:   cfg.Moves,
		Depth:   pc.Depth,
		Draw:    draw,
		Workers: numWorkers,
	}
	if cfg.Output.ShowBoard {
		logf(cfg, 1, "%s\n", b)
	}

	logf(cfg, 2, "counting to depth %d with %d worker(s)\n", pc.Depth, numWorkers)
	start := time.Now()
	switch {
	case pc.Divide || cfg.VerifyReference:
		var entries []perft.DivideEntry
		if numWorkers > 1 {
			entries = perft.Parallel(b, pc.Depth, numWorkers)
		} else {
			entries = perft.Divide(b, pc.Depth)
		}
		r.Nodes = perft.Total(entries)
		if pc.Depth == 0 {
			r.Nodes = 1
		}
		if pc.Divide {
			r.Divide = entries
		}
		if cfg.VerifyReference {
			mismatches, err := referenceMismatches(cfg, r.FEN, pc.Depth, entries)
			if err != nil {
				return nil, err
			}
			r.Verified = true
			r.Mismatches = mismatches
		}
	case numWorkers > 1 && pc.Depth > 1:
		r.Nodes = perft.Total(perft.Parallel(b, pc.Depth, numWorkers))
	default:
		r.Nodes = perft.Perft(b, pc.Depth)
	}

	if pc.Stats {
		counts := perft.ParallelStats(b, pc.Depth, numWorkers)
		r.Stats = &counts
	}
	if pc.Unique {
		u := perft.Unique(b, pc.Depth, numWorkers, pc.UniqueCapacity)
		r.Unique = &u
		if u.Truncated {
			logf(cfg, 1, "Warning: distinct position count stopped at capacity %d\n", pc.UniqueCapacity)
		}
	}
	r.Elapsed = time.Since(start)

	logf(cfg, 1, "%d nodes in %s\n", r.Nodes, r.Elapsed)
	return r, nil
}

// referenceMismatches counts the position again with the reference
// generator and returns the root moves that disagree.
func referenceMismatches(cfg *config.Config, s string, depth int, ours []perft.DivideEntry) ([]perft.Mismatch, error) {
	ref, err := perft.NewReference(s)
	if err != nil {
		return nil, errors.Wrap(err, "reference generator")
	}
	mismatches := perft.DiffDivides(ours, ref.Divide(depth))
	if len(mismatches) > 0 {
		logf(cfg, 1, "Error: %v\n", errors.Wrapf(errors.ErrReferenceMismatch, "%d root moves", len(mismatches)))
	}
	return mismatches, nil
}

// writeReport renders r in the configured format.
func writeReport(cfg *config.Config, r *output.Report) error {
	return output.NewWriter(cfg.OutputFile, cfg.Output).WriteReport(r)
}
