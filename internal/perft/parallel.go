package perft

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// subtreeFunc explores the subtree below one root move.
type subtreeFunc func(b *chess.Board, depth int) worker.ProcessResult

// rootSplit plays each legal root move on its own clone of b and hands the
// clones to a pool of workers. Results come back indexed by root move.
func rootSplit(b *chess.Board, depth, workers int, fn subtreeFunc) []worker.ProcessResult {
	moves := b.LegalMoves()
	results := make([]worker.ProcessResult, len(moves))
	if len(moves) == 0 {
		return results
	}

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		r := fn(item.Board, item.Depth)
		r.Index = item.Index
		r.Move = item.Move
		return r
	}

	pool := worker.NewPoolWithOptions(processFunc,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)),
	)
	pool.Start()

	go func() {
		for i, m := range moves {
			c := b.Clone()
			c.MakeMove(m)
			pool.Submit(worker.WorkItem{Board: c, Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	for r := range pool.Results() {
		results[r.Index] = r
	}
	return results
}

// Parallel is Divide with the root moves spread over workers goroutines.
// A worker count below 1 runs one worker.
func Parallel(b *chess.Board, depth, workers int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	results := rootSplit(b, depth, workers, func(c *chess.Board, d int) worker.ProcessResult {
		return worker.ProcessResult{Nodes: Perft(c, d)}
	})
	entries := make([]DivideEntry, len(results))
	for i, r := range results {
		entries[i] = DivideEntry{Move: r.Move, UCI: r.Move.String(), Nodes: r.Nodes}
	}
	sortEntries(entries)
	return entries
}

// ParallelStats is Stats with the root moves spread over workers
// goroutines.
func ParallelStats(b *chess.Board, depth, workers int) Counts {
	if depth < 2 {
		return Stats(b, depth)
	}
	results := rootSplit(b, depth, workers, func(c *chess.Board, d int) worker.ProcessResult {
		counts := Stats(c, d)
		return worker.ProcessResult{Nodes: counts.Nodes, Payload: counts}
	})
	var total Counts
	for _, r := range results {
		total.Add(r.Payload.(Counts))
	}
	return total
}
