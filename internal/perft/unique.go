package perft

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// UniqueCounts reports how many of the leaves of a perft tree are distinct
// positions. Two leaves are the same position when their keys match.
type UniqueCounts struct {
	Distinct   int  `json:"distinct"`
	Duplicates int  `json:"duplicates"`
	Truncated  bool `json:"truncated,omitempty"`
}

// Unique counts distinct leaf positions depth plies below b. capacity
// caps the number of keys held (0 for no cap); Truncated is set only when
// a new position had to be turned away, and such positions are not
// counted. With more than one worker the root moves are split as in
// Parallel; each worker fills its own set and merges it into a shared one.
func Unique(b *chess.Board, depth, workers, capacity int) UniqueCounts {
	if workers <= 1 || depth < 2 {
		set := hashing.NewKeySet(capacity)
		collect(b, depth, set)
		return UniqueCounts{
			Distinct:   set.UniqueCount(),
			Duplicates: set.DuplicateCount(),
			Truncated:  set.Dropped(),
		}
	}

	shared := hashing.NewThreadSafeKeySet(capacity)
	rootSplit(b, depth, workers, func(c *chess.Board, d int) worker.ProcessResult {
		local := hashing.NewKeySet(capacity)
		collect(c, d, local)
		shared.Merge(local)
		return worker.ProcessResult{}
	})
	return UniqueCounts{
		Distinct:   shared.UniqueCount(),
		Duplicates: shared.DuplicateCount(),
		Truncated:  shared.Dropped(),
	}
}

// collect adds every leaf below b to set.
func collect(b *chess.Board, depth int, set *hashing.KeySet) {
	if depth == 0 {
		set.AddBoard(b)
		return
	}
	for _, m := range b.LegalMoves() {
		u := b.MakeMove(m)
		collect(b, depth-1, set)
		b.UnmakeMove(m, u)
	}
}
