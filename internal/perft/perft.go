// Package perft counts the leaf nodes of the legal move tree. The counts
// are compared against published tables to validate move generation.
package perft

import (
	"sort"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move `json:"-"`
	UCI   string     `json:"move"`
	Nodes int64      `json:"nodes"`
}

// Perft returns the number of leaf nodes depth plies below b. The board is
// left as it was found.
func Perft(b *chess.Board, depth int) int64 {
	bufs := make([][]chess.Move, depth+1)
	return perft(b, depth, bufs)
}

// perft reuses one move buffer per ply.
func perft(b *chess.Board, depth int, bufs [][]chess.Move) int64 {
	if depth == 0 {
		return 1
	}

	moves := b.AppendPseudoLegalMoves(bufs[depth][:0])
	bufs[depth] = moves

	var nodes int64
	for _, m := range moves {
		us := b.SideToMove()
		u := b.MakeMove(m)
		if !b.IsSquareAttacked(b.KingSquare(us), us.Opposite()) {
			if depth == 1 {
				nodes++
			} else {
				nodes += perft(b, depth-1, bufs)
			}
		}
		b.UnmakeMove(m, u)
	}
	return nodes
}

// Divide returns the node count below each legal root move, sorted by the
// move's long algebraic text. A depth below 1 yields no entries.
func Divide(b *chess.Board, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := b.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		u := b.MakeMove(m)
		entries = append(entries, DivideEntry{Move: m, UCI: m.String(), Nodes: Perft(b, depth-1)})
		b.UnmakeMove(m, u)
	}
	sortEntries(entries)
	return entries
}

// Total sums the node counts of a divide.
func Total(entries []DivideEntry) int64 {
	var n int64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}

func sortEntries(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].UCI < entries[j].UCI })
}
