package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// CheckBoard audits the board's incrementally maintained state against a
// from-scratch recomputation. It returns nil for a consistent board and
// otherwise an error wrapping errors.ErrCorruptBoard that names the first
// mismatch found. It is meant for tests and debugging builds.
func (b *Board) CheckBoard() error {
	for q := Square120(0); q < NumSquares120; q++ {
		s := ToSquare64(q)
		p := b.squares[q]
		if s == NoSquare && p != OffBoard {
			return corrupt("border cell %d holds %v", q, p)
		}
		if s != NoSquare && p == OffBoard {
			return corrupt("playable square %s holds OffBoard", s)
		}
	}

	fresh := emptyBoard()
	for s := Square64(0); s < NumSquares; s++ {
		if p := b.PieceAt(s); p != Empty {
			fresh.addPiece(s, p)
		}
	}

	if fresh.pieceCount != b.pieceCount {
		return corrupt("piece counts %v, recomputed %v", b.pieceCount, fresh.pieceCount)
	}
	if fresh.material != b.material {
		return corrupt("material %v, recomputed %v", b.material, fresh.material)
	}
	if fresh.bigPieces != b.bigPieces || fresh.majPieces != b.majPieces || fresh.minPieces != b.minPieces {
		return corrupt("big/major/minor counts out of step")
	}
	for i := range fresh.pawns {
		if fresh.pawns[i] != b.pawns[i] {
			return corrupt("pawn bitboard %d is %#x, recomputed %#x", i, uint64(b.pawns[i]), uint64(fresh.pawns[i]))
		}
	}
	for p := WhitePawn; p <= BlackKing; p++ {
		for i, s := range b.Squares(p) {
			if !s.Valid() || b.PieceAt(s) != p {
				return corrupt("%v list slot %d names %s, which holds %v", p, i, s, b.PieceAt(s))
			}
			if int(b.pieceIndex[s]) != i {
				return corrupt("%v on %s indexed at slot %d, listed at %d", p, s, b.pieceIndex[s], i)
			}
		}
	}
	for _, c := range []Colour{White, Black} {
		if fresh.pieceCount[MakePiece(c, King)] != 1 {
			return corrupt("%d %s kings", fresh.pieceCount[MakePiece(c, King)], c)
		}
		if fresh.kings[c] != b.kings[c] {
			return corrupt("%s king recorded on %s, found on %s", c, b.kings[c], fresh.kings[c])
		}
	}

	if b.side != White && b.side != Black {
		return corrupt("side to move %d", b.side)
	}
	if b.enPassant != NoSquare {
		want := 5
		if b.side == Black {
			want = 2
		}
		if !b.enPassant.Valid() || RankOf(b.enPassant) != want {
			return corrupt("en passant target %s with %s to move", b.enPassant, b.side)
		}
	}
	if k := b.ComputeKey(); k != b.key {
		return corrupt("key %#016x, recomputed %#016x", uint64(b.key), uint64(k))
	}
	return nil
}

func corrupt(format string, args ...interface{}) error {
	return errors.Wrap(errors.ErrCorruptBoard, fmt.Sprintf(format, args...))
}
