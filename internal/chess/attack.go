package chess

// IsSquareAttacked returns true if square s is attacked by colour by.
//
// It walks outward from s along each attack pattern on the padded board:
// every ray ends at the first occupied cell, and the border's OffBoard
// cells end rays at the edge, so no coordinate range checks are needed.
func (b *Board) IsSquareAttacked(s Square64, by Colour) bool {
	q := ToSquare120(s)

	// A pawn of colour by attacks s from one rank behind s, as seen from
	// by's side of the board.
	pawn := MakePiece(by, Pawn)
	for _, d := range pawnCaptures[by] {
		if b.squares[q-d] == pawn {
			return true
		}
	}

	knight := MakePiece(by, Knight)
	for _, d := range knightDeltas {
		if b.squares[q+d] == knight {
			return true
		}
	}

	king := MakePiece(by, King)
	for _, d := range kingDeltas {
		if b.squares[q+d] == king {
			return true
		}
	}

	queen := MakePiece(by, Queen)

	bishop := MakePiece(by, Bishop)
	for _, d := range bishopDeltas {
		if p := b.firstOnRay(q, d); p == bishop || p == queen {
			return true
		}
	}

	rook := MakePiece(by, Rook)
	for _, d := range rookDeltas {
		if p := b.firstOnRay(q, d); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstOnRay returns the first non-empty cell reached from q in steps of
// d, which is OffBoard when the ray runs off the board.
func (b *Board) firstOnRay(q, d Square120) Piece {
	for t := q + d; ; t += d {
		if p := b.squares[t]; p != Empty {
			return p
		}
	}
}

// InCheck returns true if the side to move's king is attacked.
func (b *Board) InCheck() bool {
	return b.IsSquareAttacked(b.kings[b.side], b.side.Opposite())
}
