package chess

// LegalMoves returns the pseudo-legal moves that do not leave the mover's
// king attacked, in generation order.
func (b *Board) LegalMoves() []Move {
	moves := b.GeneratePseudoLegalMoves()
	legal := moves[:0]
	for _, m := range moves {
		if b.IsMoveLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal
// move. It stops at the first one found.
func (b *Board) HasLegalMoves() bool {
	for _, m := range b.GeneratePseudoLegalMoves() {
		if b.IsMoveLegal(m) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && !b.HasLegalMoves()
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (b *Board) IsStalemate() bool {
	return !b.InCheck() && !b.HasLegalMoves()
}

// IsFiftyMoveDraw returns true once 100 half-moves have passed without a
// pawn move or capture.
func (b *Board) IsFiftyMoveDraw() bool {
	return b.halfmove >= 100
}

// HasInsufficientMaterial returns true if neither side can mate:
//   - K vs K
//   - K+B vs K
//   - K+N vs K
//   - K+B vs K+B (same color bishops)
func (b *Board) HasInsufficientMaterial() bool {
	if b.pawns[BothColours] != 0 || b.majPieces[White] > 1 || b.majPieces[Black] > 1 {
		return false
	}

	minors := b.minPieces[White] + b.minPieces[Black]
	switch {
	case minors == 0:
		return true
	case minors == 1:
		return true
	case b.pieceCount[WhiteBishop] == 1 && b.pieceCount[BlackBishop] == 1:
		return isLightSquare(b.bishopSquare(White)) == isLightSquare(b.bishopSquare(Black))
	}
	return false
}

// bishopSquare returns the square of the first bishop of colour c.
func (b *Board) bishopSquare(c Colour) Square64 {
	if squares := b.Squares(MakePiece(c, Bishop)); len(squares) > 0 {
		return squares[0]
	}
	return NoSquare
}

// isLightSquare returns true if s is a light square (h1 is light).
func isLightSquare(s Square64) bool {
	return (FileOf(s)+RankOf(s))%2 == 1
}
