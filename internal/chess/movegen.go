package chess

// maxMoves bounds the number of moves in any legal chess position.
const maxMoves = 256

// GeneratePseudoLegalMoves returns every pseudo-legal move for the side
// to move. Moves that leave the mover's own king attacked are included;
// filter them with IsMoveLegal.
func (b *Board) GeneratePseudoLegalMoves() []Move {
	return b.AppendPseudoLegalMoves(make([]Move, 0, maxMoves))
}

// AppendPseudoLegalMoves appends the pseudo-legal moves to dst and
// returns the extended slice, so callers can reuse one buffer per ply.
func (b *Board) AppendPseudoLegalMoves(dst []Move) []Move {
	return b.generate(dst, false)
}

// GenerateCaptures returns the pseudo-legal captures, en-passant captures
// and promotions.
func (b *Board) GenerateCaptures() []Move {
	return b.generate(make([]Move, 0, 64), true)
}

// generationOrder is the order in which generate visits piece kinds.
// The king comes last so castling moves end the list.
var generationOrder = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// generate walks the piece lists of the side to move and appends the
// moves of each piece.
func (b *Board) generate(dst []Move, tactical bool) []Move {
	us := b.side
	for _, pt := range generationOrder {
		p := MakePiece(us, pt)
		for _, s := range b.Squares(p) {
			switch pt {
			case Pawn:
				dst = b.pawnMoves(dst, s, p, tactical)
			case Knight:
				dst = b.stepMoves(dst, s, p, knightDeltas[:], tactical)
			case King:
				dst = b.stepMoves(dst, s, p, kingDeltas[:], tactical)
				if !tactical {
					dst = b.castleMoves(dst)
				}
			case Bishop:
				dst = b.slideMoves(dst, s, p, bishopDeltas[:], tactical)
			case Rook:
				dst = b.slideMoves(dst, s, p, rookDeltas[:], tactical)
			case Queen:
				dst = b.slideMoves(dst, s, p, bishopDeltas[:], tactical)
				dst = b.slideMoves(dst, s, p, rookDeltas[:], tactical)
			}
		}
	}
	return dst
}

// stepMoves appends the knight or king moves from s: each offset is tried
// once, and the border cells rule out moves off the board.
func (b *Board) stepMoves(dst []Move, from Square64, p Piece, deltas []Square120, tactical bool) []Move {
	q := ToSquare120(from)
	them := p.Colour().Opposite()
	for _, d := range deltas {
		t := q + d
		target := b.squares[t]
		switch {
		case target == Empty:
			if !tactical {
				dst = append(dst, NewMove(from, ToSquare64(t), p, Empty, Empty, 0))
			}
		case target.Is(them):
			dst = append(dst, NewMove(from, ToSquare64(t), p, target, Empty, 0))
		}
	}
	return dst
}

// slideMoves ray-walks from s in each direction, adding a quiet move per
// empty cell and a capture for an enemy piece that ends the ray.
func (b *Board) slideMoves(dst []Move, from Square64, p Piece, deltas []Square120, tactical bool) []Move {
	q := ToSquare120(from)
	them := p.Colour().Opposite()
	for _, d := range deltas {
		for t := q + d; ; t += d {
			target := b.squares[t]
			if target == Empty {
				if !tactical {
					dst = append(dst, NewMove(from, ToSquare64(t), p, Empty, Empty, 0))
				}
				continue
			}
			if target.Is(them) {
				dst = append(dst, NewMove(from, ToSquare64(t), p, target, Empty, 0))
			}
			break
		}
	}
	return dst
}

// pawnMoves appends pushes, double pushes, captures, en-passant captures
// and promotions for the pawn on s.
func (b *Board) pawnMoves(dst []Move, from Square64, p Piece, tactical bool) []Move {
	us := p.Colour()
	them := us.Opposite()
	q := ToSquare120(from)
	startRank, lastRank := 1, 7
	if us == Black {
		startRank, lastRank = 6, 0
	}

	one := q + pawnPush[us]
	if b.squares[one] == Empty {
		to := ToSquare64(one)
		if RankOf(to) == lastRank {
			dst = appendPromotions(dst, from, to, p, Empty)
		} else if !tactical {
			dst = append(dst, NewMove(from, to, p, Empty, Empty, 0))
			two := one + pawnPush[us]
			if RankOf(from) == startRank && b.squares[two] == Empty {
				dst = append(dst, NewMove(from, ToSquare64(two), p, Empty, Empty, FlagDoublePush))
			}
		}
	}

	for _, d := range pawnCaptures[us] {
		t := q + d
		target := b.squares[t]
		to := ToSquare64(t)
		switch {
		case target.Is(them):
			if RankOf(to) == lastRank {
				dst = appendPromotions(dst, from, to, p, target)
			} else {
				dst = append(dst, NewMove(from, to, p, target, Empty, 0))
			}
		case target == Empty && to == b.enPassant:
			dst = append(dst, NewMove(from, to, p, MakePiece(them, Pawn), Empty, FlagEnPassant))
		}
	}
	return dst
}

// appendPromotions turns one pawn move onto the last rank into one move
// per promotion piece.
func appendPromotions(dst []Move, from, to Square64, p, captured Piece) []Move {
	for _, pt := range PromotionTypes {
		dst = append(dst, NewMove(from, to, p, captured, MakePiece(p.Colour(), pt), 0))
	}
	return dst
}

// castleMoves appends the castling moves for the side to move: the right
// must be held, king and rook must stand on their home squares, the cells
// between them must be empty and the king may not start on, cross or land
// on an attacked square.
func (b *Board) castleMoves(dst []Move) []Move {
	us := b.side
	them := us.Opposite()
	king := MakePiece(us, King)
	rook := MakePiece(us, Rook)

	for i, cs := range castleSpecs[us] {
		if !b.castling.Has(cs.right) {
			continue
		}
		if b.PieceAt(cs.kingFrom) != king || b.PieceAt(cs.rookFrom) != rook {
			continue
		}
		if !b.allEmpty(cs.empty) || b.anyAttacked(cs.safe, them) {
			continue
		}
		flag := FlagCastleKingside
		if i == 1 {
			flag = FlagCastleQueenside
		}
		dst = append(dst, NewMove(cs.kingFrom, cs.kingTo, king, Empty, Empty, flag))
	}
	return dst
}

func (b *Board) allEmpty(squares []Square64) bool {
	for _, s := range squares {
		if b.PieceAt(s) != Empty {
			return false
		}
	}
	return true
}

func (b *Board) anyAttacked(squares []Square64, by Colour) bool {
	for _, s := range squares {
		if b.IsSquareAttacked(s, by) {
			return true
		}
	}
	return false
}
