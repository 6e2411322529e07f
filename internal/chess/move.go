package chess

// Move is a packed move value:
//
//	bits  0-5   origin square
//	bits  6-11  destination square
//	bits 12-15  moved piece
//	bits 16-19  captured piece (Empty if none)
//	bits 20-23  promotion piece (Empty if none)
//	bits 24-27  flags
//
// Moves are produced by the generator and never modified afterwards.
type Move uint32

// MoveFlag marks the special kinds of move.
type MoveFlag uint32

const (
	FlagEnPassant MoveFlag = 1 << (24 + iota)
	FlagDoublePush
	FlagCastleKingside
	FlagCastleQueenside

	flagCastle = FlagCastleKingside | FlagCastleQueenside
)

// NoMove is the zero move; the generator never produces it.
const NoMove Move = 0

const (
	toShift       = 6
	pieceShift    = 12
	capturedShift = 16
	promoShift    = 20
	squareMask    = 0x3F
	pieceMask     = 0xF
)

// NewMove packs a move. It is exported for collaborators that build moves
// for tests; the generator is the normal source of moves.
func NewMove(from, to Square64, piece, captured, promotion Piece, flags MoveFlag) Move {
	return Move(uint32(from)&squareMask |
		(uint32(to)&squareMask)<<toShift |
		uint32(piece)<<pieceShift |
		uint32(captured)<<capturedShift |
		uint32(promotion)<<promoShift |
		uint32(flags))
}

// From returns the origin square.
func (m Move) From() Square64 { return Square64(m & squareMask) }

// To returns the destination square.
func (m Move) To() Square64 { return Square64(m >> toShift & squareMask) }

// Piece returns the moving piece.
func (m Move) Piece() Piece { return Piece(m >> pieceShift & pieceMask) }

// Captured returns the captured piece, Empty for quiet moves. For en
// passant it is the enemy pawn, which does not stand on To.
func (m Move) Captured() Piece { return Piece(m >> capturedShift & pieceMask) }

// Promotion returns the piece a pawn promotes to, or Empty.
func (m Move) Promotion() Piece { return Piece(m >> promoShift & pieceMask) }

// Flags returns the special-move flags.
func (m Move) Flags() MoveFlag { return MoveFlag(m) & (FlagEnPassant | FlagDoublePush | flagCastle) }

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool { return m.Captured() != Empty }

// IsPromotion reports whether a pawn promotes.
func (m Move) IsPromotion() bool { return m.Promotion() != Empty }

// IsEnPassant reports an en-passant capture.
func (m Move) IsEnPassant() bool { return MoveFlag(m)&FlagEnPassant != 0 }

// IsDoublePush reports a two-square pawn advance.
func (m Move) IsDoublePush() bool { return MoveFlag(m)&FlagDoublePush != 0 }

// IsCastle reports either castling move.
func (m Move) IsCastle() bool { return MoveFlag(m)&flagCastle != 0 }

// IsCastleKingside reports short castling.
func (m Move) IsCastleKingside() bool { return MoveFlag(m)&FlagCastleKingside != 0 }

// IsCastleQueenside reports long castling.
func (m Move) IsCastleQueenside() bool { return MoveFlag(m)&FlagCastleQueenside != 0 }

// IsIrreversible reports moves that reset the halfmove clock.
func (m Move) IsIrreversible() bool {
	return m.IsCapture() || m.Piece().Type() == Pawn
}

// String returns the move in long algebraic form, as used by UCI:
// "e2e4", "e7e8q", "e1g1".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p != Empty {
		s += string(p.Type().Letter() + 'a' - 'A')
	}
	return s
}
