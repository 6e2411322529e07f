package chess

// CastlingRights is a set of the four independent castling permissions.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// NoCastling and AllCastling are the empty and full rights sets.
const (
	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String returns the rights in FEN form ("KQkq", "Kq", "-").
func (c CastlingRights) String() string {
	var buf []byte
	if c.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if c.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if c.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if c.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// castleSpec describes one castling move: the king and rook squares, the
// squares that must be empty and those the king must not be attacked on.
type castleSpec struct {
	right            CastlingRights
	kingFrom, kingTo Square64
	rookFrom, rookTo Square64
	empty            []Square64
	safe             []Square64
}

var castleSpecs = [2][2]castleSpec{
	White: {
		{right: WhiteKingside, kingFrom: E1, kingTo: G1, rookFrom: H1, rookTo: F1,
			empty: []Square64{F1, G1}, safe: []Square64{E1, F1, G1}},
		{right: WhiteQueenside, kingFrom: E1, kingTo: C1, rookFrom: A1, rookTo: D1,
			empty: []Square64{D1, C1, B1}, safe: []Square64{E1, D1, C1}},
	},
	Black: {
		{right: BlackKingside, kingFrom: E8, kingTo: G8, rookFrom: H8, rookTo: F8,
			empty: []Square64{F8, G8}, safe: []Square64{E8, F8, G8}},
		{right: BlackQueenside, kingFrom: E8, kingTo: C8, rookFrom: A8, rookTo: D8,
			empty: []Square64{D8, C8, B8}, safe: []Square64{E8, D8, C8}},
	},
}

// castleMask[s] is and-ed into the rights whenever a move starts or ends
// on s, so a moved or captured king or rook loses its rights for good.
var castleMask [NumSquares]CastlingRights

func init() {
	for s := range castleMask {
		castleMask[s] = AllCastling
	}
	castleMask[E1] &^= WhiteKingside | WhiteQueenside
	castleMask[H1] &^= WhiteKingside
	castleMask[A1] &^= WhiteQueenside
	castleMask[E8] &^= BlackKingside | BlackQueenside
	castleMask[H8] &^= BlackKingside
	castleMask[A8] &^= BlackQueenside
}

// castleRookSquares returns the rook's origin and destination for a
// castling king move.
func castleRookSquares(kingTo Square64) (from, to Square64) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	}
	panic("chess: castling king destination " + kingTo.String())
}
