// Package chess provides the board representation and move generation core:
// a padded 120-cell mailbox board, attack detection, pseudo-legal move
// generation and reversible move application.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	return c ^ 1
}

// PieceType is a piece kind without colour.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (pt PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(pt) < len(names) {
		return names[pt]
	}
	return "Unknown"
}

// Letter returns the single upper-case letter for a piece type.
func (pt PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(pt) < len(letters) {
		return letters[pt]
	}
	return '?'
}

// Piece is the occupant of a board cell. Values 1..12 are the coloured
// pieces, white first; OffBoard only ever appears on border cells.
type Piece uint8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	OffBoard

	NumPieces = 13 // Empty plus the twelve coloured pieces
)

// MakePiece creates a coloured piece value.
func MakePiece(c Colour, pt PieceType) Piece {
	if pt == NoPieceType {
		return Empty
	}
	return Piece(uint8(c)*6 + uint8(pt))
}

// Type extracts the piece type from a coloured piece.
func (p Piece) Type() PieceType {
	switch {
	case p >= WhitePawn && p <= WhiteKing:
		return PieceType(p)
	case p >= BlackPawn && p <= BlackKing:
		return PieceType(p - 6)
	}
	return NoPieceType
}

// Colour extracts the colour from a coloured piece. The result is
// meaningless for Empty and OffBoard; check IsPiece first.
func (p Piece) Colour() Colour {
	if p >= BlackPawn && p <= BlackKing {
		return Black
	}
	return White
}

// IsPiece reports whether p is one of the twelve coloured pieces.
func (p Piece) IsPiece() bool {
	return p >= WhitePawn && p <= BlackKing
}

// Is reports whether p is a piece of colour c.
func (p Piece) Is(c Colour) bool {
	return p.IsPiece() && p.Colour() == c
}

// Letter returns the FEN letter of the piece: upper case for White,
// lower case for Black, '.' for Empty.
func (p Piece) Letter() byte {
	const letters = ".PNBRQKpnbrqk"
	if int(p) < len(letters) {
		return letters[p]
	}
	return '#'
}

// String returns the string representation of a piece.
func (p Piece) String() string {
	switch p {
	case Empty:
		return "Empty"
	case OffBoard:
		return "OffBoard"
	}
	if !p.IsPiece() {
		return "Unknown"
	}
	return p.Colour().String() + p.Type().String()
}

// PieceFromLetter converts a FEN letter to a piece. ok is false for any
// other byte.
func PieceFromLetter(c byte) (p Piece, ok bool) {
	switch c {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	}
	return Empty, false
}

// pieceValue is the material value of each piece, indexed by Piece.
var pieceValue = [NumPieces]int{0, 100, 325, 325, 550, 1000, 50000, 100, 325, 325, 550, 1000, 50000}

// Value returns the material value of a piece.
func (p Piece) Value() int {
	if int(p) < len(pieceValue) {
		return pieceValue[p]
	}
	return 0
}

// isBig reports non-pawn pieces, isMajor rooks/queens/kings and isMinor
// knights/bishops.
func (p Piece) isBig() bool {
	return p.IsPiece() && p.Type() != Pawn
}

func (p Piece) isMajor() bool {
	t := p.Type()
	return t == Rook || t == Queen || t == King
}

func (p Piece) isMinor() bool {
	t := p.Type()
	return t == Knight || t == Bishop
}

// PromotionTypes lists the piece types a pawn may promote to, in the
// order promotion moves are generated.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}
