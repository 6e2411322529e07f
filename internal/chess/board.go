package chess

import (
	"strings"
)

// Board represents a chess position with all state needed for move
// generation and reversible move application.
//
// A Board is owned by one goroutine at a time. Callers exploring lines of
// play in parallel must give each worker its own Clone.
type Board struct {
	// The padded board. Border cells hold OffBoard and are never written
	// after construction.
	squares [NumSquares120]Piece

	// Who has the next move.
	side Colour

	castling CastlingRights

	// Square passed over by the last double pawn push, or NoSquare.
	enPassant Square64

	// Half-moves since the last pawn move or capture.
	halfmove int

	// Starts at 1 and increments after Black's move.
	fullmove int

	key Key

	// Kept up to date by the piece mutators below.
	kings      [2]Square64
	pieceCount [NumPieces]int
	material   [2]int
	bigPieces  [2]int
	majPieces  [2]int
	minPieces  [2]int
	pawns      [3]Bitboard // White, Black, both

	// pieceList[p][:pieceCount[p]] holds the squares of every piece p, in
	// no particular order. pieceIndex[s] is the slot of the piece on s.
	pieceList  [NumPieces][maxPieceList]Square64
	pieceIndex [NumSquares]int8
}

// BothColours indexes the combined pawn bitboard.
const BothColours = 2

// maxPieceList bounds the pieces of one kind: two originals plus eight
// promoted pawns.
const maxPieceList = 10

// NewBoard creates a board with the standard starting position.
func NewBoard() *Board {
	b, err := NewBoardFromPosition(StartingPosition())
	if err != nil {
		panic("chess: starting position rejected: " + err.Error())
	}
	return b
}

// emptyBoard returns a board with every playable cell Empty and every
// border cell OffBoard.
func emptyBoard() *Board {
	b := &Board{
		enPassant: NoSquare,
		fullmove:  1,
		kings:     [2]Square64{NoSquare, NoSquare},
	}
	for q := range b.squares {
		b.squares[q] = OffBoard
	}
	for s := Square64(0); s < NumSquares; s++ {
		b.squares[ToSquare120(s)] = Empty
	}
	return b
}

// SideToMove returns the colour to move.
func (b *Board) SideToMove() Colour { return b.side }

// PieceAt returns the piece on s (Empty if none).
func (b *Board) PieceAt(s Square64) Piece { return b.squares[ToSquare120(s)] }

// At returns the occupant of a padded-board cell, OffBoard included.
func (b *Board) At(q Square120) Piece { return b.squares[q] }

// Castling returns the current castling rights.
func (b *Board) Castling() CastlingRights { return b.castling }

// EnPassant returns the en-passant target square, or NoSquare.
func (b *Board) EnPassant() Square64 { return b.enPassant }

// HalfmoveClock returns the number of half-moves since the last pawn move
// or capture.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the current move number.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Key returns the incrementally maintained position key.
func (b *Board) Key() Key { return b.key }

// KingSquare returns the square of the king of colour c.
func (b *Board) KingSquare(c Colour) Square64 { return b.kings[c] }

// PieceCount returns how many of piece p are on the board.
func (b *Board) PieceCount(p Piece) int { return b.pieceCount[p] }

// Material returns the summed piece values of colour c, king included.
func (b *Board) Material(c Colour) int { return b.material[c] }

// BigPieces returns the number of non-pawn pieces of colour c.
func (b *Board) BigPieces(c Colour) int { return b.bigPieces[c] }

// MajorPieces returns the number of rooks, queens and kings of colour c.
func (b *Board) MajorPieces(c Colour) int { return b.majPieces[c] }

// MinorPieces returns the number of knights and bishops of colour c.
func (b *Board) MinorPieces(c Colour) int { return b.minPieces[c] }

// Pawns returns the pawn bitboard for White, Black or BothColours.
func (b *Board) Pawns(i int) Bitboard { return b.pawns[i] }

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal reports whether two boards hold the same position and state,
// including clocks and key. Piece list order is not compared; capturing
// and restoring a piece can reorder its list.
func (b *Board) Equal(o *Board) bool {
	x, y := *b, *o
	x.pieceList, y.pieceList = [NumPieces][maxPieceList]Square64{}, [NumPieces][maxPieceList]Square64{}
	x.pieceIndex, y.pieceIndex = [NumSquares]int8{}, [NumSquares]int8{}
	return x == y
}

// Squares returns the squares holding piece p. The slice aliases the
// board and is valid until the next move.
func (b *Board) Squares(p Piece) []Square64 {
	return b.pieceList[p][:b.pieceCount[p]]
}

// String returns an ASCII diagram of the board, rank 8 first, followed by
// the side to move, castling rights and en-passant target.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteString("  ")
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.PieceAt(NewSquare(file, rank)).Letter())
			if file < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	sb.WriteString("side: ")
	sb.WriteString(b.side.String())
	sb.WriteString(" castle: ")
	sb.WriteString(b.castling.String())
	sb.WriteString(" ep: ")
	sb.WriteString(b.enPassant.String())
	sb.WriteByte('\n')
	return sb.String()
}

// The mutators below are the only code that writes squares. They keep
// the key and the derived counters in step, and are called from the
// move applier and from construction.

// addPiece puts p on the empty square s.
func (b *Board) addPiece(s Square64, p Piece) {
	b.squares[ToSquare120(s)] = p
	b.key ^= pieceKeys[p][s]
	b.count(s, p, 1)
}

// removePiece clears s and returns what stood there.
func (b *Board) removePiece(s Square64) Piece {
	q := ToSquare120(s)
	p := b.squares[q]
	b.squares[q] = Empty
	b.key ^= pieceKeys[p][s]
	b.count(s, p, -1)
	return p
}

// movePiece relocates the piece on from to the empty square to.
func (b *Board) movePiece(from, to Square64) {
	qf, qt := ToSquare120(from), ToSquare120(to)
	p := b.squares[qf]
	b.squares[qf] = Empty
	b.squares[qt] = p
	b.key ^= pieceKeys[p][from] ^ pieceKeys[p][to]

	i := b.pieceIndex[from]
	b.pieceList[p][i] = to
	b.pieceIndex[to] = i

	switch p.Type() {
	case King:
		b.kings[p.Colour()] = to
	case Pawn:
		c := p.Colour()
		b.pawns[c] = b.pawns[c].Clear(from).Set(to)
		b.pawns[BothColours] = b.pawns[BothColours].Clear(from).Set(to)
	}
}

// count adjusts the derived counters for piece p arriving (n = 1) on or
// leaving (n = -1) square s.
func (b *Board) count(s Square64, p Piece, n int) {
	c := p.Colour()
	if n > 0 {
		b.pieceList[p][b.pieceCount[p]] = s
		b.pieceIndex[s] = int8(b.pieceCount[p])
	} else {
		i := b.pieceIndex[s]
		last := b.pieceList[p][b.pieceCount[p]-1]
		b.pieceList[p][i] = last
		b.pieceIndex[last] = i
	}
	b.pieceCount[p] += n
	b.material[c] += n * p.Value()
	if p.isBig() {
		b.bigPieces[c] += n
	}
	if p.isMajor() {
		b.majPieces[c] += n
	}
	if p.isMinor() {
		b.minPieces[c] += n
	}

	switch p.Type() {
	case King:
		if n > 0 {
			b.kings[c] = s
		} else {
			b.kings[c] = NoSquare
		}
	case Pawn:
		if n > 0 {
			b.pawns[c] = b.pawns[c].Set(s)
			b.pawns[BothColours] = b.pawns[BothColours].Set(s)
		} else {
			b.pawns[c] = b.pawns[c].Clear(s)
			b.pawns[BothColours] = b.pawns[BothColours].Clear(s)
		}
	}
}
