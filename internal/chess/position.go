package chess

import (
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Placement is one piece on one square.
type Placement struct {
	Square Square64
	Piece  Piece
}

// Position is a structured description of a chess position. It is what
// notation parsers produce and what boards are built from.
type Position struct {
	Pieces         []Placement
	SideToMove     Colour
	Castling       CastlingRights
	EnPassant      Square64 // NoSquare if none
	HalfmoveClock  int
	FullmoveNumber int
}

// StartingPosition returns the standard initial position.
func StartingPosition() Position {
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	p := Position{
		SideToMove:     White,
		Castling:       AllCastling,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
	for file := 0; file < BoardSize; file++ {
		p.Pieces = append(p.Pieces,
			Placement{NewSquare(file, 0), MakePiece(White, backRank[file])},
			Placement{NewSquare(file, 1), WhitePawn},
			Placement{NewSquare(file, 6), BlackPawn},
			Placement{NewSquare(file, 7), MakePiece(Black, backRank[file])},
		)
	}
	return p
}

// NewBoardFromPosition builds a board from a description that a notation
// collaborator has already validated with Position.Validate. It re-checks
// only structural sanity and king presence; on failure it returns a
// *errors.MalformedPositionError and no board.
func NewBoardFromPosition(p Position) (*Board, error) {
	if err := p.checkStructure(); err != nil {
		return nil, err
	}

	b := emptyBoard()
	for _, pl := range p.Pieces {
		b.addPiece(pl.Square, pl.Piece)
	}
	for _, c := range []Colour{White, Black} {
		if n := b.pieceCount[MakePiece(c, King)]; n != 1 {
			return nil, errors.Malformed("", "%d %s kings", n, c)
		}
	}

	b.side = p.SideToMove
	b.castling = p.Castling
	b.enPassant = p.EnPassant
	b.halfmove = p.HalfmoveClock
	b.fullmove = p.FullmoveNumber
	b.key = b.ComputeKey()
	return b, nil
}

// Position returns the structured description of the board, pieces in
// square order.
func (b *Board) Position() Position {
	p := Position{
		SideToMove:     b.side,
		Castling:       b.castling,
		EnPassant:      b.enPassant,
		HalfmoveClock:  b.halfmove,
		FullmoveNumber: b.fullmove,
	}
	for s := Square64(0); s < NumSquares; s++ {
		if pc := b.PieceAt(s); pc != Empty {
			p.Pieces = append(p.Pieces, Placement{s, pc})
		}
	}
	return p
}

// checkStructure rejects descriptions no board can hold: squares out of
// range or occupied twice, non-piece occupants, more pieces of one kind
// than a piece list holds, bad side, rights or clocks.
func (p *Position) checkStructure() error {
	var seen Bitboard
	var counts [NumPieces]int
	for _, pl := range p.Pieces {
		if !pl.Square.Valid() {
			return errors.Malformed("", "square index %d out of range", pl.Square)
		}
		if seen.Has(pl.Square) {
			return errors.Malformed(pl.Square.String(), "square occupied twice")
		}
		seen = seen.Set(pl.Square)
		if !pl.Piece.IsPiece() {
			return errors.Malformed(pl.Square.String(), "%v is not a piece", pl.Piece)
		}
		counts[pl.Piece]++
		if counts[pl.Piece] > maxPieceList {
			return errors.Malformed(pl.Square.String(), "more than %d of %v", maxPieceList, pl.Piece)
		}
	}
	if p.SideToMove != White && p.SideToMove != Black {
		return errors.Malformed("", "invalid side to move %d", p.SideToMove)
	}
	if p.Castling&^AllCastling != 0 {
		return errors.Malformed("", "invalid castling rights %#x", uint8(p.Castling))
	}
	if p.EnPassant != NoSquare && !p.EnPassant.Valid() {
		return errors.Malformed("", "en passant index %d out of range", p.EnPassant)
	}
	if p.HalfmoveClock < 0 {
		return errors.Malformed("", "negative halfmove clock %d", p.HalfmoveClock)
	}
	if p.FullmoveNumber < 1 {
		return errors.Malformed("", "fullmove number %d below 1", p.FullmoveNumber)
	}
	return nil
}

// Validate performs the full geometric validation expected of a notation
// collaborator before it hands a description to NewBoardFromPosition:
// one king per colour, no pawns on the first or last rank, piece counts
// reachable by promotion, castling rights backed by an unmoved king and
// rook, an en-passant target left by a double push, and the side not to
// move not in check.
func (p Position) Validate() error {
	b, err := NewBoardFromPosition(p)
	if err != nil {
		return err
	}

	for _, pl := range p.Pieces {
		if pl.Piece.Type() == Pawn && (RankOf(pl.Square) == 0 || RankOf(pl.Square) == BoardSize-1) {
			return errors.Malformed(pl.Square.String(), "pawn on terminal rank")
		}
	}

	for _, c := range []Colour{White, Black} {
		if err := validateMaterial(b, c); err != nil {
			return err
		}
	}

	if err := validateCastling(b); err != nil {
		return err
	}
	if err := validateEnPassant(b); err != nil {
		return err
	}

	them := b.side.Opposite()
	if b.IsSquareAttacked(b.kings[them], b.side) {
		return errors.Malformed(b.kings[them].String(), "%s king in check with %s to move", them, b.side)
	}
	return nil
}

// validateMaterial checks that colour c's pieces are reachable from the
// initial set: at most eight pawns, and every surplus piece paid for by a
// missing pawn.
func validateMaterial(b *Board, c Colour) error {
	n := func(pt PieceType) int { return b.pieceCount[MakePiece(c, pt)] }

	pawns := n(Pawn)
	if pawns > 8 {
		return errors.Malformed("", "%d %s pawns", pawns, c)
	}
	surplus := max(0, n(Queen)-1) + max(0, n(Rook)-2) + max(0, n(Bishop)-2) + max(0, n(Knight)-2)
	if surplus > 8-pawns {
		return errors.Malformed("", "%s has %d promoted pieces but only %d missing pawns", c, surplus, 8-pawns)
	}
	return nil
}

// validateCastling checks every castling right against the king and rook
// home squares.
func validateCastling(b *Board) error {
	for c := range castleSpecs {
		for _, cs := range castleSpecs[c] {
			if !b.castling.Has(cs.right) {
				continue
			}
			if b.PieceAt(cs.kingFrom) != MakePiece(Colour(c), King) {
				return errors.Malformed(cs.kingFrom.String(), "castling right %s without king on home square", cs.right)
			}
			if b.PieceAt(cs.rookFrom) != MakePiece(Colour(c), Rook) {
				return errors.Malformed(cs.rookFrom.String(), "castling right %s without rook on home square", cs.right)
			}
		}
	}
	return nil
}

// validateEnPassant checks that the en-passant target lies behind a pawn
// that could just have made a double push.
func validateEnPassant(b *Board) error {
	ep := b.enPassant
	if ep == NoSquare {
		return nil
	}

	// With White to move the target is on rank 6 and the black pawn that
	// passed over it stands on rank 5; mirrored for Black.
	wantRank, forward := 5, -BoardSize
	pushed := BlackPawn
	if b.side == Black {
		wantRank, forward = 2, BoardSize
		pushed = WhitePawn
	}
	if RankOf(ep) != wantRank {
		return errors.Malformed(ep.String(), "en passant target on wrong rank for %s to move", b.side)
	}
	if b.PieceAt(ep) != Empty {
		return errors.Malformed(ep.String(), "en passant target occupied")
	}
	if b.PieceAt(ep+Square64(forward)) != pushed {
		return errors.Malformed(ep.String(), "en passant target without a pushed pawn")
	}
	if b.PieceAt(ep-Square64(forward)) != Empty {
		return errors.Malformed(ep.String(), "en passant pawn origin occupied")
	}
	return nil
}
