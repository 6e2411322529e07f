// Package fen converts between Forsyth-Edwards Notation and the chess
// core's structured positions. It is the only place FEN text is parsed;
// the core itself never reads notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse reads a FEN string into a validated position. The halfmove clock
// and fullmove number may be omitted and default to 0 and 1.
//
// Syntax errors are returned as *errors.ParseError wrapping
// errors.ErrInvalidFEN; positions that parse but cannot occur are
// returned as *errors.MalformedPositionError.
func Parse(s string) (chess.Position, error) {
	parts := strings.Fields(s)
	if len(parts) < 4 || len(parts) > 6 {
		return chess.Position{}, &errors.ParseError{
			Err:   errors.ErrInvalidFEN,
			Input: s,
			Field: "fields",
			Got:   strconv.Itoa(len(parts)),
		}
	}

	var p chess.Position
	fail := func(field, got string) (chess.Position, error) {
		return chess.Position{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: s, Field: field, Got: got}
	}

	pieces, bad := parsePiecePositions(parts[0])
	if bad != "" {
		return fail("piece placement", bad)
	}
	p.Pieces = pieces

	switch parts[1] {
	case "w":
		p.SideToMove = chess.White
	case "b":
		p.SideToMove = chess.Black
	default:
		return fail("side to move", parts[1])
	}

	rights, ok := parseCastlingRights(parts[2])
	if !ok {
		return fail("castling", parts[2])
	}
	p.Castling = rights

	p.EnPassant = chess.NoSquare
	if parts[3] != "-" {
		ep, err := ParseSquare(parts[3])
		if err != nil {
			return fail("en passant", parts[3])
		}
		p.EnPassant = ep
	}

	p.FullmoveNumber = 1
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fail("halfmove clock", parts[4])
		}
		p.HalfmoveClock = n
	}
	if len(parts) == 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fail("fullmove number", parts[5])
		}
		p.FullmoveNumber = n
	}

	if err := p.Validate(); err != nil {
		return chess.Position{}, err
	}
	return p, nil
}

// parsePiecePositions parses the piece placement field. On failure it
// returns the offending text.
func parsePiecePositions(field string) ([]chess.Placement, string) {
	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return nil, field
	}

	var pieces []chess.Placement
	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok || file >= chess.BoardSize {
				return nil, row
			}
			pieces = append(pieces, chess.Placement{Square: chess.NewSquare(file, rank), Piece: piece})
			file++
		}
		if file != chess.BoardSize {
			return nil, row
		}
	}
	return pieces, ""
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastlingRights, bool) {
	if field == "-" {
		return chess.NoCastling, true
	}
	var rights chess.CastlingRights
	for i := 0; i < len(field); i++ {
		var r chess.CastlingRights
		switch field[i] {
		case 'K':
			r = chess.WhiteKingside
		case 'Q':
			r = chess.WhiteQueenside
		case 'k':
			r = chess.BlackKingside
		case 'q':
			r = chess.BlackQueenside
		default:
			return 0, false
		}
		if rights.Has(r) {
			return 0, false
		}
		rights |= r
	}
	return rights, true
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(s string) (chess.Square64, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return chess.NoSquare, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "square", Got: s}
	}
	return chess.NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// NewBoard parses a FEN string and builds a board from it.
func NewBoard(s string) (*chess.Board, error) {
	p, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return chess.NewBoardFromPosition(p)
}

// MustBoard is like NewBoard but panics on error. It is intended for
// fixtures and package-level tables.
func MustBoard(s string) *chess.Board {
	b, err := NewBoard(s)
	if err != nil {
		panic(fmt.Sprintf("fen: MustBoard(%q): %v", s, err))
	}
	return b
}

// Format returns the FEN string of a board.
func Format(b *chess.Board) string {
	return FormatPosition(b.Position())
}

// FormatPosition returns the FEN string of a position.
func FormatPosition(p chess.Position) string {
	var grid [chess.NumSquares]chess.Piece
	for _, pl := range p.Pieces {
		grid[pl.Square] = pl.Piece
	}

	var sb strings.Builder
	writePiecePositions(&sb, &grid)
	sb.WriteByte(' ')
	if p.SideToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, grid *[chess.NumSquares]chess.Piece) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := grid[chess.NewSquare(file, rank)]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// ParseMove finds the legal move written in long algebraic form ("e2e4",
// "e7e8q", "e1g1") for the side to move. A well-formed move that is not
// legal returns an error wrapping errors.ErrIllegalMove.
func ParseMove(b *chess.Board, s string) (chess.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return chess.NoMove, &errors.ParseError{Err: errors.ErrIllegalMove, Field: "move", Got: s}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return chess.NoMove, &errors.ParseError{Err: errors.ErrIllegalMove, Field: "move", Got: s}
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return chess.NoMove, &errors.ParseError{Err: errors.ErrIllegalMove, Field: "move", Got: s}
	}
	promo := chess.NoPieceType
	if len(s) == 5 {
		p, ok := chess.PieceFromLetter(s[4])
		if !ok || p.Colour() != chess.Black || p.Type() == chess.Pawn || p.Type() == chess.King {
			return chess.NoMove, &errors.ParseError{Err: errors.ErrIllegalMove, Field: "promotion", Got: s[4:]}
		}
		promo = p.Type()
	}

	for _, m := range b.LegalMoves() {
		if m.From() == from && m.To() == to && m.Promotion().Type() == promo {
			return m, nil
		}
	}
	return chess.NoMove, errors.Wrapf(errors.ErrIllegalMove, "%s in %s", s, Format(b))
}
