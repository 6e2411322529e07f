package chess

import (
	stderrors "errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// sq parses an algebraic square name for test fixtures.
func sq(name string) Square64 {
	return NewSquare(int(name[0]-'a'), int(name[1]-'1'))
}

// setup builds a board from a piece map such as {"e1": WhiteKing}.
func setup(t testing.TB, side Colour, castling CastlingRights, pieces map[string]Piece) *Board {
	t.Helper()
	p := Position{
		SideToMove:     side,
		Castling:       castling,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
	for name, pc := range pieces {
		p.Pieces = append(p.Pieces, Placement{sq(name), pc})
	}
	b, err := NewBoardFromPosition(p)
	if err != nil {
		t.Fatalf("NewBoardFromPosition() error = %v", err)
	}
	return b
}

// findMove returns the legal move with the given UCI text.
func findMove(t testing.TB, b *Board, uci string) Move {
	t.Helper()
	for _, m := range b.LegalMoves() {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("move %s not legal in\n%s", uci, b)
	return NoMove
}

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func containsMove(moves []Move, uci string) bool {
	for _, m := range moves {
		if m.String() == uci {
			return true
		}
	}
	return false
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.SideToMove() != White {
			t.Errorf("SideToMove() = %v; want White", b.SideToMove())
		}
		if b.FullmoveNumber() != 1 {
			t.Errorf("FullmoveNumber() = %d; want 1", b.FullmoveNumber())
		}
		if b.EnPassant() != NoSquare {
			t.Errorf("EnPassant() = %v; want NoSquare", b.EnPassant())
		}
		if b.HalfmoveClock() != 0 {
			t.Errorf("HalfmoveClock() = %d; want 0", b.HalfmoveClock())
		}
		if b.Castling() != AllCastling {
			t.Errorf("Castling() = %v; want KQkq", b.Castling())
		}
	})

	t.Run("piece placement", func(t *testing.T) {
		tests := []struct {
			square string
			piece  Piece
		}{
			{"a1", WhiteRook},
			{"b1", WhiteKnight},
			{"c1", WhiteBishop},
			{"d1", WhiteQueen},
			{"e1", WhiteKing},
			{"e2", WhitePawn},
			{"e4", Empty},
			{"d5", Empty},
			{"h7", BlackPawn},
			{"d8", BlackQueen},
			{"e8", BlackKing},
			{"g8", BlackKnight},
		}
		for _, tt := range tests {
			if got := b.PieceAt(sq(tt.square)); got != tt.piece {
				t.Errorf("PieceAt(%s) = %v; want %v", tt.square, got, tt.piece)
			}
		}
	})

	t.Run("border cells are OffBoard", func(t *testing.T) {
		for _, q := range []Square120{0, 9, 10, 20, 29, 30, 99, 100, 119} {
			if got := b.At(q); got != OffBoard {
				t.Errorf("At(%d) = %v; want OffBoard", q, got)
			}
		}
	})

	t.Run("derived counters", func(t *testing.T) {
		if got := b.KingSquare(White); got != E1 {
			t.Errorf("KingSquare(White) = %v; want e1", got)
		}
		if got := b.KingSquare(Black); got != E8 {
			t.Errorf("KingSquare(Black) = %v; want e8", got)
		}
		if got := b.PieceCount(WhitePawn); got != 8 {
			t.Errorf("PieceCount(WhitePawn) = %d; want 8", got)
		}
		if got := b.BigPieces(Black); got != 8 {
			t.Errorf("BigPieces(Black) = %d; want 8", got)
		}
		if got := b.MajorPieces(White); got != 4 {
			t.Errorf("MajorPieces(White) = %d; want 4", got)
		}
		if got := b.MinorPieces(White); got != 4 {
			t.Errorf("MinorPieces(White) = %d; want 4", got)
		}
		want := 8*100 + 4*325 + 2*550 + 1000 + 50000
		if got := b.Material(White); got != want {
			t.Errorf("Material(White) = %d; want %d", got, want)
		}
		if got := b.Pawns(BothColours).Count(); got != 16 {
			t.Errorf("Pawns(BothColours).Count() = %d; want 16", got)
		}
	})

	t.Run("consistent", func(t *testing.T) {
		if err := b.CheckBoard(); err != nil {
			t.Errorf("CheckBoard() = %v", err)
		}
		if b.Key() != b.ComputeKey() {
			t.Error("Key() differs from ComputeKey()")
		}
	})
}

func TestNewBoardFromPositionErrors(t *testing.T) {
	kings := []Placement{{E1, WhiteKing}, {E8, BlackKing}}
	withKings := func(extra ...Placement) []Placement {
		return append(append([]Placement{}, kings...), extra...)
	}

	tests := []struct {
		name string
		pos  Position
	}{
		{"no kings", Position{FullmoveNumber: 1, EnPassant: NoSquare}},
		{"two white kings", Position{Pieces: withKings(Placement{D1, WhiteKing}), FullmoveNumber: 1, EnPassant: NoSquare}},
		{"square twice", Position{Pieces: withKings(Placement{E1, WhiteQueen}), FullmoveNumber: 1, EnPassant: NoSquare}},
		{"square out of range", Position{Pieces: withKings(Placement{64, WhitePawn}), FullmoveNumber: 1, EnPassant: NoSquare}},
		{"not a piece", Position{Pieces: withKings(Placement{sq("d4"), OffBoard}), FullmoveNumber: 1, EnPassant: NoSquare}},
		{"bad side", Position{Pieces: kings, SideToMove: 2, FullmoveNumber: 1, EnPassant: NoSquare}},
		{"bad rights", Position{Pieces: kings, Castling: 16, FullmoveNumber: 1, EnPassant: NoSquare}},
		{"negative halfmove", Position{Pieces: kings, HalfmoveClock: -1, FullmoveNumber: 1, EnPassant: NoSquare}},
		{"zero fullmove", Position{Pieces: kings, EnPassant: NoSquare}},
		{"eleven white knights", func() Position {
			p := Position{Pieces: withKings(), FullmoveNumber: 1, EnPassant: NoSquare}
			for i := 0; i <= maxPieceList; i++ {
				p.Pieces = append(p.Pieces, Placement{NewSquare(i%BoardSize, 2+i/BoardSize), WhiteKnight})
			}
			return p
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoardFromPosition(tt.pos)
			if err == nil {
				t.Fatal("NewBoardFromPosition() error = nil; want error")
			}
			if b != nil {
				t.Error("NewBoardFromPosition() returned a board with an error")
			}
			if !stderrors.Is(err, errors.ErrMalformedPosition) {
				t.Errorf("error %v does not wrap ErrMalformedPosition", err)
			}
			var mpe *errors.MalformedPositionError
			if !stderrors.As(err, &mpe) {
				t.Errorf("error %T is not a *MalformedPositionError", err)
			}
		})
	}
}

func TestPositionValidate(t *testing.T) {
	base := func(extra ...Placement) Position {
		return Position{
			Pieces:         append([]Placement{{E1, WhiteKing}, {E8, BlackKing}}, extra...),
			EnPassant:      NoSquare,
			FullmoveNumber: 1,
		}
	}

	tests := []struct {
		name    string
		pos     func() Position
		wantErr bool
	}{
		{"start position", StartingPosition, false},
		{"bare kings", func() Position { return base() }, false},
		{"pawn on first rank", func() Position { return base(Placement{A1, WhitePawn}) }, true},
		{"pawn on last rank", func() Position { return base(Placement{A8, BlackPawn}) }, true},
		{"castling without rook", func() Position {
			p := base()
			p.Castling = WhiteKingside
			return p
		}, true},
		{"castling with rook", func() Position {
			p := base(Placement{H1, WhiteRook})
			p.Castling = WhiteKingside
			return p
		}, false},
		{"side not to move in check", func() Position {
			return base(Placement{sq("e4"), WhiteRook})
		}, true},
		{"en passant after double push", func() Position {
			p := base(Placement{sq("d5"), BlackPawn}, Placement{sq("e5"), WhitePawn})
			p.EnPassant = sq("d6")
			return p
		}, false},
		{"en passant without pawn", func() Position {
			p := base()
			p.EnPassant = sq("d6")
			return p
		}, true},
		{"en passant on wrong rank", func() Position {
			p := base(Placement{sq("d4"), BlackPawn})
			p.EnPassant = sq("d3")
			return p
		}, true},
		{"nine queens without missing pawns", func() Position {
			extra := []Placement{}
			for f := 0; f < BoardSize; f++ {
				extra = append(extra, Placement{NewSquare(f, 1), WhitePawn})
			}
			extra = append(extra, Placement{D1, WhiteQueen}, Placement{sq("d4"), WhiteQueen})
			return base(extra...)
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pos().Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v; wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrMalformedPosition) {
				t.Errorf("error %v does not wrap ErrMalformedPosition", err)
			}
		})
	}
}

func TestPositionRoundTrip(t *testing.T) {
	want := StartingPosition()
	b, err := NewBoardFromPosition(want)
	if err != nil {
		t.Fatalf("NewBoardFromPosition() error = %v", err)
	}
	got := b.Position()

	// Position() lists pieces in square order; sort the fixture the same way.
	byStart := make(map[Square64]Piece)
	for _, pl := range want.Pieces {
		byStart[pl.Square] = pl.Piece
	}
	want.Pieces = nil
	for s := Square64(0); s < NumSquares; s++ {
		if p, ok := byStart[s]; ok {
			want.Pieces = append(want.Pieces, Placement{s, p})
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Position() mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneAndEqual(t *testing.T) {
	b := NewBoard()
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("Clone() not Equal to original")
	}

	c.MakeMove(findMove(t, c, "e2e4"))
	if b.Equal(c) {
		t.Error("boards still Equal after moving the clone")
	}
	if b.PieceAt(sq("e2")) != WhitePawn {
		t.Error("moving the clone changed the original")
	}
}

func TestCheckBoardDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(b *Board)
	}{
		{"key", func(b *Board) { b.key ^= 1 }},
		{"piece count", func(b *Board) { b.pieceCount[WhiteKnight]++ }},
		{"material", func(b *Board) { b.material[Black] -= 100 }},
		{"pawn bitboard", func(b *Board) { b.pawns[White] = b.pawns[White].Clear(sq("e2")) }},
		{"king square", func(b *Board) { b.kings[White] = D1 }},
		{"border cell", func(b *Board) { b.squares[0] = Empty }},
		{"piece list", func(b *Board) { b.pieceList[WhiteKnight][0] = sq("e4") }},
		{"piece index", func(b *Board) { b.pieceIndex[sq("g1")] = 5 }},
		{"en passant rank", func(b *Board) { b.enPassant = sq("e3") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			tt.corrupt(b)
			err := b.CheckBoard()
			if err == nil {
				t.Fatal("CheckBoard() = nil; want error")
			}
			if !stderrors.Is(err, errors.ErrCorruptBoard) {
				t.Errorf("CheckBoard() = %v; want ErrCorruptBoard", err)
			}
		})
	}
}

func TestPieceLists(t *testing.T) {
	sortedNames := func(squares []Square64) []string {
		var out []string
		for _, s := range squares {
			out = append(out, s.String())
		}
		sort.Strings(out)
		return out
	}

	b := NewBoard()
	tests := []struct {
		piece Piece
		want  []string
	}{
		{WhiteKnight, []string{"b1", "g1"}},
		{BlackRook, []string{"a8", "h8"}},
		{WhiteKing, []string{"e1"}},
		{BlackQueen, []string{"d8"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, sortedNames(b.Squares(tt.piece))); diff != "" {
			t.Errorf("Squares(%v) mismatch (-want +got):\n%s", tt.piece, diff)
		}
	}
	if got := len(b.Squares(WhitePawn)); got != 8 {
		t.Errorf("len(Squares(WhitePawn)) = %d; want 8", got)
	}

	t.Run("capture and restore", func(t *testing.T) {
		b := setup(t, White, NoCastling, map[string]Piece{
			"e1": WhiteKing, "e8": BlackKing, "d4": WhiteQueen,
			"a7": BlackKnight, "d7": BlackKnight, "h7": BlackKnight,
		})
		before := b.Clone()
		m := findMove(t, b, "d4d7")
		u := b.MakeMove(m)
		if diff := cmp.Diff([]string{"a7", "h7"}, sortedNames(b.Squares(BlackKnight))); diff != "" {
			t.Errorf("knights after capture mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"d7"}, sortedNames(b.Squares(WhiteQueen))); diff != "" {
			t.Errorf("queen after capture mismatch (-want +got):\n%s", diff)
		}
		if err := b.CheckBoard(); err != nil {
			t.Fatalf("CheckBoard() after capture = %v", err)
		}

		b.UnmakeMove(m, u)
		if err := b.CheckBoard(); err != nil {
			t.Fatalf("CheckBoard() after unmake = %v", err)
		}
		if !b.Equal(before) {
			t.Error("unmake did not restore the board")
		}
		if diff := cmp.Diff([]string{"a7", "d7", "h7"}, sortedNames(b.Squares(BlackKnight))); diff != "" {
			t.Errorf("knights after unmake mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("promotion", func(t *testing.T) {
		b := setup(t, White, NoCastling, map[string]Piece{
			"e1": WhiteKing, "h8": BlackKing, "b7": WhitePawn,
		})
		b.MakeMove(findMove(t, b, "b7b8n"))
		testPieces := map[Piece]int{WhitePawn: 0, WhiteKnight: 1}
		for p, n := range testPieces {
			if got := len(b.Squares(p)); got != n {
				t.Errorf("len(Squares(%v)) = %d; want %d", p, got, n)
			}
		}
		if err := b.CheckBoard(); err != nil {
			t.Errorf("CheckBoard() = %v", err)
		}
	})
}

func TestBoardString(t *testing.T) {
	s := NewBoard().String()
	for _, want := range []string{"8  r n b q k b n r", "1  R N B Q K B N R", "side: White", "castle: KQkq", "ep: -"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
