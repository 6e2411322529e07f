package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// perft counts leaf nodes using only the core primitives, checking after
// every move that the board stays self-consistent and unmakes exactly.
func perft(t testing.TB, b *Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var n int64
	for _, m := range b.GeneratePseudoLegalMoves() {
		before := *b
		u := b.MakeMove(m)
		mover := b.SideToMove().Opposite()
		if !b.IsSquareAttacked(b.KingSquare(mover), b.SideToMove()) {
			n += perft(t, b, depth-1)
		}
		b.UnmakeMove(m, u)
		if !b.Equal(&before) {
			t.Fatalf("unmake of %s did not restore the board", m)
		}
	}
	return n
}

func TestPerftStartPosition(t *testing.T) {
	tests := []struct {
		depth int
		want  int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tt := range tests {
		if testing.Short() && tt.depth > 3 {
			continue
		}
		b := NewBoard()
		if got := perft(t, b, tt.depth); got != tt.want {
			t.Errorf("perft(%d) = %d; want %d", tt.depth, got, tt.want)
		}
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := NewBoard()
	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		for _, m := range b.LegalMoves() {
			before := b.Clone()
			u := b.MakeMove(m)
			if err := b.CheckBoard(); err != nil {
				t.Fatalf("after %s: %v", m, err)
			}
			walk(depth - 1)
			b.UnmakeMove(m, u)
			if !b.Equal(before) {
				t.Fatalf("unmake of %s did not restore the board", m)
			}
		}
	}
	walk(3)
}

func TestLegalMovesLeaveKingSafe(t *testing.T) {
	// White king pinned rook on e2 may only move along the e-file.
	b := setup(t, White, NoCastling, map[string]Piece{
		"e1": WhiteKing, "e2": WhiteRook, "e8": BlackRook, "a8": BlackKing,
	})

	for _, m := range b.LegalMoves() {
		u := b.MakeMove(m)
		if b.IsSquareAttacked(b.KingSquare(White), Black) {
			t.Errorf("legal move %s leaves the king attacked", m)
		}
		b.UnmakeMove(m, u)
		if m.From() == sq("e2") && FileOf(m.To()) != 4 {
			t.Errorf("pinned rook move %s reported legal", m)
		}
	}
	if !containsMove(b.LegalMoves(), "e2e8") {
		t.Error("capture of the pinning rook missing")
	}
}

func TestPawnMoves(t *testing.T) {
	t.Run("single and double push", func(t *testing.T) {
		b := setup(t, White, NoCastling, map[string]Piece{
			"e1": WhiteKing, "e8": BlackKing, "d2": WhitePawn, "a3": WhitePawn,
		})
		moves := b.LegalMoves()
		for _, want := range []string{"d2d3", "d2d4", "a3a4"} {
			if !containsMove(moves, want) {
				t.Errorf("missing %s in %v", want, moveStrings(moves))
			}
		}
		if containsMove(moves, "a3a5") {
			t.Error("double push from a non-start rank")
		}
	})

	t.Run("double push blocked", func(t *testing.T) {
		b := setup(t, White, NoCastling, map[string]Piece{
			"e1": WhiteKing, "e8": BlackKing, "d2": WhitePawn, "d4": BlackKnight, "c2": WhitePawn, "c3": BlackKnight,
		})
		moves := b.LegalMoves()
		if containsMove(moves, "d2d4") {
			t.Error("double push onto an occupied square")
		}
		if !containsMove(moves, "d2d3") {
			t.Error("single push missing")
		}
		if containsMove(moves, "c2c4") || containsMove(moves, "c2c3") {
			t.Error("push through a blocked square")
		}
	})

	t.Run("black pawns move down the board", func(t *testing.T) {
		b := setup(t, Black, NoCastling, map[string]Piece{
			"e1": WhiteKing, "e8": BlackKing, "g7": BlackPawn, "h6": WhiteKnight,
		})
		want := []string{"g7g6", "g7g5", "g7h6"}
		var got []string
		for _, m := range b.LegalMoves() {
			if m.From() == sq("g7") {
				got = append(got, m.String())
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("g7 pawn moves mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPromotions(t *testing.T) {
	b := setup(t, White, NoCastling, map[string]Piece{
		"e1": WhiteKing, "h8": BlackKing, "b7": WhitePawn, "a8": BlackRook,
	})

	var got []string
	for _, m := range b.LegalMoves() {
		if m.From() == sq("b7") {
			got = append(got, m.String())
		}
	}
	want := []string{"b7b8q", "b7b8r", "b7b8b", "b7b8n", "b7a8q", "b7a8r", "b7a8b", "b7a8n"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("promotion moves mismatch (-want +got):\n%s", diff)
	}

	m := findMove(t, b, "b7a8n")
	before := b.Clone()
	u := b.MakeMove(m)
	if got := b.PieceAt(sq("a8")); got != WhiteKnight {
		t.Errorf("PieceAt(a8) = %v; want WhiteKnight", got)
	}
	if b.PieceCount(WhitePawn) != 0 || b.PieceCount(BlackRook) != 0 {
		t.Error("pawn or captured rook still counted")
	}
	if err := b.CheckBoard(); err != nil {
		t.Errorf("CheckBoard() after promotion = %v", err)
	}
	b.UnmakeMove(m, u)
	if !b.Equal(before) {
		t.Error("unmake of promotion did not restore the board")
	}
}

func TestEnPassant(t *testing.T) {
	b := setup(t, White, NoCastling, map[string]Piece{
		"e1": WhiteKing, "e8": BlackKing, "e2": WhitePawn, "d4": BlackPawn,
	})

	push := findMove(t, b, "e2e4")
	if !push.IsDoublePush() {
		t.Fatal("e2e4 not flagged as a double push")
	}
	b.MakeMove(push)
	if got := b.EnPassant(); got != sq("e3") {
		t.Fatalf("EnPassant() = %v; want e3", got)
	}
	if b.Key() != b.ComputeKey() {
		t.Error("key out of step after double push")
	}

	t.Run("capture", func(t *testing.T) {
		before := b.Clone()
		m := findMove(t, b, "d4e3")
		if !m.IsEnPassant() || m.Captured() != WhitePawn {
			t.Fatalf("d4e3 = %#x; want en passant capturing a white pawn", uint32(m))
		}
		u := b.MakeMove(m)
		if b.PieceAt(sq("e4")) != Empty {
			t.Error("captured pawn still on e4")
		}
		if b.PieceAt(sq("e3")) != BlackPawn {
			t.Error("capturing pawn not on e3")
		}
		if b.EnPassant() != NoSquare {
			t.Error("en passant target not cleared")
		}
		if err := b.CheckBoard(); err != nil {
			t.Errorf("CheckBoard() = %v", err)
		}
		b.UnmakeMove(m, u)
		if !b.Equal(before) {
			t.Error("unmake of en passant did not restore the board")
		}
	})

	t.Run("cleared by any other move", func(t *testing.T) {
		c := b.Clone()
		c.MakeMove(findMove(t, c, "e8d8"))
		if c.EnPassant() != NoSquare {
			t.Errorf("EnPassant() = %v; want none", c.EnPassant())
		}
		if c.Key() != c.ComputeKey() {
			t.Error("key out of step after clearing en passant")
		}
	})
}

func TestCastling(t *testing.T) {
	castlers := map[string]Piece{
		"e1": WhiteKing, "h1": WhiteRook, "a1": WhiteRook, "d5": BlackKing,
	}
	with := func(extra map[string]Piece) map[string]Piece {
		m := make(map[string]Piece)
		for k, v := range castlers {
			m[k] = v
		}
		for k, v := range extra {
			m[k] = v
		}
		return m
	}
	rights := WhiteKingside | WhiteQueenside

	tests := []struct {
		name      string
		extra     map[string]Piece
		rights    CastlingRights
		kingside  bool
		queenside bool
	}{
		{"both allowed", nil, rights, true, true},
		{"no rights", nil, NoCastling, false, false},
		{"kingside right only", nil, WhiteKingside, true, false},
		{"path blocked", map[string]Piece{"g1": WhiteKnight, "b1": WhiteKnight}, rights, false, false},
		{"transit square attacked", map[string]Piece{"f8": BlackRook}, rights, false, true},
		{"destination attacked", map[string]Piece{"c8": BlackRook}, rights, true, false},
		{"king in check", map[string]Piece{"e8": BlackRook}, rights, false, false},
		{"rook path square attacked", map[string]Piece{"b8": BlackRook}, rights, true, true},
		{"pawn attacks both sides", map[string]Piece{"e2": BlackPawn}, rights, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setup(t, White, tt.rights, with(tt.extra))
			moves := b.GeneratePseudoLegalMoves()
			if got := containsMove(moves, "e1g1"); got != tt.kingside {
				t.Errorf("kingside castle generated = %v; want %v", got, tt.kingside)
			}
			if got := containsMove(moves, "e1c1"); got != tt.queenside {
				t.Errorf("queenside castle generated = %v; want %v", got, tt.queenside)
			}
		})
	}

	t.Run("make and unmake", func(t *testing.T) {
		b := setup(t, White, rights, castlers)
		before := b.Clone()
		m := findMove(t, b, "e1g1")
		if !m.IsCastleKingside() {
			t.Fatal("e1g1 not flagged as kingside castle")
		}
		u := b.MakeMove(m)
		if b.PieceAt(G1) != WhiteKing || b.PieceAt(F1) != WhiteRook || b.PieceAt(H1) != Empty {
			t.Errorf("castled position wrong:\n%s", b)
		}
		if b.Castling() != NoCastling {
			t.Errorf("Castling() = %v; want -", b.Castling())
		}
		if err := b.CheckBoard(); err != nil {
			t.Errorf("CheckBoard() = %v", err)
		}
		b.UnmakeMove(m, u)
		if !b.Equal(before) {
			t.Error("unmake of castling did not restore the board")
		}
	})

	t.Run("rook move drops one right", func(t *testing.T) {
		b := setup(t, White, rights, castlers)
		b.MakeMove(findMove(t, b, "h1h2"))
		if got := b.Castling(); got != WhiteQueenside {
			t.Errorf("Castling() = %v; want Q", got)
		}
	})

	t.Run("rook capture drops the victim's right", func(t *testing.T) {
		b := setup(t, Black, AllCastling, map[string]Piece{
			"e1": WhiteKing, "h1": WhiteRook, "a1": WhiteRook,
			"e8": BlackKing, "h8": BlackRook, "a8": BlackRook,
		})
		b.MakeMove(findMove(t, b, "h8h1"))
		if got := b.Castling(); got != WhiteQueenside|BlackQueenside {
			t.Errorf("Castling() = %v; want Qq", got)
		}
	})
}

func TestHalfmoveClock(t *testing.T) {
	b := NewBoard()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for i := 0; i < 10; i++ {
		b.MakeMove(findMove(t, b, shuffle[i%len(shuffle)]))
	}
	if got := b.HalfmoveClock(); got != 10 {
		t.Errorf("HalfmoveClock() = %d; want 10", got)
	}
	if got := b.FullmoveNumber(); got != 6 {
		t.Errorf("FullmoveNumber() = %d; want 6", got)
	}

	b.MakeMove(findMove(t, b, "e2e4"))
	if got := b.HalfmoveClock(); got != 0 {
		t.Errorf("HalfmoveClock() after pawn move = %d; want 0", got)
	}
}

func TestHalfmoveClockPieceCapture(t *testing.T) {
	tests := []struct {
		name string
		move string
		want int
	}{
		{"rook capture", "d1d7", 0},
		{"knight capture", "c3b5", 0},
		{"quiet rook move", "d1d2", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setup(t, White, NoCastling, map[string]Piece{
				"g1": WhiteKing, "d1": WhiteRook, "c3": WhiteKnight,
				"g8": BlackKing, "d7": BlackBishop, "b5": BlackPawn,
			})
			b.halfmove = 7
			m := findMove(t, b, tt.move)
			before := b.Clone()

			u := b.MakeMove(m)
			if got := b.HalfmoveClock(); got != tt.want {
				t.Errorf("HalfmoveClock() after %s = %d; want %d", tt.move, got, tt.want)
			}
			b.UnmakeMove(m, u)
			if got := b.HalfmoveClock(); got != 7 {
				t.Errorf("HalfmoveClock() after unmake = %d; want 7", got)
			}
			if !b.Equal(before) {
				t.Error("unmake did not restore the board")
			}
		})
	}
}

func TestGenerateCaptures(t *testing.T) {
	b := setup(t, White, NoCastling, map[string]Piece{
		"e1": WhiteKing, "e8": BlackKing, "d4": WhiteQueen, "d7": BlackPawn, "g7": WhitePawn, "a4": BlackKnight,
	})
	var got []string
	for _, m := range b.GenerateCaptures() {
		got = append(got, m.String())
	}
	want := []string{"g7g8q", "g7g8r", "g7g8b", "g7g8n", "d4d7", "d4a4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateCaptures() mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendPseudoLegalMovesReusesBuffer(t *testing.T) {
	b := NewBoard()
	buf := make([]Move, 0, maxMoves)
	moves := b.AppendPseudoLegalMoves(buf)
	if len(moves) != 20 {
		t.Fatalf("len = %d; want 20", len(moves))
	}
	if &moves[0] != &buf[:1][0] {
		t.Error("AppendPseudoLegalMoves() did not reuse the buffer")
	}
}

func TestGameEndings(t *testing.T) {
	t.Run("fool's mate", func(t *testing.T) {
		b := NewBoard()
		for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
			b.MakeMove(findMove(t, b, uci))
		}
		if !b.InCheck() || !b.IsCheckmate() {
			t.Error("IsCheckmate() = false; want true")
		}
		if b.IsStalemate() {
			t.Error("IsStalemate() = true for checkmate")
		}
	})

	t.Run("stalemate", func(t *testing.T) {
		b := setup(t, Black, NoCastling, map[string]Piece{
			"a8": BlackKing, "b6": WhiteQueen, "e1": WhiteKing,
		})
		if !b.IsStalemate() {
			t.Error("IsStalemate() = false; want true")
		}
		if b.IsCheckmate() || b.HasLegalMoves() {
			t.Error("stalemated side reported moves or mate")
		}
	})

	t.Run("fifty-move rule", func(t *testing.T) {
		b := setup(t, White, NoCastling, map[string]Piece{"e1": WhiteKing, "e8": BlackKing, "a1": WhiteRook})
		b.halfmove = 99
		if b.IsFiftyMoveDraw() {
			t.Error("IsFiftyMoveDraw() at 99 half-moves")
		}
		b.MakeMove(findMove(t, b, "a1a2"))
		if !b.IsFiftyMoveDraw() {
			t.Error("IsFiftyMoveDraw() = false at 100 half-moves")
		}
	})
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]Piece
		want   bool
	}{
		{"K vs K", map[string]Piece{}, true},
		{"KN vs K", map[string]Piece{"b1": WhiteKnight}, true},
		{"KB vs K", map[string]Piece{"c8": BlackBishop}, true},
		{"KB vs KB same colour", map[string]Piece{"c1": WhiteBishop, "f8": BlackBishop}, true},
		{"KB vs KB opposite colour", map[string]Piece{"c1": WhiteBishop, "c8": BlackBishop}, false},
		{"KNN vs K", map[string]Piece{"b1": WhiteKnight, "g1": WhiteKnight}, false},
		{"KR vs K", map[string]Piece{"a1": WhiteRook}, false},
		{"KP vs K", map[string]Piece{"a2": WhitePawn}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := map[string]Piece{"e1": WhiteKing, "e8": BlackKing}
			for k, v := range tt.pieces {
				pieces[k] = v
			}
			b := setup(t, White, NoCastling, pieces)
			if got := b.HasInsufficientMaterial(); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestUnmakeMismatchPanics(t *testing.T) {
	b := NewBoard()
	u := b.MakeMove(findMove(t, b, "e2e4"))
	defer func() {
		if recover() == nil {
			t.Error("UnmakeMove with a mismatched state did not panic")
		}
	}()
	b.UnmakeMove(NewMove(sq("d2"), sq("d4"), WhitePawn, Empty, Empty, FlagDoublePush), u)
}

func BenchmarkGeneratePseudoLegalMoves(b *testing.B) {
	board := NewBoard()
	buf := make([]Move, 0, maxMoves)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.AppendPseudoLegalMoves(buf[:0])
	}
}

func BenchmarkPerft3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		perft(b, NewBoard(), 3)
	}
}
