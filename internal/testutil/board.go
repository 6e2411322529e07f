package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/fen"
)

// Well-known perft positions.
const (
	Kiwipete   = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3  = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4  = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5  = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	EnPassant  = "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	Promotions = "1n5k/P7/8/8/8/8/8/7K w - - 0 1"
)

// MustBoard parses a FEN string and returns the board.
// It calls t.Fatal if the FEN is rejected.
func MustBoard(t testing.TB, s string) *chess.Board {
	t.Helper()
	b, err := fen.NewBoard(s)
	if err != nil {
		t.Fatalf("fen.NewBoard(%q): %v", s, err)
	}
	return b
}

// ApplyMoves plays a space-separated list of long-algebraic moves on b,
// recording them on stack when it is not nil. It calls t.Fatal on the
// first illegal move.
func ApplyMoves(t testing.TB, b *chess.Board, stack *chess.UndoStack, moves string) {
	t.Helper()
	for _, s := range strings.Fields(moves) {
		m, err := fen.ParseMove(b, s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if stack != nil {
			stack.Push(b, m)
		} else {
			b.MakeMove(m)
		}
	}
}
