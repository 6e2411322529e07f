package perft

import "github.com/lgbarn/chesscore-go/internal/chess"

// Counts classifies the moves that reach the leaves of a perft tree, in
// the columns of the usual published perft tables.
type Counts struct {
	Nodes      int64 `json:"nodes"`
	Captures   int64 `json:"captures"`
	EnPassant  int64 `json:"en_passant"`
	Castles    int64 `json:"castles"`
	Promotions int64 `json:"promotions"`
	Checks     int64 `json:"checks"`
	Checkmates int64 `json:"checkmates"`
}

// Add accumulates o into c.
func (c *Counts) Add(o Counts) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
	c.Checks += o.Checks
	c.Checkmates += o.Checkmates
}

// Stats counts the leaves depth plies below b and classifies the last move
// played to reach each. At depth 0 only the root node is counted.
func Stats(b *chess.Board, depth int) Counts {
	var c Counts
	if depth == 0 {
		c.Nodes = 1
		return c
	}
	stats(b, depth, &c)
	return c
}

func stats(b *chess.Board, depth int, c *Counts) {
	for _, m := range b.LegalMoves() {
		u := b.MakeMove(m)
		if depth > 1 {
			stats(b, depth-1, c)
		} else {
			classify(b, m, c)
		}
		b.UnmakeMove(m, u)
	}
}

// classify records the leaf reached by m; b is the position after m.
func classify(b *chess.Board, m chess.Move, c *Counts) {
	c.Nodes++
	if m.IsCapture() {
		c.Captures++
	}
	if m.IsEnPassant() {
		c.EnPassant++
	}
	if m.IsCastle() {
		c.Castles++
	}
	if m.IsPromotion() {
		c.Promotions++
	}
	if b.InCheck() {
		c.Checks++
		if !b.HasLegalMoves() {
			c.Checkmates++
		}
	}
}
