package chess

// UndoState holds what MakeMove cannot recover from the move alone. It is
// returned by MakeMove and must be handed back to UnmakeMove with the
// same move.
type UndoState struct {
	Move           Move
	Castling       CastlingRights
	EnPassant      Square64
	HalfmoveClock  int
	FullmoveNumber int
	Captured       Piece
	Key            Key
}

// enPassantVictim returns the square of the pawn removed by an en-passant
// capture landing on to.
func enPassantVictim(to Square64, mover Colour) Square64 {
	if mover == White {
		return to - BoardSize
	}
	return to + BoardSize
}

// MakeMove applies a pseudo-legal move generated for this board and
// returns the state needed to reverse it. The move is not checked for
// legality; the mover's king may be left attacked.
func (b *Board) MakeMove(m Move) UndoState {
	u := UndoState{
		Move:           m,
		Castling:       b.castling,
		EnPassant:      b.enPassant,
		HalfmoveClock:  b.halfmove,
		FullmoveNumber: b.fullmove,
		Captured:       m.Captured(),
		Key:            b.key,
	}

	from, to := m.From(), m.To()
	us := b.side

	b.key ^= castleKeys[b.castling] ^ enPassantKey(b.enPassant)

	switch {
	case m.IsEnPassant():
		b.removePiece(enPassantVictim(to, us))
	case m.IsCapture():
		b.removePiece(to)
	}

	if m.IsCastle() {
		rf, rt := castleRookSquares(to)
		b.movePiece(rf, rt)
	}

	b.movePiece(from, to)

	if promo := m.Promotion(); promo != Empty {
		b.removePiece(to)
		b.addPiece(to, promo)
	}

	b.castling &= castleMask[from] & castleMask[to]

	b.enPassant = NoSquare
	if m.IsDoublePush() {
		b.enPassant = (from + to) / 2
	}

	if m.IsIrreversible() {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == Black {
		b.fullmove++
	}

	b.side = us.Opposite()
	b.key ^= sideKey ^ castleKeys[b.castling] ^ enPassantKey(b.enPassant)
	return u
}

// UnmakeMove reverses MakeMove. u must be the state MakeMove returned for
// m on this board, with every later move already unmade; a mismatched
// pair panics.
func (b *Board) UnmakeMove(m Move, u UndoState) {
	if u.Move != m {
		panic("chess: UnmakeMove " + m.String() + " with undo state for " + u.Move.String())
	}

	from, to := m.From(), m.To()
	b.side = b.side.Opposite()

	if m.IsPromotion() {
		b.removePiece(to)
		b.addPiece(to, m.Piece())
	}

	b.movePiece(to, from)

	if m.IsCastle() {
		rf, rt := castleRookSquares(to)
		b.movePiece(rt, rf)
	}

	switch {
	case m.IsEnPassant():
		b.addPiece(enPassantVictim(to, b.side), u.Captured)
	case u.Captured != Empty:
		b.addPiece(to, u.Captured)
	}

	b.castling = u.Castling
	b.enPassant = u.EnPassant
	b.halfmove = u.HalfmoveClock
	b.fullmove = u.FullmoveNumber
	b.key = u.Key
}

// IsMoveLegal reports whether the pseudo-legal move m leaves the mover's
// king safe. The board is returned to its prior state.
func (b *Board) IsMoveLegal(m Move) bool {
	us := b.side
	u := b.MakeMove(m)
	legal := !b.IsSquareAttacked(b.kings[us], us.Opposite())
	b.UnmakeMove(m, u)
	return legal
}
