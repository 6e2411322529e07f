package chess

// Key is a Zobrist position key: independent random values for each
// piece on each square, the side to move, each of the 16 castling states
// and each en-passant file, combined with XOR. The same position always
// yields the same key, and applying then reversing a change restores it.
type Key uint64

var (
	pieceKeys     [NumPieces][NumSquares]Key
	sideKey       Key
	castleKeys    [16]Key
	enPassantKeys [BoardSize]Key
)

func init() {
	seed := uint64(0x9E3779B97F4A7C15)
	next := func() Key {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return Key(z ^ (z >> 31))
	}

	// pieceKeys[Empty] stays zero so hashing an empty square is a no-op.
	for p := WhitePawn; p <= BlackKing; p++ {
		for s := 0; s < NumSquares; s++ {
			pieceKeys[p][s] = next()
		}
	}
	sideKey = next()
	for i := range castleKeys {
		castleKeys[i] = next()
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = next()
	}
}

// enPassantKey returns the contribution of an en-passant target.
func enPassantKey(s Square64) Key {
	if s == NoSquare {
		return 0
	}
	return enPassantKeys[FileOf(s)]
}

// ComputeKey recomputes the position key from scratch. The board keeps
// its key up to date incrementally; this is used when building a board
// and by CheckBoard.
func (b *Board) ComputeKey() Key {
	var k Key
	for s := Square64(0); s < NumSquares; s++ {
		k ^= pieceKeys[b.squares[ToSquare120(s)]][s]
	}
	if b.side == Black {
		k ^= sideKey
	}
	k ^= castleKeys[b.castling]
	k ^= enPassantKey(b.enPassant)
	return k
}
