package chess

// Square64 is a dense square index: a1 = 0, b1 = 1, ..., h8 = 63.
type Square64 int8

// Square120 is an index into the padded 10x12 board. The playable squares
// occupy 21..98; every other cell holds OffBoard.
type Square120 int8

// Constants for board dimensions and coordinates.
const (
	BoardSize     = 8
	NumSquares    = 64
	NumSquares120 = 120
	Hedge         = 2 // Border depth above and below; one column each side

	// NoSquare marks the absence of a square (no en-passant target, or a
	// border cell that has no 64-cell equivalent).
	NoSquare Square64 = -1
)

// Named squares used by the castling and pawn rules.
const (
	A1 Square64 = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A8 Square64 = 56 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

var (
	sq64To120 [NumSquares]Square120
	sq120To64 [NumSquares120]Square64
)

func init() {
	for i := range sq120To64 {
		sq120To64[i] = NoSquare
	}
	for s := Square64(0); s < NumSquares; s++ {
		q := Square120(21 + int(s) + int(s)/BoardSize*2)
		sq64To120[s] = q
		sq120To64[q] = s
	}
}

// ToSquare120 maps a dense square to its padded-board cell.
func ToSquare120(s Square64) Square120 {
	return sq64To120[s]
}

// ToSquare64 maps a padded-board cell back to its dense square. Border
// cells and out-of-range values return NoSquare.
func ToSquare64(q Square120) Square64 {
	if q < 0 || int(q) >= NumSquares120 {
		return NoSquare
	}
	return sq120To64[q]
}

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square64 {
	return Square64(rank*BoardSize + file)
}

// FileOf returns the 0-based file (a = 0) of s.
func FileOf(s Square64) int {
	return int(s) % BoardSize
}

// RankOf returns the 0-based rank (rank 1 = 0) of s.
func RankOf(s Square64) int {
	return int(s) / BoardSize
}

// Offset returns the cell deltaFile files and deltaRank ranks away from q.
// It is plain arithmetic: the caller checks the result against OffBoard.
func Offset(q Square120, deltaFile, deltaRank int) Square120 {
	return q + Square120(deltaFile+deltaRank*10)
}

// Distance is the king-move distance between two squares.
func Distance(a, b Square64) int {
	df := abs(FileOf(a) - FileOf(b))
	dr := abs(RankOf(a) - RankOf(b))
	return max(df, dr)
}

// String returns the algebraic name of the square ("e4"), or "-" for
// NoSquare.
func (s Square64) String() string {
	if s < 0 || s >= NumSquares {
		return "-"
	}
	return string([]byte{byte('a' + FileOf(s)), byte('1' + RankOf(s))})
}

// Valid reports whether s names a playable square.
func (s Square64) Valid() bool {
	return s >= 0 && s < NumSquares
}

// delta converts a file/rank step into a padded-board offset.
func delta(deltaFile, deltaRank int) Square120 {
	return Offset(0, deltaFile, deltaRank)
}

// Movement tables, expressed as padded-board offsets.
var (
	knightDeltas = [8]Square120{
		delta(1, 2), delta(2, 1), delta(2, -1), delta(1, -2),
		delta(-1, -2), delta(-2, -1), delta(-2, 1), delta(-1, 2),
	}
	kingDeltas = [8]Square120{
		delta(0, 1), delta(1, 1), delta(1, 0), delta(1, -1),
		delta(0, -1), delta(-1, -1), delta(-1, 0), delta(-1, 1),
	}
	bishopDeltas = [4]Square120{delta(1, 1), delta(1, -1), delta(-1, -1), delta(-1, 1)}
	rookDeltas   = [4]Square120{delta(0, 1), delta(1, 0), delta(0, -1), delta(-1, 0)}
)

// pawnPush is the forward step for each colour; pawnCaptures the two
// diagonal capture steps.
var (
	pawnPush     = [2]Square120{delta(0, 1), delta(0, -1)}
	pawnCaptures = [2][2]Square120{
		{delta(-1, 1), delta(1, 1)},
		{delta(-1, -1), delta(1, -1)},
	}
)

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
