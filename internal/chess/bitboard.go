package chess

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, bit i standing for Square64 i.
type Bitboard uint64

// Set returns bb with s added.
func (bb Bitboard) Set(s Square64) Bitboard { return bb | 1<<uint(s) }

// Clear returns bb with s removed.
func (bb Bitboard) Clear(s Square64) Bitboard { return bb &^ (1 << uint(s)) }

// Has reports whether s is in bb.
func (bb Bitboard) Has(s Square64) bool { return bb&(1<<uint(s)) != 0 }

// Count returns the number of squares in bb.
func (bb Bitboard) Count() int { return bits.OnesCount64(uint64(bb)) }

// PopLSB removes the lowest square from bb and returns it.
func (bb *Bitboard) PopLSB() Square64 {
	s := Square64(bits.TrailingZeros64(uint64(*bb)))
	*bb &= *bb - 1
	return s
}

// String draws the set as an 8x8 grid, rank 8 first.
func (bb Bitboard) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			if bb.Has(NewSquare(file, rank)) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
