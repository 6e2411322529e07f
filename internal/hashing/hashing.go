// Package hashing tracks position keys seen during a search, for counting
// distinct positions and spotting transpositions.
package hashing

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// KeySet records distinct position keys.
type KeySet struct {
	// seen maps each key to the number of times it was added
	seen map[chess.Key]int
	// duplicateCount tracks adds of an already present key
	duplicateCount int
	// maxCapacity limits the number of distinct keys (0 = unlimited)
	maxCapacity int
	// dropped is set once a new key has been refused for lack of room
	dropped bool
}

// NewKeySet creates an empty set. maxCapacity of 0 means unlimited
// capacity; once full, new keys are counted as dropped rather than stored.
func NewKeySet(maxCapacity int) *KeySet {
	return &KeySet{
		seen:        make(map[chess.Key]int),
		maxCapacity: maxCapacity,
	}
}

// Add records key. It returns true if key had not been seen before and
// was stored.
func (s *KeySet) Add(key chess.Key) bool {
	if _, ok := s.seen[key]; ok {
		s.seen[key]++
		s.duplicateCount++
		return false
	}
	if s.IsFull() {
		s.dropped = true
		return false
	}
	s.seen[key] = 1
	return true
}

// AddBoard records the key of b's current position.
func (s *KeySet) AddBoard(b *chess.Board) bool {
	return s.Add(b.Key())
}

// UniqueCount returns the number of distinct keys stored.
func (s *KeySet) UniqueCount() int {
	return len(s.seen)
}

// DuplicateCount returns the number of adds of keys already present.
func (s *KeySet) DuplicateCount() int {
	return s.duplicateCount
}

// IsFull returns true if the set has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (s *KeySet) IsFull() bool {
	return s.maxCapacity > 0 && len(s.seen) >= s.maxCapacity
}

// Dropped reports whether a new key was ever refused because the set was
// full. A set that fills up exactly without refusing anything is not
// dropped.
func (s *KeySet) Dropped() bool {
	return s.dropped
}

// Merge adds every key of other to s, preserving occurrence counts. Keys
// that no longer fit are dropped, and a dropped other leaves s dropped.
func (s *KeySet) Merge(other *KeySet) {
	if other.dropped {
		s.dropped = true
	}
	for key, n := range other.seen {
		if _, ok := s.seen[key]; ok {
			s.seen[key] += n
			s.duplicateCount += n
			continue
		}
		if s.IsFull() {
			s.dropped = true
			continue
		}
		s.seen[key] = n
		s.duplicateCount += n - 1
	}
}
