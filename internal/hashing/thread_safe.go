package hashing

import (
	"sync"
)

// ThreadSafeKeySet wraps KeySet with mutex protection for concurrent access.
// Workers fill a private KeySet without locking and Merge it once at the
// end.
type ThreadSafeKeySet struct {
	set *KeySet
	mu  sync.RWMutex
}

// NewThreadSafeKeySet creates a new thread-safe set.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeKeySet(maxCapacity int) *ThreadSafeKeySet {
	return &ThreadSafeKeySet{
		set: NewKeySet(maxCapacity),
	}
}

// Merge folds a worker-local set into the shared one.
func (s *ThreadSafeKeySet) Merge(other *KeySet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Merge(other)
}

// UniqueCount returns the number of distinct keys stored.
func (s *ThreadSafeKeySet) UniqueCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.UniqueCount()
}

// DuplicateCount returns the number of adds of keys already present.
func (s *ThreadSafeKeySet) DuplicateCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.DuplicateCount()
}

// Dropped reports whether any key was refused for lack of room.
func (s *ThreadSafeKeySet) Dropped() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Dropped()
}
