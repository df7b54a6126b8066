package numberset

import (
	"sync"
	"time"
)

// Set is the authoritative collection of entries. All four operations run
// under one exclusive lock; the lock is held for exactly one operation and
// never across anything that can block.
type Set struct {
	mu   sync.Mutex
	tree *RBTree
	now  func() time.Time
}

// New creates an empty set. Each instance is independent; nothing in this
// package is process-global.
func New() *Set {
	return &Set{
		tree: NewRBTree(),
		now:  time.Now,
	}
}

// Insert stores number with the current wall-clock time. It returns
// ErrBelowMinimum for numbers under MinNumber and ErrDuplicate if the
// number is already present; in both cases the set is unchanged.
func (s *Set) Insert(number uint64) (Entry, error) {
	if number < MinNumber {
		return Entry{}, ErrBelowMinimum
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{
		Number:     number,
		InsertedAt: s.now().Truncate(time.Second),
	}
	if !s.tree.Insert(number, entry) {
		return Entry{}, ErrDuplicate
	}
	return entry, nil
}

// Delete removes number. It returns ErrNotFound, with no mutation, if the
// number is not present.
func (s *Set) Delete(number uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tree.Delete(number) {
		return ErrNotFound
	}
	return nil
}

// List returns every entry in ascending number order. The slice is a
// snapshot; callers may hold it without blocking the set.
func (s *Set) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, s.tree.Size())
	s.tree.ForEachAscending(func(e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Clear removes every entry and returns how many were removed.
func (s *Set) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.tree.Size()
	s.tree.Clear()
	return removed
}

// Len reports the number of live entries.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Size()
}
