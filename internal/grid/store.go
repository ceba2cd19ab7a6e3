package grid

import "sync"

// Store is a mutable Provider: it holds the current snapshot and swaps
// it atomically when the visible row or column set changes. An optional
// change callback runs synchronously after each swap, outside the lock.
type Store struct {
	mu       sync.Mutex
	snap     *Snapshot
	onChange func(*Snapshot)
}

// NewStore creates a store seeded with the given snapshot.
// A nil snapshot is replaced by the empty snapshot.
func NewStore(snap *Snapshot) *Store {
	if snap == nil {
		snap = EmptySnapshot()
	}
	return &Store{snap: snap}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// OnChange registers a callback invoked after every Replace.
// Only one callback is supported; later registrations overwrite earlier ones.
func (s *Store) OnChange(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Replace publishes a new snapshot. A nil snapshot is replaced by the
// empty snapshot.
func (s *Store) Replace(snap *Snapshot) {
	if snap == nil {
		snap = EmptySnapshot()
	}
	s.mu.Lock()
	s.snap = snap
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}
