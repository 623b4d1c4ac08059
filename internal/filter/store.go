package filter

import "sync"

// Store holds the live filter state of one session. The state is replaced
// wholesale on each dispatch; readers always see a complete state.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates a store in the initial state.
func NewStore() *Store {
	return &Store{state: Initial()}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Dispatch reduces the current state with a and returns the new state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state.Clone()
}
