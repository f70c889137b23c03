package classname

import "sync"

// Store holds the class names of the most recently loaded stylesheet
type Store struct {
	mu    sync.RWMutex
	names []string
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{names: []string{}}
}

// Replace swaps the stored names for a new sequence. The previous slice is never
// modified, so snapshots handed out by Names stay valid.
func (s *Store) Replace(names []string) {
	if names == nil {
		names = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = names
}

// Names returns the current snapshot. Callers must not modify it.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.names
}

// Len returns the number of stored names
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}

// Match filters the current snapshot by prefix
func (s *Store) Match(prefix string) []string {
	return MatchPrefix(s.Names(), prefix)
}
