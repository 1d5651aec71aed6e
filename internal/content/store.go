package content

import "sync/atomic"

// Store holds the content currently served. Readers always see a complete,
// validated document; Swap replaces it atomically.
type Store struct {
	current atomic.Pointer[Content]
}

// NewStore returns a store serving c.
func NewStore(c *Content) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Load returns the current document.
func (s *Store) Load() *Content {
	return s.current.Load()
}

// Swap installs c and returns the previous document.
func (s *Store) Swap(c *Content) *Content {
	return s.current.Swap(c)
}
