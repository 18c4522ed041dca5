package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions maps session ids to carts. A request presenting an unknown
// or empty id is given a fresh cart under a new id.
type Sessions struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewSessions creates an empty session registry
func NewSessions() *Sessions {
	return &Sessions{
		carts: make(map[string]*Cart),
	}
}

// Get returns the cart for the given session id, creating a new
// session when the id is empty or unknown. The returned id is the one
// the caller should present on subsequent requests.
func (s *Sessions) Get(id string) (string, *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if c, ok := s.carts[id]; ok {
			return id, c
		}
	}

	id = uuid.New().String()
	c := New()
	s.carts[id] = c
	return id, c
}

// Lookup returns the cart for an existing session, or false when the
// session is unknown
func (s *Sessions) Lookup(id string) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	return c, ok
}
