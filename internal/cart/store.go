package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps one cart per browsing session, in memory only. Carts live for
// the lifetime of the process; session state is not durable.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns a snapshot of the session's cart. A session with no cart yet
// gets an empty one, so readers never see "not found".
func (s *Store) Get(sessionID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.getLocked(sessionID))
}

// Update applies fn to the session's cart under the store lock and returns
// the resulting snapshot. All handler mutations go through here so no
// reader ever observes a half-updated cart.
func (s *Store) Update(sessionID string, fn func(*Cart)) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.getLocked(sessionID)
	fn(c)
	return snapshot(c)
}

// Clear empties the session's cart.
func (s *Store) Clear(sessionID string) Cart {
	return s.Update(sessionID, func(c *Cart) { c.Clear() })
}

func (s *Store) getLocked(sessionID string) *Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			UpdatedAt: time.Now().UTC(),
		}
		s.carts[sessionID] = c
	}
	return c
}

func snapshot(c *Cart) Cart {
	out := *c
	out.Items = make([]Item, len(c.Items))
	copy(out.Items, c.Items)
	return out
}
