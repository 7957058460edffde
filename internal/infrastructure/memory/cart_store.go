package memory

import (
	"context"
	"sync"

	"github.com/skumaran/petti-kadai-api/internal/application/sales"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
)

var _ sales.CartStore = (*CartStore)(nil)

// CartStore keeps session carts in process memory. Used when no Redis
// address is configured and in tests. Carts do not survive a restart.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string][]entity.CartItem
}

// NewCartStore builds an empty in-memory cart store.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string][]entity.CartItem)}
}

// Get returns a copy of the user's cart, empty when none is stored.
func (s *CartStore) Get(_ context.Context, userID string) ([]entity.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.carts[userID]
	if !ok {
		return nil, nil
	}
	out := make([]entity.CartItem, len(items))
	copy(out, items)
	return out, nil
}

// Save stores a copy of the cart. An empty cart clears the entry.
func (s *CartStore) Save(_ context.Context, userID string, items []entity.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(items) == 0 {
		delete(s.carts, userID)
		return nil
	}
	stored := make([]entity.CartItem, len(items))
	copy(stored, items)
	s.carts[userID] = stored
	return nil
}

// Clear removes the user's cart.
func (s *CartStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}
