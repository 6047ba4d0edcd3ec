package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain/cart"
)

var _ ports.CartStore = (*CartStore)(nil)

// CartStore carritos en memoria.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]cart.Cart
}

// NewCartStore crea el almacén vacío.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]cart.Cart)}
}

func (s *CartStore) Get(_ context.Context, cartID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[cartID]
	if !ok {
		return cart.New(), nil
	}
	c.Items = append([]cart.Item{}, c.Items...)
	return &c, nil
}

func (s *CartStore) Save(_ context.Context, cartID string, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cartID] = cart.Cart{Items: append([]cart.Item{}, c.Items...)}
	return nil
}

func (s *CartStore) Delete(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
	return nil
}
