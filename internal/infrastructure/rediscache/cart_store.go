package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain/cart"
)

var _ ports.CartStore = (*CartStore)(nil)

const cartKeyPrefix = "cart:"

// CartStore carritos serializados como JSON bajo cart:{id}. Cada escritura renueva el TTL.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore crea el almacén. ttl <= 0 deja las claves sin vencimiento.
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

// Get lee el carrito; si la clave no existe devuelve uno vacío.
func (s *CartStore) Get(ctx context.Context, cartID string) (*cart.Cart, error) {
	val, err := s.client.Get(ctx, cartKeyPrefix+cartID).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	c := cart.New()
	if err := json.Unmarshal(val, c); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if c.Items == nil {
		c.Items = []cart.Item{}
	}
	return c, nil
}

// Save guarda el carrito y renueva el TTL.
func (s *CartStore) Save(ctx context.Context, cartID string, c *cart.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+cartID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Delete borra el carrito.
func (s *CartStore) Delete(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+cartID).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
