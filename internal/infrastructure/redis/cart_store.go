package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/skumaran/petti-kadai-api/internal/application/sales"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
)

var _ sales.CartStore = (*CartStore)(nil)

// cartTTL keeps abandoned carts from accumulating. Every save renews it.
const cartTTL = 24 * time.Hour

// CartStore keeps session carts in Redis, one JSON value per user.
type CartStore struct {
	client *redis.Client
}

// NewCartStore connects a cart store to the given Redis server.
func NewCartStore(addr, password string, db int) *CartStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &CartStore{client: client}
}

func (s *CartStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *CartStore) Close() error {
	return s.client.Close()
}

func cartKey(userID string) string {
	return "cart:" + userID
}

// Get returns the user's cart, empty when none is stored.
func (s *CartStore) Get(ctx context.Context, userID string) ([]entity.CartItem, error) {
	val, err := s.client.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var items []entity.CartItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

// Save stores the cart and renews its TTL. An empty cart clears the key.
func (s *CartStore) Save(ctx context.Context, userID string, items []entity.CartItem) error {
	if len(items) == 0 {
		return s.Clear(ctx, userID)
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(userID), payload, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Clear removes the user's cart.
func (s *CartStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
