package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"verduleria/models"

	"github.com/redis/go-redis/v9"
)

const cartTTL = 24 * time.Hour

// CartStore holds session carts keyed by the session token. Carts live in
// Redis when it is available and in an in-process map otherwise; either way
// the cart itself is a plain value the services never see the storage of.
type CartStore struct {
	mu  sync.RWMutex
	mem map[string]models.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{mem: map[string]models.Cart{}}
}

func cartKey(token string) string {
	return "cart:" + token
}

func (s *CartStore) Get(ctx context.Context, token string) (models.Cart, error) {
	if models.RedisClient != nil {
		data, err := models.RedisClient.Get(ctx, cartKey(token)).Bytes()
		if errors.Is(err, redis.Nil) {
			return models.Cart{}, nil
		}
		if err != nil {
			return models.Cart{}, fmt.Errorf("load cart: %w", err)
		}
		var cart models.Cart
		if err := json.Unmarshal(data, &cart); err != nil {
			return models.Cart{}, fmt.Errorf("decode cart: %w", err)
		}
		return cart, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mem[token], nil
}

func (s *CartStore) Save(ctx context.Context, token string, cart models.Cart) error {
	if models.RedisClient != nil {
		data, err := json.Marshal(cart)
		if err != nil {
			return fmt.Errorf("encode cart: %w", err)
		}
		if err := models.RedisClient.Set(ctx, cartKey(token), data, cartTTL).Err(); err != nil {
			return fmt.Errorf("save cart: %w", err)
		}
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mem[token] = cart
	return nil
}

func (s *CartStore) Clear(ctx context.Context, token string) error {
	if models.RedisClient != nil {
		if err := models.RedisClient.Del(ctx, cartKey(token)).Err(); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.mem, token)
	return nil
}
