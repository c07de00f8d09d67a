// Package cache provides an optional redis-backed copy of the product list.
// The catalog pipeline always recomputes filter/sort/pagination from the
// cached full list, so a cache hit can never serve a stale derivation —
// only a product list up to TTL old, which matches the fixture's
// immutable-per-session contract.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"shopflow/internal/domain"
)

const productsKey = "shopflow:catalog:products"

// Products is a read-through cache for the full product list.
type Products struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

// NewProducts builds the cache around an existing redis client.
func NewProducts(client *redis.Client, ttl time.Duration, logger *log.Logger) *Products {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Products{client: client, ttl: ttl, logger: logger}
}

// Connect dials redis and verifies connectivity with a ping.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Get returns the cached product list and true on a hit. Errors are logged
// and reported as misses; the caller falls back to the repository.
func (c *Products) Get(ctx context.Context) ([]domain.Product, bool) {
	data, err := c.client.Get(ctx, productsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Printf("product cache: get error=%v", err)
		}
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Printf("product cache: decode error=%v", err)
		return nil, false
	}
	return products, true
}

// Set stores the product list with the configured TTL.
func (c *Products) Set(ctx context.Context, products []domain.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		c.logger.Printf("product cache: encode error=%v", err)
		return
	}
	if err := c.client.Set(ctx, productsKey, data, c.ttl).Err(); err != nil {
		c.logger.Printf("product cache: set error=%v", err)
	}
}

// Invalidate drops the cached list, forcing the next read through to the
// repository. Seed and import runs call this.
func (c *Products) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, productsKey).Err(); err != nil && err != redis.Nil {
		c.logger.Printf("product cache: invalidate error=%v", err)
	}
}
