// Package redis caches shop data in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/swipeshop/swipe-feed/internal/datasources"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

const catalogKey = "swipe-feed:catalog"

// Connect creates a Redis client and verifies the connection.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// CachedCatalog serves the catalog of the wrapped shop from Redis for ttl.
// Every other operation goes straight to the wrapped shop. Cache failures are logged and fall through.
type CachedCatalog struct {
	datasources.ShopRepository

	client *redis.Client
	ttl    time.Duration
}

var _ datasources.ShopRepository = (*CachedCatalog)(nil)

func NewCachedCatalog(shop datasources.ShopRepository, client *redis.Client, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		ShopRepository: shop,
		client:         client,
		ttl:            ttl,
	}
}

func (c *CachedCatalog) FetchCatalog(ctx context.Context) ([]domain.Item, error) {
	logger := domain.LoggerFromContext(ctx)

	items, err := c.cached(ctx)
	switch {
	case err == nil:
		return items, nil
	case !errors.Is(err, redis.Nil):
		logger.WarnContext(ctx, "failed to read cached catalog", "error", err)
	}

	items, err = c.ShopRepository.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, items); err != nil {
		logger.WarnContext(ctx, "failed to cache catalog", "error", err)
	}
	return items, nil
}

// Invalidate drops the cached catalog so the next fetch reaches the shop.
func (c *CachedCatalog) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("redis del catalog: %w", err)
	}
	return nil
}

func (c *CachedCatalog) cached(ctx context.Context) ([]domain.Item, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, err
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return items, nil
}

func (c *CachedCatalog) store(ctx context.Context, items []domain.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set catalog: %w", err)
	}
	return nil
}
