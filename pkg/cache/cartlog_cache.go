package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/linentrack/services/cartlog/domain/models"
)

const (
	// CartLogCacheTTL is the time-to-live for cached cart-log views.
	CartLogCacheTTL = 1 * time.Hour

	cartLogCacheKeyPrefix = "cartlog"
)

// CartLogCache stores read-side cart-log projections in Redis as JSON.
// The projection is nested (catalog sub-objects plus line items), so a
// single JSON value replaces the flat-hash layout used for simpler models.
// Entries are invalidated on every mutation and by the worker when it
// consumes cart-log events.
type CartLogCache struct {
	client *RedisClient
}

// NewCartLogCache creates a CartLogCache backed by the given RedisClient.
func NewCartLogCache(r *RedisClient) *CartLogCache {
	return &CartLogCache{client: r}
}

// Get retrieves a cached view by cart-log id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *CartLogCache) Get(ctx context.Context, cartLogID int64) (*models.CartLogView, error) {
	data, err := c.client.Client().Get(ctx, c.key(cartLogID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var view models.CartLogView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("cache unmarshal: %w", err)
	}
	return &view, nil
}

// Set writes a view with the standard TTL.
func (c *CartLogCache) Set(ctx context.Context, view *models.CartLogView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(view.ID), data, CartLogCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached view.
func (c *CartLogCache) Delete(ctx context.Context, cartLogID int64) error {
	if err := c.client.Client().Del(ctx, c.key(cartLogID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "cartlog:{id}"
func (c *CartLogCache) key(cartLogID int64) string {
	return fmt.Sprintf("%s:%d", cartLogCacheKeyPrefix, cartLogID)
}
