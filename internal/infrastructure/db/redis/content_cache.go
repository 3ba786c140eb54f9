package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cachePrefix     = "public:"
	defaultCacheTTL = time.Minute
)

// ContentCache is a TTL'd byte cache for public insights responses, keyed by
// endpoint plus query. Public pages always read through it; protected pages
// never do.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewContentCache creates a ContentCache with the given entry TTL.
func NewContentCache(client *redis.Client, ttl time.Duration) *ContentCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ContentCache{client: client, ttl: ttl}
}

// Get returns the cached payload, reporting a miss with (nil, false, nil).
func (c *ContentCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return raw, true, nil
}

// Set stores the payload for the configured TTL.
func (c *ContentCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, cacheKey(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops one entry ahead of its TTL, used after writes that must
// be visible immediately (a freshly posted comment).
func (c *ContentCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, cacheKey(key)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func cacheKey(key string) string {
	return cachePrefix + key
}
