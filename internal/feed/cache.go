// AngelaMos | 2026
// cache.go

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs mirror how volatile each feed is.
const (
	energyTTL   = time.Hour
	weatherTTL  = 30 * time.Minute
	economicTTL = 2 * time.Hour
	globalTTL   = 3 * time.Hour
)

const cacheKeyPrefix = "feed:"

// Cache wraps redis for feed snapshots. A redis outage never breaks a
// feed; the caller just rebuilds the payload uncached.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewCache(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

// getOrBuild returns the cached payload for key, or builds and caches a
// fresh one.
func getOrBuild[T any](
	ctx context.Context,
	c *Cache,
	key string,
	ttl time.Duration,
	build func() T,
) T {
	fullKey := cacheKeyPrefix + key

	raw, err := c.client.Get(ctx, fullKey).Bytes()
	if err == nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached
		}
		c.logger.Warn("corrupt feed cache entry, rebuilding", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("feed cache read failed", "key", key, "error", err)
	}

	fresh := build()

	payload, err := json.Marshal(fresh)
	if err != nil {
		c.logger.Warn("feed cache marshal failed", "key", key, "error", err)
		return fresh
	}

	if err := c.client.Set(ctx, fullKey, payload, ttl).Err(); err != nil {
		c.logger.Warn("feed cache write failed", "key", key, "error", err)
	}

	return fresh
}
