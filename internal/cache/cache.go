// Package cache stores rendered public list pages in Redis.
//
// Entries are addressed by resource, a per-resource version number and a
// hash of the list descriptor key. Writes to a resource bump its version,
// which orphans every cached page at once; orphans expire through their TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

// ListCache caches JSON-encodable list results per resource.
type ListCache interface {
	// Get decodes the cached value for key into dest and reports whether
	// there was one, along with the resource version it looked under.
	Get(ctx context.Context, resource, key string, dest any) (bool, int64, error)
	// Set stores value under the version a preceding Get returned. A page
	// read before a concurrent Invalidate lands on the orphaned version.
	Set(ctx context.Context, resource string, version int64, key string, value any) error
	// Invalidate drops every cached entry of resource.
	Invalidate(ctx context.Context, resource string) error
}

const keyPrefix = "listcache"

// EntryKey is the Redis key of a cached list page.
func EntryKey(resource string, version int64, key string) string {
	return fmt.Sprintf("%s:%s:v%d:%016x", keyPrefix, resource, version, xxhash.Sum64String(key))
}

func versionKey(resource string) string {
	return keyPrefix + ":" + resource + ":version"
}

type redisCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache creates a list cache backed by client.
func NewRedisCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) ListCache {
	return &redisCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisCache) version(ctx context.Context, resource string) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(resource)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read cache version: %w", err)
	}
	return v, nil
}

func (c *redisCache) Get(ctx context.Context, resource, key string, dest any) (bool, int64, error) {
	version, err := c.version(ctx, resource)
	if err != nil {
		return false, 0, err
	}

	data, err := c.client.Get(ctx, EntryKey(resource, version, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, version, nil
	}
	if err != nil {
		return false, version, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, version, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return true, version, nil
}

func (c *redisCache) Set(ctx context.Context, resource string, version int64, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := c.client.Set(ctx, EntryKey(resource, version, key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

func (c *redisCache) Invalidate(ctx context.Context, resource string) error {
	version, err := c.client.Incr(ctx, versionKey(resource)).Result()
	if err != nil {
		return fmt.Errorf("failed to bump cache version: %w", err)
	}

	c.logger.Debug("list cache invalidated",
		slog.String("resource", resource),
		slog.Int64("version", version),
	)
	return nil
}

// Noop is a ListCache that never holds anything. It is used when caching
// is disabled.
type Noop struct{}

func (Noop) Get(context.Context, string, string, any) (bool, int64, error) { return false, 0, nil }
func (Noop) Set(context.Context, string, int64, string, any) error { return nil }
func (Noop) Invalidate(context.Context, string) error { return nil }
