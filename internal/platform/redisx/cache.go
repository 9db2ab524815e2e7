package redisx

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
)

const defaultTTL = 6 * time.Hour

// Cache stores lesson-content digests keyed by URL. A nil *Cache is valid
// and behaves as a permanent miss, so callers never branch on whether
// redis is configured.
type Cache struct {
	log *logger.Logger
	rdb *redis.Client
	ttl time.Duration
}

// NewCache connects using REDIS_ADDR. Missing address or a failed ping
// returns an error; callers are expected to degrade to a nil cache.
func NewCache(log *logger.Logger) (*Cache, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Cache{
		log: log.With("service", "RedisCache"),
		rdb: rdb,
		ttl: defaultTTL,
	}, nil
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, cacheKey(key)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.log.Warn("cache get failed", "key", key, "error", err)
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key, value string) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(key), value, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "key", key, "error", err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

func cacheKey(key string) string {
	return "lesson-content:" + key
}
