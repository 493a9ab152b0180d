package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

// Cache wraps a redis client. When redis is not configured or unreachable it
// degrades to a no-op: Get always misses, Set silently drops.
type Cache struct {
	rdb *redis.Client
}

func New(url string) *Cache {
	if url == "" {
		log.Println("⚠️ REDIS_URL not set, running without cache")
		return &Cache{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: url,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("⚠️ Redis unavailable: %v", err)
		return &Cache{}
	}

	log.Println("✓ Connected to Redis")
	return &Cache{rdb: rdb}
}

func (c *Cache) Get(key string) (string, error) {
	if c == nil || c.rdb == nil {
		return "", redis.Nil
	}
	return c.rdb.Get(ctx, key).Result()
}

func (c *Cache) Set(key string, value string, expiration time.Duration) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Set(ctx, key, value, expiration).Err()
}
