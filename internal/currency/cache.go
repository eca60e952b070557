// Package currency provides exchange-rate lookups with a time-bounded,
// injectable cache. Rate failures always surface as errors; no caller
// ever receives a silent 1:1 fallback.
package currency

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores exchange rates by currency pair for a bounded time.
type Cache interface {
	Get(ctx context.Context, pair string) (float64, bool)
	Set(ctx context.Context, pair string, rate float64) error
}

type memoryEntry struct {
	rate    float64
	expires time.Time
}

// MemoryCache is an in-process TTL cache for exchange rates.
type MemoryCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryCache creates an in-process cache whose entries expire after
// the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

// Get returns a cached rate if present and not expired.
func (c *MemoryCache) Get(_ context.Context, pair string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[pair]
	if !ok {
		return 0, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, pair)
		return 0, false
	}
	return entry.rate, true
}

// Set stores a rate with the cache's TTL.
func (c *MemoryCache) Set(_ context.Context, pair string, rate float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[pair] = memoryEntry{rate: rate, expires: c.now().Add(c.ttl)}
	return nil
}

// RedisCache stores exchange rates in Redis with a TTL, for deployments
// where multiple instances should share one rate cache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed rate cache.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb, ttl: ttl}
}

// Get returns a cached rate if the key exists and parses.
func (r *RedisCache) Get(ctx context.Context, pair string) (float64, bool) {
	val, err := r.client.Get(ctx, "rate:"+pair).Result()
	if err != nil {
		return 0, false
	}
	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return rate, true
}

// Set stores a rate with the cache's TTL.
func (r *RedisCache) Set(ctx context.Context, pair string, rate float64) error {
	return r.client.Set(ctx, "rate:"+pair, strconv.FormatFloat(rate, 'f', -1, 64), r.ttl).Err()
}
