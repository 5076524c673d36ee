// Package toolutil provides shared helpers for the MCP tools: a two-tier
// response cache and input normalisation.
package toolutil

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a 2-tier cache: L1 in-memory + optional L2 Redis.
// A nil *Cache is valid and never hits.
type Cache struct {
	l1              sync.Map      // key → *cacheEntry
	rdb             *redis.Client // nil if Redis unavailable
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once

	hits   atomic.Int64
	misses atomic.Int64
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

func (e *cacheEntry) expired(now time.Time) bool { return !now.Before(e.expiresAt) }

func (c *Cache) entry(data []byte) *cacheEntry {
	return &cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)}
}

// CacheConfig configures NewCache. TTL <= 0 disables caching.
type CacheConfig struct {
	RedisURL        string // empty disables L2
	TTL             time.Duration
	MaxEntries      int
	CleanupInterval time.Duration
}

// NewCache sets up the cache and starts the L1 cleanup loop.
// Returns nil when cfg.TTL is not positive.
func NewCache(cfg CacheConfig) *Cache {
	if cfg.TTL <= 0 {
		slog.Info("cache: disabled")
		return nil
	}
	c := &Cache{
		ttl:             cfg.TTL,
		maxEntries:      cfg.MaxEntries,
		cleanupInterval: cfg.CleanupInterval,
		stop:            make(chan struct{}),
	}

	c.rdb = connectRedis(cfg.RedisURL)
	slog.Info("cache: initialized", slog.Duration("ttl", c.ttl), slog.Bool("redis", c.rdb != nil), slog.Int("max_entries", c.maxEntries))

	go c.cleanupLoop()
	return c
}

// connectRedis returns a live client for url, or nil when url is empty,
// malformed or unreachable.
func connectRedis(url string) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		slog.Warn("cache: bad REDIS_URL, running L1 only", slog.Any("error", err))
		return nil
	}
	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("cache: redis ping failed, running L1 only", slog.String("addr", opts.Addr), slog.Any("error", err))
		_ = rdb.Close()
		return nil
	}
	slog.Info("cache: redis attached", slog.String("addr", opts.Addr))
	return rdb
}

// Close stops the cleanup loop and the Redis client.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	c.stopOnce.Do(func() { close(c.stop) })
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}

// CacheKey builds a deterministic cache key from parts.
func CacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("yt:%x", hash[:12])
}

// Get tries L1, then L2. On L2 hit, populates L1.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	if v, ok := c.l1.Load(key); ok {
		if e := v.(*cacheEntry); !e.expired(time.Now()) {
			c.hits.Add(1)
			return e.data, true
		}
		c.l1.Delete(key)
	}

	if c.rdb != nil {
		switch data, err := c.rdb.Get(ctx, key).Bytes(); {
		case err == nil:
			c.hits.Add(1)
			c.l1.Store(key, c.entry(data))
			return data, true
		case err != redis.Nil:
			slog.Debug("cache: redis get failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	c.misses.Add(1)
	return nil, false
}

// Set stores data in both tiers.
func (c *Cache) Set(ctx context.Context, key string, data []byte) {
	if c == nil {
		return
	}

	c.evictIfNeeded()
	c.l1.Store(key, c.entry(data))

	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Debug("cache: redis set failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Stats returns hit/miss counters.
func (c *Cache) Stats() (hits, misses int64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}

// LoadJSON decodes a cached value of type T. Miss or decode error → false.
func LoadJSON[T any](ctx context.Context, c *Cache, key string) (T, bool) {
	var out T
	data, ok := c.Get(ctx, key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// StoreJSON marshals v and caches it.
func StoreJSON[T any](ctx context.Context, c *Cache, key string, v T) {
	if c == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.Set(ctx, key, data)
}

// l1Len counts L1 entries, expired ones included.
func (c *Cache) l1Len() int {
	n := 0
	c.l1.Range(func(_, _ any) bool { n++; return true })
	return n
}

// dropExpired deletes expired L1 entries and returns how many went.
func (c *Cache) dropExpired(now time.Time) int {
	dropped := 0
	c.l1.Range(func(k, v any) bool {
		if v.(*cacheEntry).expired(now) {
			c.l1.Delete(k)
			dropped++
		}
		return true
	})
	return dropped
}

// evictIfNeeded makes room for one more L1 entry: expired entries go first,
// then the ones closest to expiry.
func (c *Cache) evictIfNeeded() {
	if c.maxEntries <= 0 {
		return
	}
	n := c.l1Len()
	if n < c.maxEntries {
		return
	}
	n -= c.dropExpired(time.Now())

	for ; n >= c.maxEntries; n-- {
		var victim any
		var soonest time.Time
		c.l1.Range(func(k, v any) bool {
			e := v.(*cacheEntry)
			if victim == nil || e.expiresAt.Before(soonest) {
				victim, soonest = k, e.expiresAt
			}
			return true
		})
		if victim == nil {
			return
		}
		c.l1.Delete(victim)
	}
}

func (c *Cache) cleanupLoop() {
	interval := c.cleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			if n := c.dropExpired(now); n > 0 {
				slog.Debug("cache: expired entries dropped", slog.Int("count", n))
			}
		}
	}
}
