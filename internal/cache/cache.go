package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 24 * time.Hour

// Cache stores generated descriptions in Redis, keyed by prompt.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache. A non-positive ttl selects the 24-hour default.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// key returns the Redis key for the given prompt.
func key(prompt string) string {
	return "description:" + strconv.FormatUint(xxhash.Sum64String(prompt), 16)
}

// Get retrieves a cached description.
// Returns "", false, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, prompt string) (string, bool, error) {
	val, err := c.client.Get(ctx, key(prompt)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

// Set stores a description with the configured TTL. Empty text is not cached.
func (c *Cache) Set(ctx context.Context, prompt, text string) error {
	if text == "" {
		return nil
	}
	if err := c.client.Set(ctx, key(prompt), text, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// generator is satisfied by textgen.GeminiClient.
type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CachedWriter serves descriptions from the cache and falls through to the
// wrapped generator on a miss. Cache failures never fail a generation.
type CachedWriter struct {
	cache *Cache
	next  generator
	log   *slog.Logger
}

// NewCachedWriter wraps next with cache lookups.
func NewCachedWriter(cache *Cache, next generator, log *slog.Logger) *CachedWriter {
	return &CachedWriter{cache: cache, next: next, log: log}
}

// Generate returns the cached text for prompt or generates and stores it.
func (w *CachedWriter) Generate(ctx context.Context, prompt string) (string, error) {
	text, ok, err := w.cache.Get(ctx, prompt)
	if err != nil {
		w.log.Warn("description cache get failed", "err", err)
	}
	if ok {
		return text, nil
	}

	text, err = w.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if err := w.cache.Set(ctx, prompt, text); err != nil {
		w.log.Warn("description cache set failed", "err", err)
	}
	return text, nil
}
