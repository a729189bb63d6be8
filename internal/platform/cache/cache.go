// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

// ErrMiss is returned by a [Backend] when a key has no cached value.
var ErrMiss = errors.New("cache: miss")

// Backend is the minimal key-value contract the cache needs.
//
// The production implementation is [RedisBackend]; tests use [MemoryBackend].
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// Cache is the keyed content cache shared by all domain services.
type Cache struct {
	backend Backend
	logger  *slog.Logger
}

// New constructs a Cache over the given backend.
func New(backend Backend, logger *slog.Logger) *Cache {
	return &Cache{backend: backend, logger: logger}
}

// Invalidate removes every cached read sharing the entity tag.
//
// Services call this after every successful mutation — and never after a
// failed one — so dependent reads re-fetch fresh rows.
func (c *Cache) Invalidate(ctx context.Context, tag EntityTag) {
	if c == nil {
		return
	}
	if err := c.backend.DeleteByPrefix(ctx, tagPrefix(tag)); err != nil {
		c.logger.Warn("cache_invalidate_failed",
			slog.String("tag", string(tag)),
			slog.Any("error", err),
		)
	}
}

// InvalidateScope removes cached reads for one scope of the entity tag.
func (c *Cache) InvalidateScope(ctx context.Context, tag EntityTag, scope string) {
	if c == nil {
		return
	}
	if err := c.backend.DeleteByPrefix(ctx, scopePrefix(tag, scope)); err != nil {
		c.logger.Warn("cache_invalidate_scope_failed",
			slog.String("tag", string(tag)),
			slog.String("scope", scope),
			slog.Any("error", err),
		)
	}
}

// Through performs a read-through fetch: cached JSON when present, otherwise
// the underlying fetch with a best-effort store of the result.
//
// A nil Cache degrades to the plain fetch, which keeps services testable
// without a cache and lets deployments disable caching wholesale.
//
// Errors from the fetch are returned verbatim and are never cached.
func Through[T any](ctx context.Context, c *Cache, key Key, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return fetch(ctx)
	}

	redisKey := key.String()

	// 1. Cache hit
	if raw, err := c.backend.Get(ctx, redisKey); err == nil {
		var cached T
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
		// Unreadable entry: treat as a miss and overwrite below.
		c.logger.Warn("cache_entry_corrupt", slog.String("key", redisKey))
	} else if !errors.Is(err, ErrMiss) {
		c.logger.Warn("cache_read_failed", slog.String("key", redisKey), slog.Any("error", err))
	}

	// 2. Miss: fetch from the source of truth
	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	// 3. Best-effort store
	if raw, jsonErr := json.Marshal(value); jsonErr == nil {
		if setErr := c.backend.Set(ctx, redisKey, string(raw), ttl); setErr != nil {
			c.logger.Warn("cache_write_failed", slog.String("key", redisKey), slog.Any("error", setErr))
		}
	}

	return value, nil
}
