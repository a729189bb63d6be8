// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// scanBatchSize is the COUNT hint per SCAN iteration during prefix deletes.
const scanBatchSize = 200

// RedisBackend implements [Backend] on a go-redis client.
type RedisBackend struct {
	client *redis.Client
}

// NewRedisBackend wraps an existing Redis client.
func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

// Get returns the cached value, or [ErrMiss] if the key is absent.
func (backend *RedisBackend) Get(ctx context.Context, key string) (string, error) {
	value, err := backend.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrMiss
		}
		return "", fmt.Errorf("redis_cache_get_failed: %w", err)
	}
	return value, nil
}

// Set stores the value with the given TTL.
func (backend *RedisBackend) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := backend.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis_cache_set_failed: %w", err)
	}
	return nil
}

// DeleteByPrefix removes every key starting with prefix using incremental
// SCAN, so invalidation never blocks Redis the way KEYS would.
func (backend *RedisBackend) DeleteByPrefix(ctx context.Context, prefix string) error {
	var cursor uint64

	for {
		keys, nextCursor, err := backend.client.Scan(ctx, cursor, prefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis_cache_scan_failed: %w", err)
		}

		if len(keys) > 0 {
			if err := backend.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis_cache_del_failed: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			return nil
		}
	}
}
