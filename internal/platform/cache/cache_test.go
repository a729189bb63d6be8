// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

func newTestCache() (*cache.Cache, *cache.MemoryBackend) {
	backend := cache.NewMemoryBackend()
	return cache.New(backend, slog.Default()), backend
}

/*
TestKey_CanonicalString verifies structural key identity: equal tuples render
equal Redis keys, different filter flags render different ones.
*/
func TestKey_CanonicalString(t *testing.T) {
	public := cache.ListKey("news", "", true)
	admin := cache.ListKey("news", "", false)

	assert.Equal(t, cache.ListKey("news", "", true).String(), public.String())
	assert.NotEqual(t, public.String(), admin.String())

	scoped := cache.ListKey("tile_collection", "sector-1", true)
	otherScope := cache.ListKey("tile_collection", "sector-2", true)
	assert.NotEqual(t, scoped.String(), otherScope.String())
}

/*
TestThrough_CachesSecondRead verifies the read-through path: the first read
fetches, the second is served from the cache without another fetch.
*/
func TestThrough_CachesSecondRead(t *testing.T) {
	c, _ := newTestCache()
	key := cache.ListKey("team", "", true)

	fetchCalls := 0
	fetch := func(context.Context) ([]string, error) {
		fetchCalls++
		return []string{"alpha", "beta"}, nil
	}

	first, err := cache.Through(context.Background(), c, key, time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, first)

	second, err := cache.Through(context.Background(), c, key, time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 1, fetchCalls, "second read must hit the cache")
}

/*
TestThrough_ErrorsAreNotCached verifies that a failed fetch leaves no entry
behind: the next read retries the source.
*/
func TestThrough_ErrorsAreNotCached(t *testing.T) {
	c, backend := newTestCache()
	key := cache.ListKey("partner", "", true)

	fetchCalls := 0
	boom := errors.New("backend down")
	fetch := func(context.Context) ([]string, error) {
		fetchCalls++
		if fetchCalls == 1 {
			return nil, boom
		}
		return []string{"ok"}, nil
	}

	_, err := cache.Through(context.Background(), c, key, time.Minute, fetch)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, backend.Len())

	value, err := cache.Through(context.Background(), c, key, time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, value)
	assert.Equal(t, 2, fetchCalls)
}

/*
TestThrough_EmptyListStaysEmpty verifies that an empty list survives the
cache round trip as an empty slice, never nil: the response envelope must
render "[]", not null, both on the fetch and on the cached read.
*/
func TestThrough_EmptyListStaysEmpty(t *testing.T) {
	c, _ := newTestCache()
	key := cache.ListKey("hero", "", true)

	fetch := func(context.Context) ([]string, error) {
		return make([]string, 0), nil
	}

	fetched, err := cache.Through(context.Background(), c, key, time.Minute, fetch)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	cached, err := cache.Through(context.Background(), c, key, time.Minute, fetch)
	require.NoError(t, err)
	require.NotNil(t, cached)

	body, err := json.Marshal(cached)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

/*
TestInvalidate_TagRemovesAllKeysOfTag verifies the write contract: every
cached read sharing the written entity's tag re-fetches, while other tags
stay cached.
*/
func TestInvalidate_TagRemovesAllKeysOfTag(t *testing.T) {
	c, _ := newTestCache()
	ctx := context.Background()

	newsFetches, teamFetches := 0, 0
	newsFetch := func(context.Context) (string, error) { newsFetches++; return "news", nil }
	teamFetch := func(context.Context) (string, error) { teamFetches++; return "team", nil }

	newsPublic := cache.ListKey("news", "", true)
	newsAdmin := cache.ListKey("news", "", false)
	teamPublic := cache.ListKey("team", "", true)

	for _, key := range []cache.Key{newsPublic, newsAdmin} {
		_, err := cache.Through(ctx, c, key, time.Minute, newsFetch)
		require.NoError(t, err)
	}
	_, err := cache.Through(ctx, c, teamPublic, time.Minute, teamFetch)
	require.NoError(t, err)

	// A successful news write invalidates both news keys.
	c.Invalidate(ctx, "news")

	_, _ = cache.Through(ctx, c, newsPublic, time.Minute, newsFetch)
	_, _ = cache.Through(ctx, c, newsAdmin, time.Minute, newsFetch)
	_, _ = cache.Through(ctx, c, teamPublic, time.Minute, teamFetch)

	assert.Equal(t, 4, newsFetches, "both news keys must re-fetch after invalidation")
	assert.Equal(t, 1, teamFetches, "team cache must survive a news write")
}

/*
TestInvalidateScope_LeavesOtherScopes verifies scope-narrowed invalidation.
*/
func TestInvalidateScope_LeavesOtherScopes(t *testing.T) {
	c, _ := newTestCache()
	ctx := context.Background()

	fetches := map[string]int{}
	fetchFor := func(scope string) func(context.Context) (string, error) {
		return func(context.Context) (string, error) {
			fetches[scope]++
			return scope, nil
		}
	}

	keyA := cache.ListKey("tile_collection", "sector-a", true)
	keyB := cache.ListKey("tile_collection", "sector-b", true)

	_, _ = cache.Through(ctx, c, keyA, time.Minute, fetchFor("a"))
	_, _ = cache.Through(ctx, c, keyB, time.Minute, fetchFor("b"))

	c.InvalidateScope(ctx, "tile_collection", "sector-a")

	_, _ = cache.Through(ctx, c, keyA, time.Minute, fetchFor("a"))
	_, _ = cache.Through(ctx, c, keyB, time.Minute, fetchFor("b"))

	assert.Equal(t, 2, fetches["a"])
	assert.Equal(t, 1, fetches["b"])
}

/*
TestThrough_NilCacheDegradesToFetch covers the cache-disabled path.
*/
func TestThrough_NilCacheDegradesToFetch(t *testing.T) {
	fetchCalls := 0
	fetch := func(context.Context) (int, error) { fetchCalls++; return 42, nil }

	for i := 0; i < 2; i++ {
		value, err := cache.Through[int](context.Background(), nil, cache.ListKey("seo", "", true), time.Minute, fetch)
		require.NoError(t, err)
		assert.Equal(t, 42, value)
	}
	assert.Equal(t, 2, fetchCalls)
}
