// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryBackend is an in-process [Backend] used by unit tests and local
// development runs without Redis.
type MemoryBackend struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]memoryEntry)}
}

// Get returns the stored value, honoring expiry, or [ErrMiss].
func (backend *MemoryBackend) Get(_ context.Context, key string) (string, error) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	entry, ok := backend.entries[key]
	if !ok {
		return "", ErrMiss
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(backend.entries, key)
		return "", ErrMiss
	}
	return entry.value, nil
}

// Set stores the value with an optional TTL (0 = no expiry).
func (backend *MemoryBackend) Set(_ context.Context, key, value string, ttl time.Duration) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	backend.entries[key] = entry
	return nil
}

// DeleteByPrefix removes every key starting with prefix.
func (backend *MemoryBackend) DeleteByPrefix(_ context.Context, prefix string) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	for key := range backend.entries {
		if strings.HasPrefix(key, prefix) {
			delete(backend.entries, key)
		}
	}
	return nil
}

// Len reports the number of live entries. Test helper.
func (backend *MemoryBackend) Len() int {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	return len(backend.entries)
}
