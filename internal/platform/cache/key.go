// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

/*
Package cache provides the keyed read-through content cache and its
invalidation contract.

# Contract

Every public list read is addressed by a [Key]: an (entity tag, scope,
filters) tuple with structural equality. Two reads with equal keys share one
cache slot. After every successful write of an entity, the owning service
invalidates every key carrying that entity's tag, forcing dependent reads to
re-fetch. Failed writes invalidate nothing.

Cache unavailability is never a request failure: reads degrade to the
underlying fetch and the incident is logged.
*/
package cache

import (
	"fmt"
	"strconv"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/constants"
)

// EntityTag identifies one logical content type in the cache taxonomy.
//
// Tags are declared by the owning domain package (e.g. news.CacheTag).
type EntityTag string

// FilterSet holds the filter dimensions that distinguish cached reads of the
// same entity tag.
type FilterSet struct {
	// PublishedOnly mirrors the public/admin visibility split.
	PublishedOnly bool
	// Limit is the row cap for "latest N" style reads; 0 means unlimited.
	Limit int
}

// Key addresses one logical cached read.
//
// Keys compare with ==; all fields are comparable by design.
type Key struct {
	Tag     EntityTag
	Scope   string
	Filters FilterSet
}

// ListKey builds the common case: a scoped list read.
func ListKey(tag EntityTag, scope string, publishedOnly bool) Key {
	return Key{Tag: tag, Scope: scope, Filters: FilterSet{PublishedOnly: publishedOnly}}
}

// String renders the canonical Redis key. The tag segment is a prefix of
// every key sharing the tag, which is what makes tag invalidation a prefix
// delete.
func (k Key) String() string {
	return fmt.Sprintf("%s%s:%s:published=%s:limit=%d",
		constants.CacheKeyPrefix,
		k.Tag,
		k.Scope,
		strconv.FormatBool(k.Filters.PublishedOnly),
		k.Filters.Limit,
	)
}

// tagPrefix is the Redis key prefix shared by every key with this tag.
func tagPrefix(tag EntityTag) string {
	return constants.CacheKeyPrefix + string(tag) + ":"
}

// scopePrefix narrows tagPrefix to one scope id.
func scopePrefix(tag EntityTag, scope string) string {
	return tagPrefix(tag) + scope + ":"
}
