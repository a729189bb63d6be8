// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuers and token lifetimes.
  - Cache: Redis key prefixes and content TTLs.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "aticom-content-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "aticomgroup.com"

	// AccessTokenTTL is the lifetime of an admin access token.
	AccessTokenTTL = 8 * time.Hour
)

// # Content Cache

const (
	// CacheKeyPrefix namespaces every content cache entry in Redis.
	CacheKeyPrefix = "cms:"

	// ContentCacheTTL is how long public list reads stay cached between
	// invalidations. Writes invalidate eagerly, so the TTL is only a
	// safety net against missed invalidations.
	ContentCacheTTL = 15 * time.Minute

	// SignedURLDefaultTTL is the default lifetime of a signed media URL.
	SignedURLDefaultTTL = 15 * time.Minute

	// SignedURLMaxTTL caps client-requested signed URL lifetimes.
	SignedURLMaxTTL = 24 * time.Hour
)

// # Media Uploads

const (
	// MaxUploadBytes caps the size of a single media upload (10 MiB).
	MaxUploadBytes = 10 << 20
)

// # News Feed

const (
	// LatestNewsLimit is the number of articles on the public "latest" feed.
	LatestNewsLimit = 3
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
)

// # Database Schemas

const (
	SchemaContent = "content"
	SchemaCatalog = "catalog"
	SchemaSite    = "site"
	SchemaCareers = "careers"
	SchemaAdmin   = "admin"
)
