// Package cache provides a byte-level cache for parsed statute graphs.
//
// Loading a full US Code title from XML takes far longer than decoding the
// serialized graph, so the CLI caches the graphio JSON keyed by a hash of
// the source file. The cache stores opaque bytes; serialization lives in
// graphio.
package cache

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is how long cached graphs stay valid. Source files are keyed
// by content hash, so entries only expire to bound disk usage.
const DefaultTTL = 30 * 24 * time.Hour

// ErrCacheMiss is returned by helpers that require a cached value.
// [Cache.Get] itself signals a miss via its boolean, not an error.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte-level key-value store with per-entry TTL.
//
// Implementations: [FileCache] for persistent CLI usage, [NullCache] when
// caching is disabled.
type Cache interface {
	// Get retrieves a value. The boolean reports whether the key was
	// present and unexpired; an error means the lookup itself failed.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores it without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
