/*
Package cache provides TTL-based memoization stores for the recommendation
engine, plus the cache-key templates shared by every backend.

Two backends are provided: an in-memory map store and a persistent BadgerDB
store. Values are opaque byte slices; entries are immutable once stored until
TTL expiry or explicit invalidation.
*/
package cache

import (
	"context"
	"time"
)

// Store is the cache collaborator contract. Concurrent misses for the same
// key may both compute and both write; correctness relies only on eventual
// consistency within the TTL window, never on single-writer semantics.
type Store interface {
	// Get returns the stored value for key, with false when the key is
	// absent or expired. A hit returns the stored value verbatim.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeleteByPrefix removes all entries whose key starts with prefix.
	// Only valid when SupportsPatternDelete reports true.
	DeleteByPrefix(ctx context.Context, prefix string) error

	// FlushAll removes every entry in the store.
	FlushAll(ctx context.Context) error

	// SupportsPatternDelete reports whether DeleteByPrefix is available.
	// When false, callers fall back to FlushAll for invalidation.
	SupportsPatternDelete() bool

	// Close releases backend resources.
	Close() error
}
