// Package cache provides a small file-backed cache for computed layout
// snapshots.
//
// Scanning a large directory tree and measuring every label is the slow
// part of startup; the resulting snapshot JSON is tiny. Entries are keyed
// by the scanned root path plus the layout options and expire after a
// short TTL, since the filesystem can change underneath the cache.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long a cached layout stays valid.
const DefaultTTL = 15 * time.Minute

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
