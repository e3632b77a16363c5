// Package cache provides byte-level caching backends for HTTP responses.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory, for CLI use
//   - [RedisCache]: a shared Redis instance, for the server
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// Keys are built with a [Keyer] so that backends never see raw user input
// as key material in ways that could collide across namespaces.
//
// The package also owns the retry policy used by the integrations clients:
// errors wrapped with [Retryable] are retried with exponential backoff by
// [Retry] and [RetryWithBackoff].
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores opaque byte values with an optional time-to-live.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
