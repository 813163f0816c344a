// Package cache stores computed results between CLI runs.
//
// Loading a multi-gigabyte GFA file dominates the cost of a statistics
// report, so the CLI keeps reports in a [FileCache] keyed by the input file's
// identity and the options it was loaded with. [NullCache] disables caching.
//
// Keys are built with [Key], which hashes its parts so that any change in
// the input or the options yields a different entry:
//
//	key := cache.Key("info", absPath, size, modTime, level)
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    ...
//	}
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}
