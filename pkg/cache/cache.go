// Package cache stores rendered artifacts between runs.
//
// Train layout is cheap and is never cached. Encoding is not: PNG
// rasterization and PDF conversion dominate a request, so the pipeline
// caches encoded artifacts keyed by everything that affects their bytes.
//
// Backends:
//   - [NullCache]: stores nothing, for --no-cache and tests
//   - [FileCache]: one file per artifact under the user cache directory
//   - [RedisCache]: shared cache for several server instances
//
// Keys come from a [Keyer]; [ScopedKeyer] adds a namespace prefix so several
// deployments can share one Redis.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// NullCache never stores anything; every Get misses.
type NullCache struct{}

// NewNullCache returns a cache that disables caching.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
