package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache stores serialized values under string keys. Cache failures are
// never fatal to a request; callers fall back to the repository.
type Cache interface {
	// Get returns ErrCacheMiss when the key is not found.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value; a zero ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes keys, ignoring ones that do not exist.
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}
