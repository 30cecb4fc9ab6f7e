package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reading-quiz/internal/domain"
)

// GetJSON loads key and decodes it into a T. It returns domain.ErrCacheMiss
// unchanged so callers can tell a miss from a failure.
func GetJSON[T any](ctx context.Context, c domain.Cache, key string) (*T, error) {
	raw, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return &v, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, c domain.Cache, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	return c.Set(ctx, key, raw, ttl)
}
