package domain

import (
	"context"
	"time"
)

// Cache is a string key/value store with expiry.
type Cache interface {
	// Get returns ErrCacheMiss when the key does not exist.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	// Incr atomically increments the integer stored at key, starting from 0.
	Incr(ctx context.Context, key string) (int64, error)
}
