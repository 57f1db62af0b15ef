package adapter

import (
	"context"
	"quiz-editor/internal/domain"
	"time"
)

// NoopCache is used when Redis is not configured. Every Get misses.
type NoopCache struct{}

func NewNoopCache() domain.Cache {
	return NoopCache{}
}

func (NoopCache) Get(context.Context, string) (string, error) {
	return "", domain.ErrCacheMiss
}

func (NoopCache) Set(context.Context, string, string, time.Duration) error { return nil }

func (NoopCache) Delete(context.Context, string) error { return nil }

func (NoopCache) Incr(context.Context, string) (int64, error) { return 0, nil }
