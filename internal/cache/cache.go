package cache

import (
	"context"
	"time"
)

// Cache backs the rendered-page cache. Redis in production, in-memory when no
// Redis address is configured.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
