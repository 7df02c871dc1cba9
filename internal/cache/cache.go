package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when the key is absent; callers fall through to
// the source of truth.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a read-through cache for derived data (leaderboards). Failures
// other than a miss should be treated as a miss by callers: the cache is an
// optimization, never the source of truth.
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Close() error
}
