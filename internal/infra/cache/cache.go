package cache

import (
	"context"
	"time"
)

// Cache stores opaque values with a per-entry time to live.
// Get reports a miss as (nil, false, nil); errors are reserved for driver failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)
