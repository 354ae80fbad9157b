package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"maya-connect/internal/infra"
)

// Memo memoizes loader results as JSON. A failing cache never fails the call;
// the loader runs and the error is logged.
type Memo struct {
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewMemo(c Cache, ttl time.Duration, logger *slog.Logger) *Memo {
	if logger == nil {
		logger = slog.Default()
	}
	return &Memo{cache: c, ttl: ttl, logger: logger}
}

func (m *Memo) TTL() time.Duration { return m.ttl }

// Remember returns the cached value for key or stores the loader's result.
// Loader errors are returned and never cached.
func Remember[T any](ctx context.Context, m *Memo, key string, load func(context.Context) (T, error)) (T, error) {
	if b, ok, err := m.cache.Get(ctx, key); err != nil {
		_ = infra.WrapErr(m.logger, infra.KindCache, "cache get "+key, err)
	} else if ok {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
		_ = m.cache.Delete(ctx, key)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if b, err := json.Marshal(v); err == nil {
		if err := m.cache.Set(ctx, key, b, m.ttl); err != nil {
			_ = infra.WrapErr(m.logger, infra.KindCache, "cache set "+key, err)
		}
	}
	return v, nil
}
