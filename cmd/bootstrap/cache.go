package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"maya-connect/internal/infra/cache"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/errs"

	"go.uber.org/fx"
)

// revocationMaxTTL caps how long a logged out token stays on the in-process
// deny list. Backend access tokens live far shorter.
const (
	revocationMaxTTL = 30 * 24 * time.Hour
	redisPrefix      = "maya:"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCache,
		NewMemo,
		NewDenyList,
	),
)

func NewCache(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (cache.Cache, error) {
	switch cfg.Cache.Driver {
	case cache.DriverMemory, "":
		logger.Info("using in-memory cache", "size", cfg.Cache.Size)
		return cache.NewMemory(cfg.Cache.Size, cfg.Cache.TTL, clk), nil
	case cache.DriverRedis:
		client := cache.NewRedisClient(cfg.Redis)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return errs.Wrapf(err, "ping redis at %s", cfg.Redis.Addr)
				}
				logger.Info("connected to redis", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return cache.NewRedis(client, redisPrefix), nil
	default:
		return nil, errs.Newf("unknown CACHE_DRIVER %q", cfg.Cache.Driver)
	}
}

func NewMemo(c cache.Cache, cfg config.Config, logger *slog.Logger) *cache.Memo {
	return cache.NewMemo(c, cfg.Cache.TTL, logger)
}

// NewDenyList keeps revocations out of the size-bounded memo LRU. Redis does
// not evict keys for space under the default policy, so it is shared there.
func NewDenyList(shared cache.Cache, cfg config.Config, clk clock.Clock) *cache.DenyList {
	if cfg.Cache.Driver == cache.DriverRedis {
		return cache.NewDenyList(shared)
	}
	return cache.NewDenyList(cache.NewUnbounded(revocationMaxTTL, clk))
}
