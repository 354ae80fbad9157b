//go:build unit

package bootstrap_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"maya-connect/cmd/bootstrap"
	"maya-connect/internal/domain/session"
	"maya-connect/internal/infra/cache"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/usecase"
	"maya-connect/tests/common/authtest"
	"maya-connect/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestCacheModule_MemoryDriver(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.NewTestConfig()

	shared, err := bootstrap.NewCache(fxtest.NewLifecycle(t), cfg, clk, logger)
	require.NoError(t, err)
	memo := bootstrap.NewMemo(shared, cfg, logger)
	deny := bootstrap.NewDenyList(shared, cfg, clk)

	helper := authtest.NewJWTHelper(authtest.TestSecret, clk.Now)
	resolver := usecase.NewSessionResolver(helper.Service(), session.NewRegistry(), deny, clk, logger)

	token := helper.GenerateToken(t, builder.NewUserBuilder().BuildProfile(), time.Hour)
	s, err := resolver.Resolve(ctx, token)
	require.NoError(t, err)
	require.NoError(t, resolver.Revoke(ctx, s))

	for i := range 8 * cfg.Cache.Size {
		_, err := cache.Remember(ctx, memo, fmt.Sprintf("nearby:%d", i), func(context.Context) (int, error) { return i, nil })
		require.NoError(t, err)
	}

	_, err = resolver.Resolve(ctx, token)
	assert.True(t, errs.Is(err, errs.ErrSessionRevoked), "logged out token must stay rejected, got %v", err)
}

func TestNewCache_UnknownDriver(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Cache.Driver = "memcached"

	_, err := bootstrap.NewCache(fxtest.NewLifecycle(t), cfg, clock.NewRealClock(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
