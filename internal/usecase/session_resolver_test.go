//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"maya-connect/internal/domain/session"
	"maya-connect/internal/domain/user"
	"maya-connect/internal/infra/cache"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/usecase"
	"maya-connect/tests/common/authtest"
	"maya-connect/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func (brokenCache) Delete(context.Context, string) error { return nil }

type resolverFixture struct {
	clock    *clock.MockClock
	jwt      *authtest.JWTHelper
	registry *session.Registry
	resolver usecase.SessionResolver
}

func newResolverFixture(c cache.Cache) *resolverFixture {
	clk := clock.NewMockClock(t0)
	if c == nil {
		c = cache.NewUnbounded(24*time.Hour, clk)
	}
	helper := authtest.NewJWTHelper(authtest.TestSecret, clk.Now)
	registry := session.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &resolverFixture{
		clock:    clk,
		jwt:      helper,
		registry: registry,
		resolver: usecase.NewSessionResolver(helper.Service(), registry, cache.NewDenyList(c), clk, logger),
	}
}

func TestSessionResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	profile := builder.NewUserBuilder().WithRole(user.RolePartner).BuildProfile()

	t.Run("valid token yields a registered session", func(t *testing.T) {
		f := newResolverFixture(nil)
		token := f.jwt.GenerateToken(t, profile, time.Hour)

		s, err := f.resolver.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, profile.ID, s.CurrentUser().ID)
		assert.Equal(t, user.RolePartner, s.CurrentUser().Role)
		assert.Equal(t, t0.Add(time.Hour), s.ExpiresAt())
		assert.Equal(t, 1, f.registry.Len())

		again, err := f.resolver.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Same(t, s, again, "same token resolves to the same live session")
	})

	t.Run("expired token", func(t *testing.T) {
		f := newResolverFixture(nil)
		token := f.jwt.CreateExpiredToken(t, profile)

		_, err := f.resolver.Resolve(ctx, token)
		assert.True(t, errs.Is(err, errs.ErrSessionExpired), "got %v", err)
	})

	t.Run("malformed token", func(t *testing.T) {
		f := newResolverFixture(nil)

		_, err := f.resolver.Resolve(ctx, "not-a-jwt")
		assert.True(t, errs.Is(err, errs.ErrUnauthenticated), "got %v", err)
	})

	t.Run("session is invalidated when the token expires", func(t *testing.T) {
		f := newResolverFixture(nil)
		token := f.jwt.GenerateToken(t, profile, time.Hour)
		s, err := f.resolver.Resolve(ctx, token)
		require.NoError(t, err)

		f.clock.Add(time.Hour)

		assert.False(t, s.IsAuthenticated(f.clock.Now()))
		assert.Equal(t, "", s.AccessToken())
		select {
		case <-s.Done():
		default:
			t.Fatal("Done not closed after expiry")
		}
		assert.Equal(t, 0, f.registry.Len())

		_, err = f.resolver.Resolve(ctx, token)
		assert.True(t, errs.Is(err, errs.ErrSessionExpired), "got %v", err)
	})

	t.Run("token without expiry gets a bounded session", func(t *testing.T) {
		f := newResolverFixture(nil)
		token := f.jwt.GenerateToken(t, profile, 0)

		s, err := f.resolver.Resolve(ctx, token)
		require.NoError(t, err)
		assert.True(t, s.ExpiresAt().IsZero())
		assert.Equal(t, 1, f.registry.Len())
		assert.Len(t, f.clock.Pending(), 1)

		f.clock.Add(24 * time.Hour)

		assert.Equal(t, 0, f.registry.Len())
		assert.False(t, s.IsAuthenticated(f.clock.Now()))
	})

	t.Run("cache failure does not block resolution", func(t *testing.T) {
		f := newResolverFixture(brokenCache{})
		token := f.jwt.GenerateToken(t, profile, time.Hour)

		_, err := f.resolver.Resolve(ctx, token)
		assert.NoError(t, err)
	})
}

func TestSessionResolver_Revoke(t *testing.T) {
	ctx := context.Background()
	profile := builder.NewUserBuilder().BuildProfile()

	t.Run("revoked token is rejected afterwards", func(t *testing.T) {
		f := newResolverFixture(nil)
		token := f.jwt.GenerateToken(t, profile, time.Hour)
		s, err := f.resolver.Resolve(ctx, token)
		require.NoError(t, err)

		var calls int
		s.OnInvalidate(func() { calls++ })

		require.NoError(t, f.resolver.Revoke(ctx, s))
		assert.False(t, s.IsAuthenticated(f.clock.Now()))
		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, f.registry.Len())

		_, err = f.resolver.Resolve(ctx, token)
		assert.True(t, errs.Is(err, errs.ErrSessionRevoked), "got %v", err)
	})

	t.Run("revocation survives search memo churn", func(t *testing.T) {
		shared := cache.NewMemory(16, time.Hour, clock.NewMockClock(t0))
		f := newResolverFixture(nil)
		memo := cache.NewMemo(shared, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
		token := f.jwt.GenerateToken(t, profile, time.Hour)
		s, err := f.resolver.Resolve(ctx, token)
		require.NoError(t, err)
		require.NoError(t, f.resolver.Revoke(ctx, s))

		for i := range 1024 {
			_, err := cache.Remember(ctx, memo, fmt.Sprintf("nearby:%d", i), func(context.Context) (int, error) { return i, nil })
			require.NoError(t, err)
		}

		_, err = f.resolver.Resolve(ctx, token)
		assert.True(t, errs.Is(err, errs.ErrSessionRevoked), "got %v", err)
	})

	t.Run("revoking twice is a no-op", func(t *testing.T) {
		f := newResolverFixture(nil)
		s, err := f.resolver.Resolve(ctx, f.jwt.GenerateToken(t, profile, time.Hour))
		require.NoError(t, err)

		require.NoError(t, f.resolver.Revoke(ctx, s))
		assert.NoError(t, f.resolver.Revoke(ctx, s))
	})

	t.Run("cache failure is reported", func(t *testing.T) {
		f := newResolverFixture(brokenCache{})
		s, err := f.resolver.Resolve(ctx, f.jwt.GenerateToken(t, profile, time.Hour))
		require.NoError(t, err)

		err = f.resolver.Revoke(ctx, s)
		assert.Error(t, err)
		assert.False(t, s.IsAuthenticated(f.clock.Now()), "session is signed out regardless")
	})
}
