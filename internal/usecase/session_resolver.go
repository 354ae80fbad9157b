package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"maya-connect/internal/domain/session"
	"maya-connect/internal/domain/user"
	"maya-connect/internal/infra"
	"maya-connect/internal/infra/cache"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/pkg/jwt"
)

// noExpiryTTL is the lifetime given to a token that carries no exp claim: its
// live session is dropped after it, and so is its revocation marker.
const noExpiryTTL = 24 * time.Hour

// SessionResolver turns bearer tokens into live sessions for middleware and
// owns the sign-out path.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*session.Session, error)
	Revoke(ctx context.Context, s *session.Session) error
}

type sessionResolverImpl struct {
	jwtService *jwt.Service
	registry   *session.Registry
	revoked    *cache.DenyList
	clock      clock.Clock
	logger     *slog.Logger
}

func NewSessionResolver(jwtService *jwt.Service, registry *session.Registry, revoked *cache.DenyList, clk clock.Clock, logger *slog.Logger) SessionResolver {
	return &sessionResolverImpl{
		jwtService: jwtService,
		registry:   registry,
		revoked:    revoked,
		clock:      clk,
		logger:     logger,
	}
}

func (r *sessionResolverImpl) Resolve(ctx context.Context, token string) (*session.Session, error) {
	now := r.clock.Now()
	if s, ok := r.registry.Lookup(token); ok {
		if s.IsAuthenticated(now) {
			return s, nil
		}
		r.registry.Invalidate(token)
		return nil, errs.ErrSessionExpired
	}

	if found, err := r.revoked.Contains(ctx, token); err != nil {
		_ = infra.WrapErr(r.logger, infra.KindCache, "revocation lookup", err)
	} else if found {
		return nil, errs.ErrSessionRevoked
	}

	claims, err := r.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, errs.Mark(err, errs.ErrSessionExpired)
		}
		return nil, errs.Mark(err, errs.ErrUnauthenticated)
	}
	if !claims.ExpiresAt.IsZero() && !now.Before(claims.ExpiresAt) {
		return nil, errs.ErrSessionExpired
	}

	s, err := session.New(token, user.Profile{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      user.RoleFromClaim(claims.Role),
	}, claims.ExpiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnauthenticated)
	}
	live := r.registry.Attach(s)
	if live == s {
		lifetime := noExpiryTTL
		if !claims.ExpiresAt.IsZero() {
			lifetime = claims.ExpiresAt.Sub(now)
		}
		expiry := r.clock.AfterFunc(lifetime, func() { s.Invalidate() })
		s.OnInvalidate(func() { expiry.Stop() })
	}
	return live, nil
}

// Revoke invalidates s everywhere it is attached and remembers the token as
// revoked until it would have expired anyway.
func (r *sessionResolverImpl) Revoke(ctx context.Context, s *session.Session) error {
	token := s.AccessToken()
	if token == "" {
		return nil
	}

	ttl := noExpiryTTL
	if exp := s.ExpiresAt(); !exp.IsZero() {
		ttl = exp.Sub(r.clock.Now())
	}
	r.registry.Invalidate(token)
	s.Invalidate()

	if ttl <= 0 {
		return nil
	}
	if err := r.revoked.Add(ctx, token, ttl); err != nil {
		return infra.WrapErr(r.logger, infra.KindCache, "revocation store", err)
	}
	return nil
}
