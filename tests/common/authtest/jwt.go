//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"maya-connect/internal/domain/user"
	"maya-connect/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

const TestSecret = "test-secret-key-for-unit-tests"

type JWTHelper struct {
	secret string
	now    func() time.Time
}

func NewJWTHelper(secret string, now func() time.Time) *JWTHelper {
	if now == nil {
		now = time.Now
	}
	return &JWTHelper{secret: secret, now: now}
}

func (h *JWTHelper) Service() *jwt.Service {
	return jwt.NewService(h.secret, h.now)
}

// GenerateToken signs a backend-shaped access token for p.
func (h *JWTHelper) GenerateToken(t *testing.T, p user.Profile, ttl time.Duration) string {
	t.Helper()
	token, err := h.Service().GenerateToken(jwt.Claims{
		UserID:    p.ID,
		Email:     p.Email,
		Role:      p.Role.String(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}, ttl)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token that expired an hour before now.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, p user.Profile) string {
	t.Helper()
	past := h.now().Add(-2 * time.Hour)
	issuer := NewJWTHelper(h.secret, func() time.Time { return past })
	return issuer.GenerateToken(t, p, time.Hour)
}
