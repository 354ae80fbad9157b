//go:build unit

package api_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"maya-connect/internal/domain/session"
	"maya-connect/internal/domain/user"
	"maya-connect/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	t0      = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	discard = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func newSession(t *testing.T, p user.Profile) *session.Session {
	t.Helper()
	s, err := session.New("access-token", p, time.Time{})
	require.NoError(t, err)
	return s
}

// withSession stands in for RequireAuth. A nil session leaves the request anonymous.
func withSession(s *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s != nil {
			middleware.SetSession(c, s)
		}
		c.Next()
	}
}
