package middleware

import (
	"net/http"
	"strings"

	"maya-connect/internal/domain/session"
	"maya-connect/internal/domain/user"
	"maya-connect/internal/handler/httperr"
	"maya-connect/internal/pkg/cookie"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/pkg/usermsg"
	"maya-connect/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessions usecase.SessionResolver
}

const (
	ctxSessionKey = "session"

	// Browsers cannot set headers on a WebSocket handshake.
	wsTokenParam = "access_token"
)

var roleHierarchy = map[user.Role]int{
	user.RoleMember:  1,
	user.RolePartner: 2,
	user.RoleAdmin:   3,
}

func NewAuthMiddleware(sessions usecase.SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		s, err := m.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, usermsg.SessionExpired, nil)
			return
		}

		c.Set(ctxSessionKey, s)
		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := GetSession(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrUnauthenticated, "Internal server error", nil)
			return
		}

		if !hasMinimumRole(s.CurrentUser().Role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, usermsg.AccessDenied, nil)
			return
		}

		c.Next()
	}
}

func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

// SetSession is used by handlers tests that skip the middleware.
func SetSession(c *gin.Context, s *session.Session) {
	c.Set(ctxSessionKey, s)
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}

	if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
		return c.Query(wsTokenParam)
	}
	return ""
}
