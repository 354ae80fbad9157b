//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"maya-connect/internal/handler/dto/request"
	"maya-connect/internal/pkg/cookie"
	"maya-connect/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

const (
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"
)

// LoginUser signs in through the gateway and returns the access token it set as a cookie.
func LoginUser(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()

	w := httptest.Do(t, h, http.MethodPost, loginPath, request.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, c, "login did not set the access token cookie")
	require.NotEmpty(t, c.Value)
	return c.Value
}

// LogoutUser signs out with the session cookie only, the way the web app does.
func LogoutUser(t *testing.T, h http.Handler, token string) {
	t.Helper()

	w := httptest.Do(t, h, http.MethodPost, logoutPath, nil,
		httptest.WithCookies(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: token}))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
