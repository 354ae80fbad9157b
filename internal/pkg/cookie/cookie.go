package cookie

import (
	"net/http"
	"strings"
	"time"

	"maya-connect/internal/domain/auth"
	"maya-connect/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// fallbackMaxAge applies when neither the backend nor the token states an expiry.
const fallbackMaxAge = time.Hour

var sameSiteModes = map[string]http.SameSite{
	"strict": http.SameSiteStrictMode,
	"lax":    http.SameSiteLaxMode,
	"none":   http.SameSiteNoneMode,
}

// SetTokenCookie stores the access token for the web build of the app. The
// cookie never outlives the token. The refresh token is not forwarded.
func SetTokenCookie(c *gin.Context, cfg config.CookieConfig, pair auth.TokenPair, now time.Time) {
	maxAge := fallbackMaxAge
	if !pair.ExpiresAt.IsZero() {
		maxAge = pair.ExpiresAt.Sub(now)
	}
	if maxAge < time.Second {
		return
	}
	write(c, cfg, pair.AccessToken, int(maxAge/time.Second))
}

func ClearTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	mode, ok := sameSiteModes[strings.ToLower(cfg.SameSite)]
	if !ok {
		mode = http.SameSiteLaxMode
	}
	c.SetSameSite(mode)
	c.SetCookie(AccessTokenCookieName, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}
