package api

import (
	"net/http"

	reqdto "maya-connect/internal/handler/dto/request"
	resdto "maya-connect/internal/handler/dto/response"
	"maya-connect/internal/handler/httperr"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/cookie"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/usecase/commands"
	"maya-connect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds  commands.AuthCommands
	q     queries.UserQueries
	cfg   config.Config
	clock clock.Clock
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config, clk clock.Clock) *AuthHandler {
	return &AuthHandler{
		cmds:  cmds,
		q:     q,
		cfg:   cfg,
		clock: clk,
	}
}

// @Summary Member login
// @Description Exchange email and password for a backend access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication failed", nil)
		default:
			abortWithError(c, err, "Login failed")
		}
		return
	}

	cookie.SetTokenCookie(c, h.cfg.Cookie, result.TokenPair, h.clock.Now())
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Logout
// @Description Invalidate the current session, including open QR streams
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	if err := h.cmds.Logout(c.Request.Context(), s); err != nil {
		abortWithError(c, err, "Logout failed")
		return
	}
	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current member
// @Description Profile of the signed-in member
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	profile, err := h.q.GetCurrentUser(c.Request.Context(), s)
	if err != nil {
		abortWithError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfile(profile))
}
