package middleware

import (
	"log/slog"
	"net/http"

	"maya-connect/internal/handler/httperr"
	"maya-connect/internal/pkg/usermsg"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error when a handler recorded one
// without writing a body. Anything else unanswered becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if public := c.Errors.ByType(gin.ErrorTypePublic).Last(); public != nil {
			if resp, ok := public.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, usermsg.Unknown, nil))
	}
}

// CustomRecovery turns a panic into the standard envelope. WebSocket streams
// that already hijacked the connection are only logged.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			slog.Error("recovered from panic",
				slog.Any("panic", rec),
				slog.String("request_id", GetRequestID(c)),
				slog.String("path", c.Request.URL.Path))

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httperr.NewResponse(http.StatusInternalServerError, usermsg.Unknown, nil))
		}()
		c.Next()
	}
}
