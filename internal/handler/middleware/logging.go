package middleware

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRequestIDKey = "request_id"
	requestIDHeader = "X-Request-ID"

	stackLines = 12
)

// Probe paths are only logged at debug level.
var quietPaths = map[string]bool{
	"/health": true,
}

type Logger struct {
	logger *slog.Logger
}

func NewLogger(cfg config.LogConfig) *Logger {
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if t, ok := a.Value.Any().(time.Time); ok && a.Key == slog.TimeKey {
				a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return &Logger{logger: slog.New(handler)}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware writes one line per request once it completes. QR stream
// upgrades are logged on arrival too since the completion line only comes
// when the socket closes.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		path := c.Request.URL.Path
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("client_ip", c.ClientIP()),
		}

		stream := strings.EqualFold(c.GetHeader("Upgrade"), "websocket")
		if stream {
			l.logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "stream requested", attrs...)
		}

		c.Next()

		status := c.Writer.Status()
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if s, ok := GetSession(c); ok {
			u := s.CurrentUser()
			attrs = append(attrs, slog.String("user_id", u.ID), slog.String("role", u.Role.String()))
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
			if status >= 500 {
				attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(c.Errors.Last().Err, stackLines)))
			}
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		case quietPaths[path]:
			level = slog.LevelDebug
		}

		msg := "request completed"
		if stream {
			msg = "stream closed"
		}
		l.logger.LogAttrs(c.Request.Context(), level, msg, attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	id, _ := c.Get(ctxRequestIDKey)
	s, _ := id.(string)
	return s
}
