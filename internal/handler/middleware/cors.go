package middleware

import (
	"log/slog"
	"slices"

	"maya-connect/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the web build of the app call the gateway and open
// the QR stream. The request ID header is always exposed for support tickets.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := cfg.ExposeHeaders
	if !slices.Contains(expose, requestIDHeader) {
		expose = append(slices.Clone(expose), requestIDHeader)
	}

	slog.Info("CORS enabled", slog.Any("origins", cfg.AllowOrigins), slog.Bool("credentials", cfg.AllowCredentials))
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		AllowWebSockets:  true,
		MaxAge:           cfg.MaxAge,
	})
}
