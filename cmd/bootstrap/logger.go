package bootstrap

import (
	"log/slog"

	"maya-connect/internal/handler/middleware"
	"maya-connect/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	l := logger.GetSlogLogger()
	slog.SetDefault(l)
	return l
}
