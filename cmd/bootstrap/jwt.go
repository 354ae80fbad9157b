package bootstrap

import (
	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService reads tokens issued by the backend. Without JWT_SECRET only
// the claims and expiry are checked.
func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Auth.JWTSecret, nil)
}
