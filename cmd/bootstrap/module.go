package bootstrap

import (
	"maya-connect/cmd/bootstrap/components"
	"maya-connect/internal/pkg/clock"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	fx.Provide(clock.NewRealClock),
	CacheModule,
	components.BackendModule,
	components.UseCaseModule,
	components.HandlerModule,
)
