package bootstrap

import (
	"maya-connect/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)

// ConfigSections exposes the config slices individual constructors depend on.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.BackendConfig { return cfg.Backend },
	func(cfg config.Config) config.QRConfig { return cfg.QR },
	func(cfg config.Config) config.NearbyConfig { return cfg.Nearby },
	func(cfg config.Config) config.CORSConfig { return cfg.CORS },
)
