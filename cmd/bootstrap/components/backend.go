package components

import (
	"maya-connect/internal/infra/backend"
	"maya-connect/internal/usecase/commands"
	"maya-connect/internal/usecase/qrsession"
	"maya-connect/internal/usecase/queries"

	"go.uber.org/fx"
)

// BackendModule exposes the single HTTP client through every port the use
// cases depend on.
var BackendModule = fx.Module("backend",
	fx.Provide(
		fx.Annotate(
			backend.New,
			fx.As(new(commands.AuthAPI)),
			fx.As(new(commands.RegistrationAPI)),
			fx.As(new(queries.UserReadStore)),
			fx.As(new(queries.PartnerReadStore)),
			fx.As(new(queries.TransactionReadStore)),
			fx.As(new(queries.SubscriptionReadStore)),
			fx.As(new(qrsession.QRAPI)),
		),
	),
)
