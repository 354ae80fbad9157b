package components

import (
	"maya-connect/internal/handler"
	"maya-connect/internal/handler/api"
	"maya-connect/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSignupHandler,
		api.NewQRHandler,
		api.NewPartnerHandler,
		api.NewTransactionHandler,
		api.NewSubscriptionHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Signup       *api.SignupHandler
	QR           *api.QRHandler
	Partner      *api.PartnerHandler
	Transaction  *api.TransactionHandler
	Subscription *api.SubscriptionHandler
	Dashboard    *api.DashboardHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Signup:       p.Signup,
		QR:           p.QR,
		Partner:      p.Partner,
		Transaction:  p.Transaction,
		Subscription: p.Subscription,
		Dashboard:    p.Dashboard,
	}
}
