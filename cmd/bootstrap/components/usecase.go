package components

import (
	"maya-connect/internal/domain/session"
	"maya-connect/internal/usecase"
	"maya-connect/internal/usecase/commands"
	"maya-connect/internal/usecase/qrsession"
	"maya-connect/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseSessionModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseQRModule,
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		session.NewRegistry,
		usecase.NewSessionResolver,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewSignupCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPartnerQueries,
		queries.NewTransactionQueries,
		queries.NewSubscriptionQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseQRModule = fx.Module("usecase/qrsession",
	fx.Provide(
		qrsession.NewService,
	),
)
