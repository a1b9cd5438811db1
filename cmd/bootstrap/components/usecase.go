package components

import (
	"meeting-room-api/internal/pkg/clock"
	"meeting-room-api/internal/pkg/config"
	"meeting-room-api/internal/usecase"
	"meeting-room-api/internal/usecase/commands"
	"meeting-room-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		func(repo commands.UserRepository, cfg config.Config) commands.UserCommands {
			return commands.NewUserCommands(repo, cfg.Auth.BcryptCost)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
