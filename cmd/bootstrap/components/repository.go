package components

import (
	"meeting-room-api/internal/infra/db"
	"meeting-room-api/internal/infra/readstore"
	"meeting-room-api/internal/infra/repository"
	"meeting-room-api/internal/usecase/commands"
	"meeting-room-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQueryer,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

func NewQueryer(pool *pgxpool.Pool) db.Queryer {
	return pool
}
