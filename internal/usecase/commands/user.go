package commands

import (
	"context"
	"log/slog"

	"meeting-room-api/internal/domain/user"
	reqdto "meeting-room-api/internal/handler/dto/request"
	"meeting-room-api/internal/infra"
	"meeting-room-api/internal/pkg/errs"
	"meeting-room-api/internal/pkg/password"
	"meeting-room-api/internal/usecase/queries"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}

type UserCommands interface {
	Register(ctx context.Context, req reqdto.RegisterUserRequest) (*queries.PublicUserView, error)
}

type userCommandsImpl struct {
	repo       UserRepository
	bcryptCost int
}

func NewUserCommands(repo UserRepository, bcryptCost int) UserCommands {
	return &userCommandsImpl{
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account and returns its public projection. Duplicate
// emails surface from the unique constraint, so concurrent registrations
// for the same address cannot both succeed.
func (u *userCommandsImpl) Register(ctx context.Context, req reqdto.RegisterUserRequest) (*queries.PublicUserView, error) {
	name, email, plaintext, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(plaintext.Value(), u.bcryptCost)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity := user.NewUser(name, email, hash)

	if err := u.repo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("user registered", "user_id", entity.ID())

	return &queries.PublicUserView{
		ID:    entity.ID(),
		Name:  entity.Name().Value(),
		Email: entity.Email().Value(),
	}, nil
}
