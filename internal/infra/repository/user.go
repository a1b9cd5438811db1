package repository

import (
	"context"

	"meeting-room-api/internal/domain/user"
	"meeting-room-api/internal/infra"
	"meeting-room-api/internal/infra/db"
)

type UserRepository struct {
	db db.Queryer
}

func NewUserRepository(q db.Queryer) *UserRepository {
	return &UserRepository{db: q}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		u.ID(),
		u.Name().Value(),
		u.Email().Value(),
		u.PasswordHash(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}

	return nil
}
