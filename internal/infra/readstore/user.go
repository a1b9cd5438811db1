package readstore

import (
	"context"

	"meeting-room-api/internal/infra"
	"meeting-room-api/internal/infra/db"
	"meeting-room-api/internal/pkg/pgconv"
	"meeting-room-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.Queryer
}

func NewUserReadStore(q db.Queryer) *UserReadStore {
	return &UserReadStore{db: q}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PublicUserView, error) {
	query := `SELECT id, name, email FROM users WHERE id = $1`

	var view queries.PublicUserView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.Email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.PublicUserView, string, error) {
	query := `SELECT id, name, email, password_hash FROM users WHERE email = $1`

	var (
		view queries.PublicUserView
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&view.ID, &view.Name, &view.Email, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, hash, nil
}
