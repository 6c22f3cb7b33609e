package readstore

import (
	"context"

	"github.com/google/uuid"

	"wanderbook/internal/infra"
	"wanderbook/internal/infra/db"
	"wanderbook/internal/pkg/pgconv"
	"wanderbook/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const selectUserSQL = `
SELECT id, email, role
FROM users
WHERE id = $1
`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var v queries.UserView
	err := s.db.QueryRow(ctx, selectUserSQL, id).Scan(&v.ID, &v.Email, &v.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user", err)
	}
	return &v, nil
}

const selectAuthUserSQL = `
SELECT id, email, role, password_hash
FROM users
WHERE email = $1
`

func (s *UserReadStore) FindAuthByEmail(ctx context.Context, email string) (*queries.AuthUser, error) {
	var v queries.AuthUser
	err := s.db.QueryRow(ctx, selectAuthUserSQL, email).Scan(&v.ID, &v.Email, &v.Role, &v.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user credentials", err)
	}
	return &v, nil
}
