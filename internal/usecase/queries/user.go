package queries

import (
	"context"

	"github.com/google/uuid"

	"wanderbook/internal/infra"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/shared"
)

type UserQueryService struct {
	users UserReadStore
}

func NewUserQueryService(users UserReadStore) *UserQueryService {
	return &UserQueryService{users: users}
}

func (s *UserQueryService) Get(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := s.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to get user")
	}
	return view, nil
}
