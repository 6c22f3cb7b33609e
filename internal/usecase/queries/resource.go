package queries

import (
	"context"

	"github.com/google/uuid"

	"wanderbook/internal/infra"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/shared"
)

type ResourceQueryService struct {
	resources ResourceReadStore
}

func NewResourceQueryService(resources ResourceReadStore) *ResourceQueryService {
	return &ResourceQueryService{resources: resources}
}

func (s *ResourceQueryService) Get(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	res, err := s.resources.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrResourceNotFound)
		}
		return nil, errs.Wrap(err, "failed to get resource")
	}
	return res, nil
}
