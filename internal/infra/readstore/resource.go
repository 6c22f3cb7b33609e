package readstore

import (
	"context"

	"github.com/google/uuid"

	"wanderbook/internal/infra"
	"wanderbook/internal/infra/db"
	"wanderbook/internal/pkg/pgconv"
	"wanderbook/internal/usecase/queries"
)

type ResourceReadStore struct {
	db db.DBTX
}

func NewResourceReadStore(dbtx db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{db: dbtx}
}

const selectResourceViewSQL = `
SELECT id, kind, name, capacity, daily_rate, currency, available
FROM resources
WHERE id = $1
`

func (s *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	var v queries.ResourceView
	err := s.db.QueryRow(ctx, selectResourceViewSQL, id).Scan(
		&v.ID, &v.Kind, &v.Name, &v.Capacity,
		&v.DailyRate, &v.Currency, &v.Available,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load resource view", err)
	}
	return &v, nil
}
