package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wanderbook/internal/infra"
	"wanderbook/internal/infra/db"
	"wanderbook/internal/usecase/queries"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const listReviewsSQL = `
SELECT id, traveler_id, resource_id, booking_id, rating, comment, created_at
FROM reviews
WHERE resource_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

const listReviewsAfterSQL = `
SELECT id, traveler_id, resource_id, booking_id, rating, comment, created_at
FROM reviews
WHERE resource_id = $1
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4
`

func (s *ReviewReadStore) ListByResource(ctx context.Context, resourceID uuid.UUID, limit int, after *queries.Cursor) ([]queries.ReviewView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		rows, err = s.db.Query(ctx, listReviewsSQL, resourceID, limit)
	} else {
		rows, err = s.db.Query(ctx, listReviewsAfterSQL, resourceID, after.CreatedAt, after.ID, limit)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	items := []queries.ReviewView{}
	for rows.Next() {
		var v queries.ReviewView
		if err := rows.Scan(
			&v.ID, &v.TravelerID, &v.ResourceID, &v.BookingID,
			&v.Rating, &v.Comment, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return items, nil
}

const ratingsByResourceSQL = `SELECT rating FROM reviews WHERE resource_id = $1`

func (s *ReviewReadStore) RatingsByResource(ctx context.Context, resourceID uuid.UUID) ([]int, error) {
	rows, err := s.db.Query(ctx, ratingsByResourceSQL, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load ratings", err)
	}
	defer rows.Close()

	ratings := []int{}
	for rows.Next() {
		var r int
		if err := rows.Scan(&r); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rating", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ratings", err)
	}
	return ratings, nil
}
