package repository

import (
	"context"

	domreview "wanderbook/internal/domain/review"
	"wanderbook/internal/infra"
	"wanderbook/internal/infra/db"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

const insertReviewSQL = `
INSERT INTO reviews (
	id, traveler_id, resource_id, booking_id, rating, comment,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// Create relies on the unique index on booking_id to keep reviews at one per
// completed booking even under concurrent submits.
func (r *ReviewRepository) Create(ctx context.Context, rev *domreview.Review) error {
	_, err := r.db.Exec(ctx, insertReviewSQL,
		rev.ID(), rev.TravelerID(), rev.ResourceID(), rev.BookingID(),
		rev.Rating().Value(), rev.Comment().String(),
		rev.CreatedAt(), rev.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert review", err)
	}
	return nil
}
