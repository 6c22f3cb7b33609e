package queries

import (
	"context"

	"github.com/google/uuid"

	"wanderbook/internal/domain/review"
	"wanderbook/internal/infra"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/shared"
)

type ReviewQueryService struct {
	reviews   ReviewReadStore
	resources ResourceReadStore
}

func NewReviewQueryService(reviews ReviewReadStore, resources ResourceReadStore) *ReviewQueryService {
	return &ReviewQueryService{reviews: reviews, resources: resources}
}

// ListByResource pages through a resource's reviews, newest first. It fetches
// one row beyond the limit to decide whether a next cursor exists.
func (s *ReviewQueryService) ListByResource(ctx context.Context, resourceID uuid.UUID, limit int, cursorStr string) (*ReviewPage, error) {
	if _, err := s.resourceOrNotFound(ctx, resourceID); err != nil {
		return nil, err
	}

	after, err := DecodeCursor(cursorStr)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, err := s.reviews.ListByResource(ctx, resourceID, limit+1, after)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reviews")
	}

	page := &ReviewPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		last := page.Items[limit-1]
		page.NextCursor = &Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}
	return page, nil
}

// RatingDistribution recomputes the distribution from stored ratings on every
// call. Nothing is cached, so the numbers can never drift from the reviews.
func (s *ReviewQueryService) RatingDistribution(ctx context.Context, resourceID uuid.UUID) (*RatingDistributionView, error) {
	if _, err := s.resourceOrNotFound(ctx, resourceID); err != nil {
		return nil, err
	}

	ratings, err := s.reviews.RatingsByResource(ctx, resourceID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load ratings")
	}

	dist := review.Aggregate(ratings)
	return &RatingDistributionView{
		ResourceID:    resourceID,
		Counts:        dist.Counts,
		TotalReviews:  dist.TotalReviews,
		AverageRating: dist.AverageRating,
	}, nil
}

func (s *ReviewQueryService) resourceOrNotFound(ctx context.Context, resourceID uuid.UUID) (*ResourceView, error) {
	res, err := s.resources.FindByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrResourceNotFound)
		}
		return nil, errs.Wrap(err, "failed to load resource")
	}
	return res, nil
}
