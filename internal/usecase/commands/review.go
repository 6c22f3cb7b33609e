package commands

import (
	"context"

	"github.com/google/uuid"

	dombooking "wanderbook/internal/domain/booking"
	domreview "wanderbook/internal/domain/review"
	"wanderbook/internal/infra"
	"wanderbook/internal/pkg/clock"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/shared"
)

type ReviewCommandService struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewReviewCommandService(uow shared.UnitOfWork, clk clock.Clock) *ReviewCommandService {
	return &ReviewCommandService{uow: uow, clk: clk}
}

type CreateReviewInput struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

// Create submits a review for a completed booking. Eligibility is one review
// per completed booking, by the traveler who made it. The unique index on
// booking_id backs up the in-transaction existence check.
func (s *ReviewCommandService) Create(ctx context.Context, actor shared.Actor, input CreateReviewInput) (uuid.UUID, error) {
	var reviewID uuid.UUID
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, input.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, shared.ErrBookingNotFound)
			}
			return errs.Wrap(err, "failed to load booking")
		}

		if snap.TravelerID != actor.ID {
			return shared.ErrForbidden
		}
		if snap.Status != dombooking.StatusCompleted {
			return domreview.ErrBookingNotEligible
		}

		exists, err := tx.Reads().ReviewExistsForBooking(ctx, input.BookingID)
		if err != nil {
			return errs.Wrap(err, "failed to check for existing review")
		}
		if exists {
			return domreview.ErrReviewExists
		}

		rev, err := domreview.NewReview(
			uuid.Nil, actor.ID, snap.ResourceID, input.BookingID,
			input.Rating, input.Comment, s.clk.Now(),
		)
		if err != nil {
			return err
		}

		if err := tx.Reviews().Create(ctx, rev); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, domreview.ErrReviewExists)
			}
			return errs.Wrap(err, "failed to create review")
		}

		reviewID = rev.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reviewID, nil
}
