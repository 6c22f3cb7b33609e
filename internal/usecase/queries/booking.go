package queries

import (
	"context"

	"github.com/google/uuid"

	"wanderbook/internal/infra"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/shared"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type BookingQueryService struct {
	bookings BookingReadStore
}

func NewBookingQueryService(bookings BookingReadStore) *BookingQueryService {
	return &BookingQueryService{bookings: bookings}
}

// Get returns a single booking. Existence is checked before ownership, so a
// non-owner asking for a missing id and for someone else's id get different
// answers only once the row actually exists.
func (s *BookingQueryService) Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to get booking")
	}

	if !actor.IsAdmin() && view.TravelerID != actor.ID {
		return nil, shared.ErrForbidden
	}

	return view, nil
}

// List returns the caller's bookings. Admins see every traveler's bookings
// and may scope by traveler id; everyone else is forced onto their own.
func (s *BookingQueryService) List(ctx context.Context, actor shared.Actor, filter BookingFilter) (*BookingList, error) {
	if !actor.IsAdmin() {
		filter.TravelerID = actor.ID
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	list, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return list, nil
}
