package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	dombooking "wanderbook/internal/domain/booking"
	"wanderbook/internal/infra"
	"wanderbook/internal/pkg/clock"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/shared"
)

type BookingCommandService struct {
	uow      shared.UnitOfWork
	services *dombooking.Services
}

func NewBookingCommandService(uow shared.UnitOfWork, clk clock.Clock, prices dombooking.PriceCalculator) *BookingCommandService {
	return &BookingCommandService{
		uow:      uow,
		services: &dombooking.Services{Clock: clk, Prices: prices},
	}
}

type CreateBookingInput struct {
	ResourceID      uuid.UUID
	Start           time.Time
	End             time.Time
	PartySize       int
	SpecialRequests string
}

// Create validates against a fresh resource snapshot, prices, and persists
// the booking in one transaction. Validation failures come back as the domain
// sentinels; losing the insert race comes back as ErrBookingConflict.
func (s *BookingCommandService) Create(ctx context.Context, actor shared.Actor, input CreateBookingInput) (uuid.UUID, error) {
	note, err := dombooking.NewNote(input.SpecialRequests)
	if err != nil {
		return uuid.Nil, err
	}

	var bookingID uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ResourceByID(ctx, input.ResourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, shared.ErrResourceNotFound)
			}
			return errs.Wrap(err, "failed to load resource snapshot")
		}

		b, err := dombooking.New(s.services, *snap, dombooking.Request{
			TravelerID: actor.ID,
			Start:      input.Start,
			End:        input.End,
			PartySize:  input.PartySize,
		}, note)
		if err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, shared.ErrBookingConflict)
			}
			return errs.Wrap(err, "failed to create booking")
		}

		if err := tx.Notifications().Enqueue(ctx, shared.NotificationJob{
			Kind:        shared.NotificationBookingCreated,
			BookingID:   b.ID(),
			RecipientID: actor.ID,
			Payload: map[string]any{
				"resource_id": b.ResourceID().String(),
				"start_at":    b.Interval().Start(),
				"end_at":      b.Interval().End(),
			},
		}); err != nil {
			return errs.Wrap(err, "failed to enqueue creation notification")
		}

		bookingID = b.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

type CancelBookingInput struct {
	BookingID uuid.UUID
	Reason    string
}

// Cancel cancels a booking on behalf of its owner or an admin. The not-found
// check deliberately precedes the ownership check.
func (s *BookingCommandService) Cancel(ctx context.Context, actor shared.Actor, input CancelBookingInput) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, input.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, shared.ErrBookingNotFound)
			}
			return errs.Wrap(err, "failed to load booking")
		}

		if !actor.IsAdmin() && !b.IsOwnedBy(actor.ID) {
			return shared.ErrForbidden
		}

		if err := b.Cancel(input.Reason, s.services.Clock.Now()); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Wrap(err, "failed to persist cancellation")
		}

		if err := tx.Notifications().Enqueue(ctx, shared.NotificationJob{
			Kind:        shared.NotificationBookingCancelled,
			BookingID:   b.ID(),
			RecipientID: b.TravelerID(),
			Payload:     map[string]any{"reason": input.Reason},
		}); err != nil {
			return errs.Wrap(err, "failed to enqueue cancellation notification")
		}
		return nil
	})
}

type UpdateStatusInput struct {
	BookingID uuid.UUID
	Target    dombooking.Status
}

// UpdateStatus moves a booking along its state machine. Admin-only; the
// route middleware enforces the role but the command re-checks it so the
// rule survives any future route rewiring.
func (s *BookingCommandService) UpdateStatus(ctx context.Context, actor shared.Actor, input UpdateStatusInput) error {
	if !actor.IsAdmin() {
		return shared.ErrForbidden
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, input.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, shared.ErrBookingNotFound)
			}
			return errs.Wrap(err, "failed to load booking")
		}

		if err := b.TransitionTo(input.Target, s.services.Clock.Now()); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Wrap(err, "failed to persist status change")
		}

		if err := tx.Notifications().Enqueue(ctx, shared.NotificationJob{
			Kind:        shared.NotificationStatusChanged,
			BookingID:   b.ID(),
			RecipientID: b.TravelerID(),
			Payload:     map[string]any{"status": b.Status().String()},
		}); err != nil {
			return errs.Wrap(err, "failed to enqueue status notification")
		}
		return nil
	})
}
