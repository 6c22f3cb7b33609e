//go:build unit

package commands_test

import (
	"context"

	"github.com/google/uuid"

	dombooking "wanderbook/internal/domain/booking"
	"wanderbook/internal/domain/resource"
	domreview "wanderbook/internal/domain/review"
	"wanderbook/internal/infra"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/shared"
)

// In-memory stand-ins for the transactional ports. Every command test runs
// against these instead of a database.

type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		bookings:      &fakeBookingRepo{stored: map[uuid.UUID]*dombooking.Booking{}},
		reviews:       &fakeReviewRepo{},
		notifications: &fakeNotificationRepo{},
		reads: &fakeReads{
			resources: map[uuid.UUID]*resource.Snapshot{},
			bookings:  map[uuid.UUID]*shared.BookingSnapshot{},
			reviewed:  map[uuid.UUID]bool{},
		},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type fakeTx struct {
	bookings      *fakeBookingRepo
	reviews       *fakeReviewRepo
	notifications *fakeNotificationRepo
	reads         *fakeReads
}

func (t *fakeTx) Bookings() shared.BookingRepository           { return t.bookings }
func (t *fakeTx) Reviews() shared.ReviewRepository             { return t.reviews }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.reads }

type fakeBookingRepo struct {
	stored    map[uuid.UUID]*dombooking.Booking
	conflict  bool
	createErr error
	updateCnt int
}

func (r *fakeBookingRepo) Create(_ context.Context, b *dombooking.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	if r.conflict {
		return infra.WrapRepoErr("booking interval already taken",
			errs.New("overlapping active booking"), infra.KindConflict)
	}
	r.stored[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*dombooking.Booking, error) {
	b, ok := r.stored[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errs.New("no rows"), infra.KindNotFound)
	}
	return b, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *dombooking.Booking) error {
	r.updateCnt++
	r.stored[b.ID()] = b
	return nil
}

type fakeReviewRepo struct {
	created   []*domreview.Review
	createErr error
}

func (r *fakeReviewRepo) Create(_ context.Context, rev *domreview.Review) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, rev)
	return nil
}

type fakeNotificationRepo struct {
	jobs []shared.NotificationJob
}

func (r *fakeNotificationRepo) Enqueue(_ context.Context, job shared.NotificationJob) error {
	r.jobs = append(r.jobs, job)
	return nil
}

type fakeReads struct {
	resources map[uuid.UUID]*resource.Snapshot
	bookings  map[uuid.UUID]*shared.BookingSnapshot
	reviewed  map[uuid.UUID]bool
}

func (r *fakeReads) ResourceByID(_ context.Context, id uuid.UUID) (*resource.Snapshot, error) {
	snap, ok := r.resources[id]
	if !ok {
		return nil, infra.WrapRepoErr("resource not found", errs.New("no rows"), infra.KindNotFound)
	}
	return snap, nil
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, ok := r.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errs.New("no rows"), infra.KindNotFound)
	}
	return snap, nil
}

func (r *fakeReads) ReviewExistsForBooking(_ context.Context, bookingID uuid.UUID) (bool, error) {
	return r.reviewed[bookingID], nil
}
