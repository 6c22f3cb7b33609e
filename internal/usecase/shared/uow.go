package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wanderbook/internal/domain/booking"
	"wanderbook/internal/domain/resource"
	"wanderbook/internal/domain/review"
)

// UnitOfWork runs a function inside a single database transaction. Every
// repository obtained from the Tx shares that transaction; returning an error
// rolls everything back.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// BookingRepository is the write side of the bookings table. Create
// serializes concurrent inserts per resource and re-checks interval overlap,
// so a lost race surfaces as a conflict instead of a double booking.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
}

// NotificationJob is an outbox row written in the same transaction as the
// state change it announces. A separate worker drains the table.
type NotificationJob struct {
	Kind        string
	BookingID   uuid.UUID
	RecipientID uuid.UUID
	Payload     map[string]any
}

const (
	NotificationBookingCreated   = "booking_created"
	NotificationBookingCancelled = "booking_cancelled"
	NotificationStatusChanged    = "booking_status_changed"
)

type NotificationRepository interface {
	Enqueue(ctx context.Context, job NotificationJob) error
}

// CommandReads are the read lookups commands need mid-transaction. They
// return plain snapshots, not aggregates; mutation always goes through a
// repository.
type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*resource.Snapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type BookingSnapshot struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	ResourceKind resource.Kind
	TravelerID   uuid.UUID
	Status       booking.Status
	StartAt      time.Time
	EndAt        time.Time
	PartySize    int
	TotalAmount  int64
	Currency     string
}
