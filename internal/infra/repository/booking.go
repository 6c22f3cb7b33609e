package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	dombooking "wanderbook/internal/domain/booking"
	"wanderbook/internal/domain/resource"
	"wanderbook/internal/infra"
	"wanderbook/internal/infra/db"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/pkg/pgconv"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// activeStatuses are the statuses that hold the resource's calendar. Only
// these count for overlap checks; cancelled and completed bookings do not
// block new reservations.
const activeStatusesSQL = `('pending', 'confirmed', 'in_progress')`

const lockResourceSQL = `SELECT pg_advisory_xact_lock(hashtext($1::text))`

const countOverlapSQL = `
SELECT COUNT(*)
FROM bookings
WHERE resource_id = $1
  AND status IN ` + activeStatusesSQL + `
  AND start_at < $3
  AND end_at > $2
`

const insertBookingSQL = `
INSERT INTO bookings (
	id, resource_id, traveler_id, start_at, end_at, party_size,
	total_amount, currency, status, payment_status, special_requests,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

// Create inserts a booking after serializing on the resource and re-checking
// interval overlap. The advisory lock is transaction-scoped, so two
// concurrent creates for the same resource queue up; the loser of the race
// sees the winner's row in the overlap count and gets a conflict.
func (r *BookingRepository) Create(ctx context.Context, b *dombooking.Booking) error {
	if _, err := r.db.Exec(ctx, lockResourceSQL, b.ResourceID()); err != nil {
		return infra.WrapRepoErr("failed to lock resource for booking", err)
	}

	var overlapping int
	err := r.db.QueryRow(ctx, countOverlapSQL,
		b.ResourceID(), b.Interval().Start(), b.Interval().End(),
	).Scan(&overlapping)
	if err != nil {
		return infra.WrapRepoErr("failed to check booking overlap", err)
	}
	if overlapping > 0 {
		return infra.WrapRepoErr("booking interval already taken",
			errs.New("overlapping active booking"), infra.KindConflict)
	}

	_, err = r.db.Exec(ctx, insertBookingSQL,
		b.ID(), b.ResourceID(), b.TravelerID(),
		b.Interval().Start(), b.Interval().End(), b.PartySize(),
		b.Total().Amount(), b.Total().Currency(),
		b.Status().String(), b.PaymentStatus().String(),
		b.SpecialRequests().String(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

const selectBookingForUpdateSQL = `
SELECT b.id, b.resource_id, r.kind, b.traveler_id,
       b.start_at, b.end_at, b.party_size,
       b.total_amount, b.currency, b.status, b.payment_status,
       b.special_requests, b.cancellation_reason, b.cancelled_at,
       b.created_at, b.updated_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE b.id = $1
FOR UPDATE OF b
`

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*dombooking.Booking, error) {
	row := r.db.QueryRow(ctx, selectBookingForUpdateSQL, id)

	var (
		bookingID, resourceID, travelerID     uuid.UUID
		kind, status, paymentStatus, currency string
		startAt, endAt, createdAt, updatedAt  time.Time
		partySize                             int
		totalAmount                           int64
		specialRequests                       string
		cancellationReason                    *string
		cancelledAt                           *time.Time
	)

	err := row.Scan(
		&bookingID, &resourceID, &kind, &travelerID,
		&startAt, &endAt, &partySize,
		&totalAmount, &currency, &status, &paymentStatus,
		&specialRequests, &cancellationReason, &cancelledAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}

	return rehydrate(
		bookingID, resourceID, travelerID, kind,
		startAt, endAt, partySize, totalAmount, currency,
		status, paymentStatus, specialRequests,
		cancellationReason, cancelledAt, createdAt, updatedAt,
	)
}

const updateBookingSQL = `
UPDATE bookings
SET status = $2,
    payment_status = $3,
    cancellation_reason = $4,
    cancelled_at = $5,
    updated_at = $6
WHERE id = $1
`

func (r *BookingRepository) Update(ctx context.Context, b *dombooking.Booking) error {
	tag, err := r.db.Exec(ctx, updateBookingSQL,
		b.ID(), b.Status().String(), b.PaymentStatus().String(),
		b.CancellationReason(), b.CancelledAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", errs.New("no rows updated"), infra.KindNotFound)
	}
	return nil
}

func rehydrate(
	id, resourceID, travelerID uuid.UUID,
	kind string,
	startAt, endAt time.Time,
	partySize int,
	totalAmount int64,
	currency, status, paymentStatus, specialRequests string,
	cancellationReason *string,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) (*dombooking.Booking, error) {
	resourceKind, err := resource.NewKind(kind)
	if err != nil {
		return nil, infra.WrapRepoErr("stored resource kind is invalid", err)
	}
	interval, err := dombooking.NewInterval(startAt, endAt)
	if err != nil {
		return nil, infra.WrapRepoErr("stored interval is invalid", err)
	}
	note, err := dombooking.NewNote(specialRequests)
	if err != nil {
		return nil, infra.WrapRepoErr("stored special requests are invalid", err)
	}

	return dombooking.Reconstruct(
		id, resourceID, travelerID, resourceKind,
		interval, partySize,
		dombooking.NewMoney(totalAmount, currency),
		dombooking.Status(status), dombooking.PaymentStatus(paymentStatus),
		note, cancellationReason, cancelledAt, createdAt, updatedAt,
	), nil
}
