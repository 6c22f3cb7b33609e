package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	dombooking "wanderbook/internal/domain/booking"
	"wanderbook/internal/domain/resource"
	"wanderbook/internal/infra"
	"wanderbook/internal/infra/db"
	"wanderbook/internal/pkg/pgconv"
	"wanderbook/internal/usecase/shared"
)

// CommandReadStore serves the lookups commands need mid-transaction. It is
// always bound to the command's own transaction so the snapshots it returns
// are consistent with the writes that follow.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(dbtx db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: dbtx}
}

const selectResourceSQL = `
SELECT id, kind, name, capacity, daily_rate, currency, available
FROM resources
WHERE id = $1
`

const selectBlackoutsSQL = `
SELECT start_at, end_at
FROM resource_blackouts
WHERE resource_id = $1
ORDER BY start_at
`

func (s *CommandReadStore) ResourceByID(ctx context.Context, id uuid.UUID) (*resource.Snapshot, error) {
	var (
		snap resource.Snapshot
		kind string
	)
	err := s.db.QueryRow(ctx, selectResourceSQL, id).Scan(
		&snap.ID, &kind, &snap.Name, &snap.Capacity,
		&snap.DailyRate, &snap.Currency, &snap.Available,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load resource", err)
	}

	resourceKind, err := resource.NewKind(kind)
	if err != nil {
		return nil, infra.WrapRepoErr("stored resource kind is invalid", err)
	}
	snap.Kind = resourceKind

	rows, err := s.db.Query(ctx, selectBlackoutsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load resource blackouts", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b resource.Blackout
		if err := rows.Scan(&b.Start, &b.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blackout", err)
		}
		snap.Blackouts = append(snap.Blackouts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blackouts", err)
	}

	return &snap, nil
}

const selectBookingSnapshotSQL = `
SELECT b.id, b.resource_id, r.kind, b.traveler_id, b.status,
       b.start_at, b.end_at, b.party_size, b.total_amount, b.currency
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE b.id = $1
`

func (s *CommandReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap         shared.BookingSnapshot
		kind, status string
		startAt      time.Time
		endAt        time.Time
	)
	err := s.db.QueryRow(ctx, selectBookingSnapshotSQL, id).Scan(
		&snap.ID, &snap.ResourceID, &kind, &snap.TravelerID, &status,
		&startAt, &endAt, &snap.PartySize, &snap.TotalAmount, &snap.Currency,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking snapshot", err)
	}

	resourceKind, err := resource.NewKind(kind)
	if err != nil {
		return nil, infra.WrapRepoErr("stored resource kind is invalid", err)
	}
	snap.ResourceKind = resourceKind
	snap.Status = dombooking.Status(status)
	snap.StartAt = startAt
	snap.EndAt = endAt

	return &snap, nil
}

const reviewExistsSQL = `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`

func (s *CommandReadStore) ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	if err := s.db.QueryRow(ctx, reviewExistsSQL, bookingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
