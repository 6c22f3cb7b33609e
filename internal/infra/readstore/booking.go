package readstore

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"wanderbook/internal/infra"
	"wanderbook/internal/infra/db"
	"wanderbook/internal/pkg/pgconv"
	"wanderbook/internal/usecase/queries"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const selectBookingViewSQL = `
SELECT b.id, b.resource_id, r.kind, r.name, b.traveler_id,
       b.start_at, b.end_at, b.party_size,
       b.total_amount, b.currency, b.status, b.payment_status,
       b.special_requests, b.cancellation_reason, b.cancelled_at,
       b.created_at, b.updated_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE b.id = $1
`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := s.db.QueryRow(ctx, selectBookingViewSQL, id).Scan(
		&v.ID, &v.ResourceID, &v.ResourceKind, &v.ResourceName, &v.TravelerID,
		&v.StartAt, &v.EndAt, &v.PartySize,
		&v.TotalAmount, &v.Currency, &v.Status, &v.PaymentStatus,
		&v.SpecialRequests, &v.CancellationReason, &v.CancelledAt,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking view", err)
	}
	return &v, nil
}

// List filters by traveler and status. Both filters are optional; the WHERE
// clause is assembled from whichever are set.
func (s *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) (*queries.BookingList, error) {
	conds := []string{"1=1"}
	args := []any{}

	if filter.TravelerID != uuid.Nil {
		args = append(args, filter.TravelerID)
		conds = append(conds, "b.traveler_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "b.status = $"+strconv.Itoa(len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	countSQL := "SELECT COUNT(*) FROM bookings b WHERE " + where
	if err := s.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	listSQL := `
SELECT b.id, b.resource_id, r.name, b.start_at, b.end_at,
       b.status, b.total_amount, b.currency, b.created_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE ` + where + `
ORDER BY b.created_at DESC, b.id DESC
LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := s.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := []queries.BookingListItem{}
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.ResourceID, &item.ResourceName,
			&item.StartAt, &item.EndAt, &item.Status,
			&item.TotalAmount, &item.Currency, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return &queries.BookingList{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}
