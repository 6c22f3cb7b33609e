//go:build unit || e2e

package builder

import (
	"time"

	dombooking "wanderbook/internal/domain/booking"
	"wanderbook/internal/domain/resource"
	"wanderbook/internal/pkg/clock"
	"wanderbook/internal/usecase/queries"
	"wanderbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// BaseTime is the fixed "now" used by domain builds so tests are not
// sensitive to the wall clock.
var BaseTime = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	TravelerID      uuid.UUID
	ResourceID      uuid.UUID
	Kind            resource.Kind
	ResourceName    string
	Capacity        int
	DailyRate       int64
	Currency        string
	Available       bool
	Blackouts       []resource.Blackout
	Start           time.Time
	End             time.Time
	PartySize       int
	SpecialRequests string
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		TravelerID:   uuid.New(),
		ResourceID:   uuid.New(),
		Kind:         resource.KindGuide,
		ResourceName: "Ella Rock Trekking Guide",
		Capacity:     4,
		DailyRate:    8000,
		Currency:     "LKR",
		Available:    true,
		Start:        BaseTime.Add(24 * time.Hour),
		End:          BaseTime.Add(72 * time.Hour),
		PartySize:    2,
		Now:          BaseTime,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildSnapshot() resource.Snapshot {
	return resource.Snapshot{
		ID:        b.ResourceID,
		Kind:      b.Kind,
		Name:      b.ResourceName,
		Capacity:  b.Capacity,
		DailyRate: b.DailyRate,
		Currency:  b.Currency,
		Available: b.Available,
		Blackouts: b.Blackouts,
	}
}

func (b *BookingBuilder) BuildRequest() dombooking.Request {
	return dombooking.Request{
		TravelerID: b.TravelerID,
		Start:      b.Start,
		End:        b.End,
		PartySize:  b.PartySize,
	}
}

func (b *BookingBuilder) BuildServices() *dombooking.Services {
	return &dombooking.Services{
		Clock:  clock.NewMockClock(b.Now),
		Prices: dombooking.NewDailyRateCalculator(15000, "LKR"),
	}
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	note, err := dombooking.NewNote(b.SpecialRequests)
	if err != nil {
		return nil, err
	}
	return dombooking.New(b.BuildServices(), b.BuildSnapshot(), b.BuildRequest(), note)
}

func (b *BookingBuilder) BuildCommandSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:           uuid.New(),
		ResourceID:   b.ResourceID,
		ResourceKind: b.Kind,
		TravelerID:   b.TravelerID,
		Status:       dombooking.StatusPending,
		StartAt:      b.Start,
		EndAt:        b.End,
		PartySize:    b.PartySize,
		TotalAmount:  b.DailyRate * 2,
		Currency:     b.Currency,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            uuid.New(),
		ResourceID:    b.ResourceID,
		ResourceKind:  b.Kind.String(),
		ResourceName:  b.ResourceName,
		TravelerID:    b.TravelerID,
		StartAt:       b.Start,
		EndAt:         b.End,
		PartySize:     b.PartySize,
		TotalAmount:   b.DailyRate * 2,
		Currency:      b.Currency,
		Status:        dombooking.StatusPending.String(),
		PaymentStatus: dombooking.PaymentPending.String(),
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           uuid.New(),
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		StartAt:      b.Start,
		EndAt:        b.End,
		Status:       dombooking.StatusPending.String(),
		TotalAmount:  b.DailyRate * 2,
		Currency:     b.Currency,
		CreatedAt:    b.Now,
	}
}
