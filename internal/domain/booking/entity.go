package booking

import (
	"time"

	"wanderbook/internal/domain/resource"
	"wanderbook/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock  clock.Clock
	Prices PriceCalculator
}

// Booking is the persisted reservation aggregate. It is created through New
// (validation + pricing) or rehydrated through Reconstruct; status only moves
// through Cancel and TransitionTo, which consult the per-kind state machine.
// Bookings are never deleted: cancellation is a status, and history stays
// queryable.
type Booking struct {
	id                 uuid.UUID
	resourceID         uuid.UUID
	resourceKind       resource.Kind
	travelerID         uuid.UUID
	interval           Interval
	partySize          int
	total              Money
	status             Status
	paymentStatus      PaymentStatus
	specialRequests    Note
	cancellationReason *string
	cancelledAt        *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// New validates the request against the snapshot, prices it, and returns a
// pending booking. Any validator rejection aborts creation entirely. The
// total is locked here; nothing recalculates it afterwards.
func New(services *Services, snap resource.Snapshot, req Request, note Note) (*Booking, error) {
	now := services.Clock.Now()

	iv, err := Validate(req, snap, now)
	if err != nil {
		return nil, err
	}

	quote := services.Prices.Quote(snap, iv)

	return &Booking{
		id:              uuid.New(),
		resourceID:      snap.ID,
		resourceKind:    snap.Kind,
		travelerID:      req.TravelerID,
		interval:        iv,
		partySize:       req.PartySize,
		total:           NewMoney(quote.Amount, quote.Currency),
		status:          StatusPending,
		paymentStatus:   PaymentPending,
		specialRequests: note,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id, resourceID, travelerID uuid.UUID,
	kind resource.Kind,
	interval Interval,
	partySize int,
	total Money,
	status Status,
	paymentStatus PaymentStatus,
	specialRequests Note,
	cancellationReason *string,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		resourceID:         resourceID,
		resourceKind:       kind,
		travelerID:         travelerID,
		interval:           interval,
		partySize:          partySize,
		total:              total,
		status:             status,
		paymentStatus:      paymentStatus,
		specialRequests:    specialRequests,
		cancellationReason: cancellationReason,
		cancelledAt:        cancelledAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Cancel moves the booking to cancelled. Only pending and confirmed bookings
// can be cancelled; terminal bookings report ErrAlreadyTerminal and anything
// else (in_progress) ErrInvalidTransition. Ownership is the caller's concern.
func (b *Booking) Cancel(reason string, now time.Time) error {
	if b.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if !b.status.IsCancellable() {
		return ErrInvalidTransition
	}

	b.status = StatusCancelled
	b.cancellationReason = &reason
	b.cancelledAt = &now
	b.updatedAt = now
	return nil
}

// TransitionTo advances the booking along the per-kind state machine. The
// ordering is forward-only; no transition resurrects a terminal booking.
func (b *Booking) TransitionTo(target Status, now time.Time) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if b.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if !CanTransition(b.resourceKind, b.status, target) {
		return ErrInvalidTransition
	}

	b.status = target
	b.updatedAt = now
	return nil
}

func (b *Booking) IsOwnedBy(travelerID uuid.UUID) bool {
	return b.travelerID == travelerID
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) ResourceID() uuid.UUID       { return b.resourceID }
func (b *Booking) ResourceKind() resource.Kind { return b.resourceKind }
func (b *Booking) TravelerID() uuid.UUID       { return b.travelerID }
func (b *Booking) Interval() Interval          { return b.interval }
func (b *Booking) PartySize() int              { return b.partySize }
func (b *Booking) Total() Money                { return b.total }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus {
	return b.paymentStatus
}
func (b *Booking) SpecialRequests() Note       { return b.specialRequests }
func (b *Booking) CancellationReason() *string { return b.cancellationReason }
func (b *Booking) CancelledAt() *time.Time     { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
