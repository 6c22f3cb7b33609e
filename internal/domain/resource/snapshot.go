package resource

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidKind = errors.New("invalid resource kind")

// Kind discriminates the three bookable resource types. The booking state
// machine consults it to decide which status transitions apply.
type Kind string

const (
	KindGuide     Kind = "guide"
	KindVehicle   Kind = "vehicle"
	KindHotelRoom Kind = "hotel_room"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindGuide, KindVehicle, KindHotelRoom:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

// Blackout is a half-open interval [Start, End) during which the resource
// cannot be booked.
type Blackout struct {
	Start time.Time
	End   time.Time
}

func (b Blackout) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}

// Snapshot is a read-only, point-in-time view of a catalog resource as the
// booking engine sees it. The catalog owns these records; the engine never
// writes them back.
type Snapshot struct {
	ID        uuid.UUID
	Kind      Kind
	Name      string
	Capacity  int
	DailyRate int64 // minor units; 0 means no rate configured
	Currency  string
	Available bool
	Blackouts []Blackout
}
