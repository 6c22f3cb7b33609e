package booking

import (
	"errors"
	"time"

	"wanderbook/internal/domain/resource"

	"github.com/google/uuid"
)

var (
	ErrResourceUnavailable = errors.New("resource is not available for booking")
	ErrInvalidInterval     = errors.New("invalid booking interval")
	ErrCapacityExceeded    = errors.New("party size exceeds resource capacity")
	ErrBlackoutConflict    = errors.New("requested interval falls in a blackout period")
)

// Request is the ephemeral input to booking creation, before validation has
// normalized it.
type Request struct {
	TravelerID uuid.UUID
	Start      time.Time
	End        time.Time
	PartySize  int
}

// Validate decides admissibility of a request against a catalog snapshot.
// Pure: the caller supplies now, and nothing is mutated. On success the
// normalized half-open interval is returned.
func Validate(req Request, snap resource.Snapshot, now time.Time) (Interval, error) {
	if !snap.Available {
		return Interval{}, ErrResourceUnavailable
	}

	iv, err := NewInterval(req.Start, req.End)
	if err != nil {
		return Interval{}, ErrInvalidInterval
	}
	// Bookings must be strictly in the future.
	if !req.Start.After(now) {
		return Interval{}, ErrInvalidInterval
	}

	if req.PartySize > snap.Capacity {
		return Interval{}, ErrCapacityExceeded
	}

	for _, b := range snap.Blackouts {
		if b.Overlaps(iv.Start(), iv.End()) {
			return Interval{}, ErrBlackoutConflict
		}
	}

	return iv, nil
}
