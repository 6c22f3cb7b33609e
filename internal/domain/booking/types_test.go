//go:build unit

package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wanderbook/internal/domain/booking"
	"wanderbook/internal/domain/resource"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind resource.Kind
		from booking.Status
		to   booking.Status
		want bool
	}{
		{"guide pending to confirmed", resource.KindGuide, booking.StatusPending, booking.StatusConfirmed, true},
		{"guide pending to cancelled", resource.KindGuide, booking.StatusPending, booking.StatusCancelled, true},
		{"guide pending straight to completed", resource.KindGuide, booking.StatusPending, booking.StatusCompleted, false},
		{"guide confirmed to in_progress", resource.KindGuide, booking.StatusConfirmed, booking.StatusInProgress, true},
		{"guide in_progress to completed", resource.KindGuide, booking.StatusInProgress, booking.StatusCompleted, true},
		{"guide in_progress cannot cancel", resource.KindGuide, booking.StatusInProgress, booking.StatusCancelled, false},
		{"guide completed is terminal", resource.KindGuide, booking.StatusCompleted, booking.StatusPending, false},
		{"guide cancelled is terminal", resource.KindGuide, booking.StatusCancelled, booking.StatusConfirmed, false},
		{"vehicle follows the default machine", resource.KindVehicle, booking.StatusConfirmed, booking.StatusInProgress, true},
		{"hotel room skips in_progress", resource.KindHotelRoom, booking.StatusConfirmed, booking.StatusInProgress, false},
		{"hotel room confirmed to completed", resource.KindHotelRoom, booking.StatusConfirmed, booking.StatusCompleted, true},
		{"hotel room confirmed to cancelled", resource.KindHotelRoom, booking.StatusConfirmed, booking.StatusCancelled, true},
		{"no transition from in_progress for hotel rooms", resource.KindHotelRoom, booking.StatusInProgress, booking.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, booking.CanTransition(tt.kind, tt.from, tt.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, booking.StatusCompleted.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.False(t, booking.StatusInProgress.IsTerminal())
}

func TestNewStatus(t *testing.T) {
	t.Parallel()

	got, err := booking.NewStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, got)

	_, err = booking.NewStatus("archived")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}
