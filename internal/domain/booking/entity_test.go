//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderbook/internal/domain/booking"
	"wanderbook/internal/domain/resource"
	"wanderbook/tests/common/builder"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates a pending booking with a locked total", func(t *testing.T) {
		t.Parallel()

		b := builder.NewBookingBuilder()
		got, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, got.Status())
		assert.Equal(t, booking.PaymentPending, got.PaymentStatus())
		assert.Equal(t, b.TravelerID, got.TravelerID())
		assert.Equal(t, b.ResourceID, got.ResourceID())
		// 48h at LKR 8000/day
		assert.Equal(t, int64(16000), got.Total().Amount())
		assert.Equal(t, "LKR", got.Total().Currency())
		assert.Equal(t, b.Now, got.CreatedAt())
	})

	t.Run("validator rejection aborts creation", func(t *testing.T) {
		t.Parallel()

		b := builder.NewBookingBuilder()
		b.Available = false

		got, err := b.BuildDomain()
		assert.ErrorIs(t, err, booking.ErrResourceUnavailable)
		assert.Nil(t, got)
	})
}

func TestBooking_Cancel(t *testing.T) {
	t.Parallel()

	now := builder.BaseTime.Add(time.Hour)

	t.Run("pending booking cancels", func(t *testing.T) {
		t.Parallel()

		got, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, got.Cancel("change of plans", now))
		assert.Equal(t, booking.StatusCancelled, got.Status())
		require.NotNil(t, got.CancellationReason())
		assert.Equal(t, "change of plans", *got.CancellationReason())
		require.NotNil(t, got.CancelledAt())
		assert.Equal(t, now, *got.CancelledAt())
	})

	t.Run("confirmed booking cancels", func(t *testing.T) {
		t.Parallel()

		got, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, got.TransitionTo(booking.StatusConfirmed, now))

		assert.NoError(t, got.Cancel("", now))
		assert.Equal(t, booking.StatusCancelled, got.Status())
	})

	t.Run("completed booking reports already terminal", func(t *testing.T) {
		t.Parallel()

		got, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, got.TransitionTo(booking.StatusConfirmed, now))
		require.NoError(t, got.TransitionTo(booking.StatusCompleted, now))

		assert.ErrorIs(t, got.Cancel("too late", now), booking.ErrAlreadyTerminal)
		assert.Equal(t, booking.StatusCompleted, got.Status())
	})

	t.Run("cancelling twice reports already terminal", func(t *testing.T) {
		t.Parallel()

		got, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, got.Cancel("first", now))

		assert.ErrorIs(t, got.Cancel("second", now), booking.ErrAlreadyTerminal)
	})

	t.Run("in_progress booking cannot cancel", func(t *testing.T) {
		t.Parallel()

		got, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, got.TransitionTo(booking.StatusConfirmed, now))
		require.NoError(t, got.TransitionTo(booking.StatusInProgress, now))

		assert.ErrorIs(t, got.Cancel("", now), booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusInProgress, got.Status())
	})
}

func TestBooking_TransitionTo(t *testing.T) {
	t.Parallel()

	now := builder.BaseTime.Add(time.Hour)

	t.Run("walks the default machine to completion", func(t *testing.T) {
		t.Parallel()

		got, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, got.TransitionTo(booking.StatusConfirmed, now))
		require.NoError(t, got.TransitionTo(booking.StatusInProgress, now))
		require.NoError(t, got.TransitionTo(booking.StatusCompleted, now))
		assert.Equal(t, booking.StatusCompleted, got.Status())
	})

	t.Run("hotel room rejects in_progress", func(t *testing.T) {
		t.Parallel()

		b := builder.NewBookingBuilder()
		b.Kind = resource.KindHotelRoom

		got, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, got.TransitionTo(booking.StatusConfirmed, now))

		assert.ErrorIs(t, got.TransitionTo(booking.StatusInProgress, now), booking.ErrInvalidTransition)
		assert.NoError(t, got.TransitionTo(booking.StatusCompleted, now))
	})

	t.Run("unknown status is rejected before anything else", func(t *testing.T) {
		t.Parallel()

		got, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, got.TransitionTo(booking.Status("archived"), now), booking.ErrInvalidStatus)
	})

	t.Run("terminal booking reports already terminal", func(t *testing.T) {
		t.Parallel()

		got, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, got.Cancel("", now))

		assert.ErrorIs(t, got.TransitionTo(booking.StatusConfirmed, now), booking.ErrAlreadyTerminal)
	})
}
