//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wanderbook/internal/domain/user"
	"wanderbook/internal/handler/dto"
	"wanderbook/tests/common/httptest"
)

// Walks a booking through its whole life against a real database:
// create, confirm, complete, review, and the public rating endpoint.
func TestBookingLifecycle(t *testing.T) {
	travelerID, travelerToken := seedUser(t, user.RoleTraveler)
	_, adminToken := seedUser(t, user.RoleAdmin)
	resourceID := seedResource(t, "guide", 4, 9000)

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	end := start.Add(48 * time.Hour)

	w := httptest.PerformRequest(t, env.router, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ResourceID: resourceID,
		StartAt:    start,
		EndAt:      end,
		PartySize:  2,
	}, travelerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.CreatedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

	bookingURL := "/api/bookings/" + created.ID.String()

	w = httptest.PerformRequest(t, env.router, http.MethodGet, bookingURL, nil, travelerToken)
	require.Equal(t, http.StatusOK, w.Code)

	var view dto.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
	require.Equal(t, travelerID, view.TravelerID)
	require.Equal(t, "pending", view.Status)
	require.Equal(t, int64(18000), view.TotalAmount)
	require.Equal(t, "LKR", view.Currency)

	// Overlapping request on the same resource must be rejected.
	w = httptest.PerformRequest(t, env.router, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ResourceID: resourceID,
		StartAt:    start.Add(time.Hour),
		EndAt:      end.Add(time.Hour),
		PartySize:  1,
	}, travelerToken)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	for _, status := range []string{"confirmed", "in_progress", "completed"} {
		w = httptest.PerformRequest(t, env.router, http.MethodPatch, bookingURL+"/status",
			dto.UpdateBookingStatusRequest{Status: status}, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	}

	w = httptest.PerformRequest(t, env.router, http.MethodPost, "/api/reviews", dto.CreateReviewRequest{
		BookingID: created.ID,
		Rating:    5,
		Comment:   "Fantastic trek, highly recommended.",
	}, travelerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// A second review for the same booking is rejected.
	w = httptest.PerformRequest(t, env.router, http.MethodPost, "/api/reviews", dto.CreateReviewRequest{
		BookingID: created.ID,
		Rating:    4,
		Comment:   "Trying again.",
	}, travelerToken)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, env.router, http.MethodGet,
		fmt.Sprintf("/api/resources/%s/rating", resourceID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var dist dto.RatingDistributionResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &dist))
	require.Equal(t, 1, dist.TotalReviews)
	require.Equal(t, 1, dist.Counts[5])
	require.InDelta(t, 5.0, dist.AverageRating, 0.01)
}

func TestCancelBookingFlow(t *testing.T) {
	_, travelerToken := seedUser(t, user.RoleTraveler)
	_, strangerToken := seedUser(t, user.RoleTraveler)
	resourceID := seedResource(t, "vehicle", 5, 12000)

	start := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)

	w := httptest.PerformRequest(t, env.router, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ResourceID: resourceID,
		StartAt:    start,
		EndAt:      start.Add(24 * time.Hour),
		PartySize:  3,
	}, travelerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.CreatedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

	cancelURL := "/api/bookings/" + created.ID.String() + "/cancel"

	w = httptest.PerformRequest(t, env.router, http.MethodPost, cancelURL,
		dto.CancelBookingRequest{Reason: "plans changed"}, strangerToken)
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, env.router, http.MethodPost, cancelURL,
		dto.CancelBookingRequest{Reason: "plans changed"}, travelerToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, env.router, http.MethodGet, "/api/bookings/"+created.ID.String(), nil, travelerToken)
	require.Equal(t, http.StatusOK, w.Code)

	var view dto.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
	require.Equal(t, "cancelled", view.Status)
	require.NotNil(t, view.CancellationReason)
	require.Equal(t, "plans changed", *view.CancellationReason)

	// Cancelling a cancelled booking reports the terminal state.
	w = httptest.PerformRequest(t, env.router, http.MethodPost, cancelURL,
		dto.CancelBookingRequest{Reason: "again"}, travelerToken)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// The slot is free again after cancellation.
	w = httptest.PerformRequest(t, env.router, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ResourceID: resourceID,
		StartAt:    start,
		EndAt:      start.Add(24 * time.Hour),
		PartySize:  1,
	}, strangerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
