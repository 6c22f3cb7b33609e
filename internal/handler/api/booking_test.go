//go:build unit

package api_test

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	dombooking "wanderbook/internal/domain/booking"
	"wanderbook/internal/domain/user"
	"wanderbook/internal/handler/dto"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/commands"
	"wanderbook/internal/usecase/queries"
	"wanderbook/internal/usecase/shared"
	"wanderbook/tests/common/builder"
	commonhttp "wanderbook/tests/common/httptest"
	"wanderbook/tests/common/testutil"
)

func (s *HandlerSuite) TestCreateBooking() {
	travelerID := uuid.New()
	b := builder.NewBookingBuilder()

	s.Run("returns 201 with the new booking id", func() {
		bookingID := uuid.New()
		s.bookingCmd.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingID, nil)

		body := dto.CreateBookingRequest{
			ResourceID: b.ResourceID,
			StartAt:    b.Start,
			EndAt:      b.End,
			PartySize:  2,
		}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body,
			s.tokenFor(travelerID, user.RoleTraveler))

		var resp dto.CreatedResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(bookingID, resp.ID)
	})

	s.Run("rejects unauthenticated requests", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
			dto.CreateBookingRequest{}, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("maps a booking conflict to 409", func() {
		s.bookingCmd.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, shared.ErrBookingConflict)

		body := dto.CreateBookingRequest{
			ResourceID: b.ResourceID,
			StartAt:    b.Start,
			EndAt:      b.End,
			PartySize:  2,
		}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body,
			s.tokenFor(travelerID, user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "existing reservation")
	})

	s.Run("maps validator rejections to 422", func() {
		s.bookingCmd.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, dombooking.ErrBlackoutConflict)

		body := dto.CreateBookingRequest{
			ResourceID: b.ResourceID,
			StartAt:    b.Start,
			EndAt:      b.End,
			PartySize:  2,
		}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body,
			s.tokenFor(travelerID, user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "blackout")
	})

	s.Run("rejects a body that fails binding", func() {
		valid := dto.CreateBookingRequest{
			ResourceID: b.ResourceID,
			StartAt:    b.Start,
			EndAt:      b.End,
			PartySize:  2,
		}
		body := testutil.DtoMap(s.T(), valid,
			testutil.Field("party_size", 0),
			testutil.Field("resource_id", nil),
		)
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body,
			s.tokenFor(travelerID, user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request body")
	})
}

func (s *HandlerSuite) TestGetBooking() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("returns the booking", func() {
		s.bookingQry.EXPECT().
			Get(gomock.Any(), gomock.Any(), view.ID).
			Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+view.ID.String(), nil,
			s.tokenFor(view.TravelerID, user.RoleTraveler))

		var resp dto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.Status, resp.Status)
	})

	s.Run("maps missing bookings to 404", func() {
		missing := uuid.New()
		s.bookingQry.EXPECT().
			Get(gomock.Any(), gomock.Any(), missing).
			Return(nil, shared.ErrBookingNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+missing.String(), nil,
			s.tokenFor(uuid.New(), user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("maps marked repository errors to 404", func() {
		missing := uuid.New()
		repoErr := errs.Wrap(
			errs.Mark(errs.New("repository error (NOT_FOUND): no rows"), shared.ErrBookingNotFound),
			"failed to get booking",
		)
		s.bookingQry.EXPECT().
			Get(gomock.Any(), gomock.Any(), missing).
			Return(nil, repoErr)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+missing.String(), nil,
			s.tokenFor(uuid.New(), user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("maps foreign bookings to 403", func() {
		s.bookingQry.EXPECT().
			Get(gomock.Any(), gomock.Any(), view.ID).
			Return(nil, shared.ErrForbidden)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+view.ID.String(), nil,
			s.tokenFor(uuid.New(), user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not permitted")
	})

	s.Run("rejects a malformed id", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/not-a-uuid", nil,
			s.tokenFor(uuid.New(), user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking id")
	})
}

func (s *HandlerSuite) TestListBookings() {
	travelerID := uuid.New()

	s.Run("returns the caller's page", func() {
		item := builder.NewBookingBuilder().BuildListItem()
		list := &queries.BookingList{
			Items:  []queries.BookingListItem{*item},
			Total:  1,
			Limit:  20,
			Offset: 0,
		}
		s.bookingQry.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(list, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?status=pending", nil,
			s.tokenFor(travelerID, user.RoleTraveler))

		var resp dto.BookingListResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(1), resp.Total)
		s.Require().Len(resp.Items, 1)
		s.Equal(item.ID, resp.Items[0].ID)
	})

	s.Run("passes the status filter through", func() {
		s.bookingQry.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Actor, filter queries.BookingFilter) (*queries.BookingList, error) {
				s.Equal("confirmed", filter.Status)
				s.Equal(5, filter.Limit)
				return &queries.BookingList{Items: []queries.BookingListItem{}, Limit: 5}, nil
			})

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?status=confirmed&limit=5", nil,
			s.tokenFor(travelerID, user.RoleTraveler))
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})
}

func (s *HandlerSuite) TestCancelBooking() {
	travelerID := uuid.New()
	bookingID := uuid.New()

	s.Run("returns 204 on success", func() {
		s.bookingCmd.EXPECT().
			Cancel(gomock.Any(), gomock.Any(), commands.CancelBookingInput{BookingID: bookingID, Reason: "plans changed"}).
			Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/"+bookingID.String()+"/cancel",
			dto.CancelBookingRequest{Reason: "plans changed"},
			s.tokenFor(travelerID, user.RoleTraveler))
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("maps already terminal to 409", func() {
		s.bookingCmd.EXPECT().
			Cancel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dombooking.ErrAlreadyTerminal)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/"+bookingID.String()+"/cancel",
			dto.CancelBookingRequest{},
			s.tokenFor(travelerID, user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "already completed or cancelled")
	})

	s.Run("maps foreign bookings to 403", func() {
		s.bookingCmd.EXPECT().
			Cancel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(shared.ErrForbidden)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/"+bookingID.String()+"/cancel",
			dto.CancelBookingRequest{},
			s.tokenFor(uuid.New(), user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not permitted")
	})
}

func (s *HandlerSuite) TestUpdateBookingStatus() {
	bookingID := uuid.New()

	s.Run("admin advances the status", func() {
		s.bookingCmd.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), commands.UpdateStatusInput{
				BookingID: bookingID,
				Target:    dombooking.StatusConfirmed,
			}).
			Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/api/bookings/"+bookingID.String()+"/status",
			dto.UpdateBookingStatusRequest{Status: "confirmed"},
			s.tokenFor(uuid.New(), user.RoleAdmin))
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("traveler is blocked by the role middleware", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/api/bookings/"+bookingID.String()+"/status",
			dto.UpdateBookingStatusRequest{Status: "confirmed"},
			s.tokenFor(uuid.New(), user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not permitted")
	})

	s.Run("unknown status is a 400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/api/bookings/"+bookingID.String()+"/status",
			dto.UpdateBookingStatusRequest{Status: "archived"},
			s.tokenFor(uuid.New(), user.RoleAdmin))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unknown booking status")
	})

	s.Run("maps invalid transitions to 422", func() {
		s.bookingCmd.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dombooking.ErrInvalidTransition)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/api/bookings/"+bookingID.String()+"/status",
			dto.UpdateBookingStatusRequest{Status: "completed"},
			s.tokenFor(uuid.New(), user.RoleAdmin))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "transition")
	})
}
