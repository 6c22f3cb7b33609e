//go:build unit

package api_test

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	domreview "wanderbook/internal/domain/review"
	"wanderbook/internal/domain/user"
	"wanderbook/internal/handler/dto"
	"wanderbook/internal/usecase/queries"
	"wanderbook/internal/usecase/shared"
	"wanderbook/tests/common/builder"
	commonhttp "wanderbook/tests/common/httptest"
)

func (s *HandlerSuite) TestCreateReview() {
	travelerID := uuid.New()
	bookingID := uuid.New()

	s.Run("returns 201 with the new review id", func() {
		reviewID := uuid.New()
		s.reviewCmd.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reviewID, nil)

		body := dto.CreateReviewRequest{BookingID: bookingID, Rating: 5, Comment: "Wonderful trip."}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reviews", body,
			s.tokenFor(travelerID, user.RoleTraveler))

		var resp dto.CreatedResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(reviewID, resp.ID)
	})

	s.Run("maps ineligible bookings to 422", func() {
		s.reviewCmd.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, domreview.ErrBookingNotEligible)

		body := dto.CreateReviewRequest{BookingID: bookingID, Rating: 4, Comment: "nice"}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reviews", body,
			s.tokenFor(travelerID, user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "not eligible")
	})

	s.Run("maps duplicate reviews to 409", func() {
		s.reviewCmd.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, domreview.ErrReviewExists)

		body := dto.CreateReviewRequest{BookingID: bookingID, Rating: 4, Comment: "nice"}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reviews", body,
			s.tokenFor(travelerID, user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "already submitted")
	})

	s.Run("out-of-range rating fails binding", func() {
		body := dto.CreateReviewRequest{BookingID: bookingID, Rating: 6, Comment: "nice"}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reviews", body,
			s.tokenFor(travelerID, user.RoleTraveler))
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request body")
	})
}

func (s *HandlerSuite) TestListReviews() {
	resourceID := uuid.New()

	s.Run("returns a page with a next cursor", func() {
		next := &queries.Cursor{CreatedAt: builder.BaseTime, ID: uuid.New()}
		page := &queries.ReviewPage{
			Items: []queries.ReviewView{{
				ID:         uuid.New(),
				TravelerID: uuid.New(),
				ResourceID: resourceID,
				BookingID:  uuid.New(),
				Rating:     5,
				Comment:    "Stunning views.",
				CreatedAt:  builder.BaseTime.Add(time.Hour),
			}},
			NextCursor: next,
		}
		s.reviewQry.EXPECT().
			ListByResource(gomock.Any(), resourceID, 0, "").
			Return(page, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/resources/"+resourceID.String()+"/reviews", nil, "")

		var resp dto.ReviewListResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp.Items, 1)
		s.Equal(next.Encode(), resp.NextCursor)
	})

	s.Run("maps unknown resources to 404", func() {
		s.reviewQry.EXPECT().
			ListByResource(gomock.Any(), resourceID, 0, "").
			Return(nil, shared.ErrResourceNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/resources/"+resourceID.String()+"/reviews", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Resource not found")
	})
}

func (s *HandlerSuite) TestRatingDistribution() {
	resourceID := uuid.New()

	s.Run("returns the distribution", func() {
		view := &queries.RatingDistributionView{
			ResourceID:    resourceID,
			Counts:        map[int]int{1: 0, 2: 0, 3: 1, 4: 0, 5: 2},
			TotalReviews:  3,
			AverageRating: 4.3,
		}
		s.reviewQry.EXPECT().
			RatingDistribution(gomock.Any(), resourceID).
			Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/resources/"+resourceID.String()+"/rating", nil, "")

		var resp dto.RatingDistributionResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(3, resp.TotalReviews)
		s.InDelta(4.3, resp.AverageRating, 1e-9)
		s.Equal(2, resp.Counts[5])
	})

	s.Run("maps unknown resources to 404", func() {
		s.reviewQry.EXPECT().
			RatingDistribution(gomock.Any(), resourceID).
			Return(nil, shared.ErrResourceNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/resources/"+resourceID.String()+"/rating", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Resource not found")
	})
}
