package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	dombooking "wanderbook/internal/domain/booking"
	domreview "wanderbook/internal/domain/review"
	"wanderbook/internal/handler/httperr"
	"wanderbook/internal/usecase/queries"
	"wanderbook/internal/usecase/shared"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is ordered: not-found sentinels come before ownership and
// state errors, matching the check order inside the usecases.
var errorMappings = []errorMapping{
	{shared.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{shared.ErrResourceNotFound, http.StatusNotFound, "Resource not found"},
	{shared.ErrUserNotFound, http.StatusNotFound, "User not found"},

	{shared.ErrForbidden, http.StatusForbidden, "Operation not permitted"},
	{shared.ErrBookingConflict, http.StatusConflict, "Booking conflicts with an existing reservation"},
	{shared.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},

	{dombooking.ErrResourceUnavailable, http.StatusUnprocessableEntity, "Resource is not available for booking"},
	{dombooking.ErrInvalidInterval, http.StatusUnprocessableEntity, "Booking interval is invalid"},
	{dombooking.ErrCapacityExceeded, http.StatusUnprocessableEntity, "Party size exceeds resource capacity"},
	{dombooking.ErrBlackoutConflict, http.StatusUnprocessableEntity, "Booking overlaps a blackout period"},
	{dombooking.ErrAlreadyTerminal, http.StatusConflict, "Booking is already completed or cancelled"},
	{dombooking.ErrInvalidTransition, http.StatusUnprocessableEntity, "Status transition is not allowed"},
	{dombooking.ErrInvalidStatus, http.StatusBadRequest, "Unknown booking status"},
	{dombooking.ErrNoteTooLong, http.StatusBadRequest, "Special requests are too long"},

	{domreview.ErrInvalidRating, http.StatusUnprocessableEntity, "Rating must be between 1 and 5"},
	{domreview.ErrEmptyComment, http.StatusUnprocessableEntity, "Comment cannot be empty"},
	{domreview.ErrCommentTooLong, http.StatusUnprocessableEntity, "Comment is too long"},
	{domreview.ErrBookingNotEligible, http.StatusUnprocessableEntity, "Booking is not eligible for review"},
	{domreview.ErrReviewExists, http.StatusConflict, "Review already submitted for this booking"},

	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid pagination cursor"},
}

func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func respondUnauthenticated(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication required", nil)
}

func respondBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
