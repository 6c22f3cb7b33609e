package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	dombooking "wanderbook/internal/domain/booking"
	"wanderbook/internal/handler/dto"
	"wanderbook/internal/handler/middleware"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/commands"
	"wanderbook/internal/usecase/queries"
	"wanderbook/internal/usecase/shared"
)

// BookingCommands and BookingQueries are the slices of the usecase layer
// this handler needs. Declared here so tests can substitute them.
type BookingCommands interface {
	Create(ctx context.Context, actor shared.Actor, input commands.CreateBookingInput) (uuid.UUID, error)
	Cancel(ctx context.Context, actor shared.Actor, input commands.CancelBookingInput) error
	UpdateStatus(ctx context.Context, actor shared.Actor, input commands.UpdateStatusInput) error
}

type BookingQueries interface {
	Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error)
	List(ctx context.Context, actor shared.Actor, filter queries.BookingFilter) (*queries.BookingList, error)
}

type BookingHandler struct {
	commands BookingCommands
	queries  BookingQueries
}

func NewBookingHandler(cmd BookingCommands, qry BookingQueries) *BookingHandler {
	return &BookingHandler{commands: cmd, queries: qry}
}

// Create godoc
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookingRequest true "Booking details"
// @Success      201 {object} dto.CreatedResponse
// @Failure      404 {object} httperr.Response
// @Failure      409 {object} httperr.Response
// @Failure      422 {object} httperr.Response
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		respondUnauthenticated(c, errs.New("actor missing from context"))
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request body")
		return
	}

	id, err := h.commands.Create(c.Request.Context(), actor, commands.CreateBookingInput{
		ResourceID:      req.ResourceID,
		Start:           req.StartAt,
		End:             req.EndAt,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// Get godoc
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        id path string true "Booking ID"
// @Success      200 {object} dto.BookingResponse
// @Failure      403 {object} httperr.Response
// @Failure      404 {object} httperr.Response
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		respondUnauthenticated(c, errs.New("actor missing from context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err, "Invalid booking id")
		return
	}

	view, err := h.queries.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := dto.NewBookingResponse(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List bookings for the caller
// @Tags         bookings
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200 {object} dto.BookingListResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		respondUnauthenticated(c, errs.New("actor missing from context"))
		return
	}

	var q dto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err, "Invalid query parameters")
		return
	}

	filter := queries.BookingFilter{
		Status: q.Status,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if q.TravelerID != "" {
		travelerID, err := uuid.Parse(q.TravelerID)
		if err != nil {
			respondBadRequest(c, err, "Invalid traveler id")
			return
		}
		filter.TravelerID = travelerID
	}

	list, err := h.queries.List(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := dto.NewBookingListResponse(list)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancel godoc
// @Summary      Cancel a booking
// @Tags         bookings
// @Accept       json
// @Param        id path string true "Booking ID"
// @Param        request body dto.CancelBookingRequest false "Cancellation reason"
// @Success      204
// @Failure      403 {object} httperr.Response
// @Failure      404 {object} httperr.Response
// @Failure      409 {object} httperr.Response
// @Router       /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		respondUnauthenticated(c, errs.New("actor missing from context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err, "Invalid booking id")
		return
	}

	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBadRequest(c, err, "Invalid request body")
		return
	}

	err = h.commands.Cancel(c.Request.Context(), actor, commands.CancelBookingInput{
		BookingID: id,
		Reason:    req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateStatus godoc
// @Summary      Update booking status (admin)
// @Tags         bookings
// @Accept       json
// @Param        id path string true "Booking ID"
// @Param        request body dto.UpdateBookingStatusRequest true "Target status"
// @Success      204
// @Failure      403 {object} httperr.Response
// @Failure      404 {object} httperr.Response
// @Failure      422 {object} httperr.Response
// @Router       /api/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		respondUnauthenticated(c, errs.New("actor missing from context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err, "Invalid booking id")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request body")
		return
	}

	target, err := dombooking.NewStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	err = h.commands.UpdateStatus(c.Request.Context(), actor, commands.UpdateStatusInput{
		BookingID: id,
		Target:    target,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
