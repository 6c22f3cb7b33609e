package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wanderbook/internal/handler/dto"
	"wanderbook/internal/handler/middleware"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/commands"
	"wanderbook/internal/usecase/queries"
	"wanderbook/internal/usecase/shared"
)

type ReviewCommands interface {
	Create(ctx context.Context, actor shared.Actor, input commands.CreateReviewInput) (uuid.UUID, error)
}

type ReviewQueries interface {
	ListByResource(ctx context.Context, resourceID uuid.UUID, limit int, cursor string) (*queries.ReviewPage, error)
	RatingDistribution(ctx context.Context, resourceID uuid.UUID) (*queries.RatingDistributionView, error)
}

type ReviewHandler struct {
	commands ReviewCommands
	queries  ReviewQueries
}

func NewReviewHandler(cmd ReviewCommands, qry ReviewQueries) *ReviewHandler {
	return &ReviewHandler{commands: cmd, queries: qry}
}

// Create godoc
// @Summary      Submit a review for a completed booking
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateReviewRequest true "Review"
// @Success      201 {object} dto.CreatedResponse
// @Failure      404 {object} httperr.Response
// @Failure      409 {object} httperr.Response
// @Failure      422 {object} httperr.Response
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		respondUnauthenticated(c, errs.New("actor missing from context"))
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request body")
		return
	}

	id, err := h.commands.Create(c.Request.Context(), actor, commands.CreateReviewInput{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// ListByResource godoc
// @Summary      List reviews for a resource
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Resource ID"
// @Param        limit query int false "Page size"
// @Param        cursor query string false "Pagination cursor"
// @Success      200 {object} dto.ReviewListResponse
// @Failure      404 {object} httperr.Response
// @Router       /api/resources/{id}/reviews [get]
func (h *ReviewHandler) ListByResource(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err, "Invalid resource id")
		return
	}

	var q dto.ListReviewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err, "Invalid query parameters")
		return
	}

	page, err := h.queries.ListByResource(c.Request.Context(), resourceID, q.Limit, q.Cursor)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := dto.NewReviewListResponse(page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RatingDistribution godoc
// @Summary      Rating distribution for a resource
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Resource ID"
// @Success      200 {object} dto.RatingDistributionResponse
// @Failure      404 {object} httperr.Response
// @Router       /api/resources/{id}/rating [get]
func (h *ReviewHandler) RatingDistribution(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err, "Invalid resource id")
		return
	}

	view, err := h.queries.RatingDistribution(c.Request.Context(), resourceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRatingDistributionResponse(view))
}
