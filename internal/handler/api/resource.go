package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wanderbook/internal/handler/dto"
	"wanderbook/internal/usecase/queries"
)

type ResourceQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error)
}

type ResourceHandler struct {
	queries ResourceQueries
}

func NewResourceHandler(qry ResourceQueries) *ResourceHandler {
	return &ResourceHandler{queries: qry}
}

// Get godoc
// @Summary      Get a bookable resource
// @Tags         resources
// @Produce      json
// @Param        id path string true "Resource ID"
// @Success      200 {object} dto.ResourceResponse
// @Failure      404 {object} httperr.Response
// @Router       /api/resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err, "Invalid resource id")
		return
	}

	view, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := dto.NewResourceResponse(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
