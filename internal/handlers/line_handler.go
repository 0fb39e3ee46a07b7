package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aplicatto/showcase-service/internal/services"
	"github.com/aplicatto/showcase-service/internal/utils"
)

type LineHandler struct {
	BaseHandler
	lineService services.LineService
}

func NewLineHandler(lineService services.LineService, logger utils.Logger) *LineHandler {
	return &LineHandler{
		BaseHandler: NewBaseHandler(logger),
		lineService: lineService,
	}
}

// ListLines returns every research line in insertion order.
func (h *LineHandler) ListLines(c *gin.Context) {
	lines, err := h.lineService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lines)
}

// GetLine returns one research line by id.
func (h *LineHandler) GetLine(c *gin.Context) {
	line, err := h.lineService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, line)
}

// CreateLine creates a research line. ADMIN only; the router applies
// the guard before this handler runs.
func (h *LineHandler) CreateLine(c *gin.Context) {
	var req services.CreateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid request payload",
			Details: err.Error(),
		})
		return
	}

	actorID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthenticated",
			Message: "user not authenticated",
		})
		return
	}

	h.LogRequest(c, "creating research line", "name", req.Name)

	line, err := h.lineService.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, line)
}
