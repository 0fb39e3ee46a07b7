package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aplicatto/showcase-service/internal/services"
	"github.com/aplicatto/showcase-service/internal/utils"
)

type GenerateHandler struct {
	BaseHandler
	generateService services.GenerateService
}

func NewGenerateHandler(generateService services.GenerateService, logger utils.Logger) *GenerateHandler {
	return &GenerateHandler{
		BaseHandler:     NewBaseHandler(logger),
		generateService: generateService,
	}
}

// Syllabus proxies a course-syllabus suggestion to the generation
// collaborator.
func (h *GenerateHandler) Syllabus(c *gin.Context) {
	var req services.SyllabusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "generating syllabus", "title", req.Title)

	text, err := h.generateService.CourseSyllabus(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, text)
}

// Abstract proxies a project-abstract suggestion to the generation
// collaborator.
func (h *GenerateHandler) Abstract(c *gin.Context) {
	var req services.AbstractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "generating abstract", "title", req.Title)

	text, err := h.generateService.ProjectAbstract(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, text)
}
