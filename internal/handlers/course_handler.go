package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aplicatto/showcase-service/internal/services"
	"github.com/aplicatto/showcase-service/internal/utils"
)

type CourseHandler struct {
	BaseHandler
	courseService services.CourseService
}

func NewCourseHandler(courseService services.CourseService, logger utils.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler:   NewBaseHandler(logger),
		courseService: courseService,
	}
}

// ListCourses returns courses, optionally filtered by lineId and
// projectId. Filters compose with AND; insertion order is preserved.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	filters := services.CourseListFilters{}
	if lineID := c.Query("lineId"); lineID != "" {
		filters.LineID = &lineID
	}
	if projectID := c.Query("projectId"); projectID != "" {
		filters.ProjectID = &projectID
	}

	courses, err := h.courseService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// CreateCourse creates a course. DOCENTE only; the router applies the
// guard before this handler runs.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req services.CreateCourseRequest
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

	h.LogRequest(c, "creating course", "title", req.Title)

	course, err := h.courseService.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}
