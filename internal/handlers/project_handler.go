package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aplicatto/showcase-service/internal/services"
	"github.com/aplicatto/showcase-service/internal/utils"
)

type ProjectHandler struct {
	BaseHandler
	projectService services.ProjectService
	exportService  services.ExportService
}

func NewProjectHandler(
	projectService services.ProjectService,
	exportService services.ExportService,
	logger utils.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    NewBaseHandler(logger),
		projectService: projectService,
		exportService:  exportService,
	}
}

// ListProjects returns projects, optionally filtered by lineId and
// estado. Filters compose with AND; insertion order is preserved.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	filters := services.ProjectListFilters{}
	if lineID := c.Query("lineId"); lineID != "" {
		filters.LineID = &lineID
	}
	if estado := c.Query("estado"); estado != "" {
		filters.State = &estado
	}

	projects, err := h.projectService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject creates a project. ADMIN or DOCENTE; the router
// applies the guard before this handler runs.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req services.CreateProjectRequest
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

	h.LogRequest(c, "creating project", "title", req.Title)

	project, err := h.projectService.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ExportProjects streams every project as an xlsx workbook.
func (h *ProjectHandler) ExportProjects(c *gin.Context) {
	h.LogRequest(c, "exporting projects")

	workbook, err := h.exportService.ProjectsWorkbook(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("proyectos-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}
