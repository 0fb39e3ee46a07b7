package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aplicatto/showcase-service/internal/auth"
	"github.com/aplicatto/showcase-service/internal/models"
	"github.com/aplicatto/showcase-service/internal/services"
	"github.com/aplicatto/showcase-service/internal/utils"
)

type HandlerManager struct {
	authHandler      *AuthHandler
	lineHandler      *LineHandler
	projectHandler   *ProjectHandler
	courseHandler    *CourseHandler
	dashboardHandler *DashboardHandler
	generateHandler  *GenerateHandler
	authMiddleware   *AuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokens *auth.TokenManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:      NewAuthHandler(serviceManager.Auth(), logger),
		lineHandler:      NewLineHandler(serviceManager.Lines(), logger),
		projectHandler:   NewProjectHandler(serviceManager.Projects(), serviceManager.Export(), logger),
		courseHandler:    NewCourseHandler(serviceManager.Courses(), logger),
		dashboardHandler: NewDashboardHandler(serviceManager.Dashboard(), logger),
		generateHandler:  NewGenerateHandler(serviceManager.Generate(), logger),
		authMiddleware:   NewAuthMiddleware(tokens),
	}
}

// SetupRoutes sets up all API routes. Read endpoints for the catalog
// are public; every write declares its own allowed-role set.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"message": "Aplicatto API - use /api/v1",
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", hm.authHandler.Login)
			authRoutes.POST("/register", hm.authHandler.Register)
			authRoutes.GET("/me", hm.authMiddleware.Authenticate(), hm.authHandler.Me)
		}

		// Research line routes - create is ADMIN only
		lineas := v1.Group("/lineas")
		{
			lineas.GET("", hm.lineHandler.ListLines)
			lineas.GET("/:id", hm.lineHandler.GetLine)
			lineas.POST("", hm.authMiddleware.Authenticate(), hm.authMiddleware.RequireRole(models.RoleAdmin), hm.lineHandler.CreateLine)
		}

		// Project routes - create is ADMIN or DOCENTE
		proyectos := v1.Group("/proyectos")
		{
			proyectos.GET("", hm.projectHandler.ListProjects)
			proyectos.GET("/export", hm.authMiddleware.Authenticate(), hm.authMiddleware.RequireRole(models.RoleAdmin, models.RoleDocente), hm.projectHandler.ExportProjects)
			proyectos.POST("", hm.authMiddleware.Authenticate(), hm.authMiddleware.RequireRole(models.RoleAdmin, models.RoleDocente), hm.projectHandler.CreateProject)
		}

		// Course routes - create is DOCENTE only
		cursos := v1.Group("/cursos")
		{
			cursos.GET("", hm.courseHandler.ListCourses)
			cursos.POST("", hm.authMiddleware.Authenticate(), hm.authMiddleware.RequireRole(models.RoleDocente), hm.courseHandler.CreateCourse)
		}

		// Dashboard routes - any authenticated role
		dashboard := v1.Group("/dashboard")
		dashboard.Use(hm.authMiddleware.Authenticate())
		{
			dashboard.GET("/stats", hm.dashboardHandler.GetStats)
		}

		// Generation proxy routes - ADMIN and DOCENTE only
		generate := v1.Group("/gemini")
		generate.Use(hm.authMiddleware.Authenticate(), hm.authMiddleware.RequireRole(models.RoleAdmin, models.RoleDocente))
		{
			generate.POST("/syllabus", hm.generateHandler.Syllabus)
			generate.POST("/abstract", hm.generateHandler.Abstract)
		}

		// Health check endpoint
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "showcase-service",
		})
	})
}
