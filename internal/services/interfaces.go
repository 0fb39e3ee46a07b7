package services

import (
	"context"

	"github.com/aplicatto/showcase-service/internal/models"
	"github.com/aplicatto/showcase-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Request shapes live with the validator so the tags stay in one place.
type LoginRequest = validator.LoginRequest
type RegisterRequest = validator.RegisterRequest
type CreateLineRequest = validator.LineCreateRequest
type CreateProjectRequest = validator.ProjectCreateRequest
type CreateCourseRequest = validator.CourseCreateRequest
type SyllabusRequest = validator.SyllabusRequest
type AbstractRequest = validator.AbstractRequest

type LoginResponse struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

// ProjectListFilters carries the raw query-string filters; the state
// value is matched as-is against the stored enum.
type ProjectListFilters struct {
	LineID *string
	State  *string
}

type CourseListFilters struct {
	LineID    *string
	ProjectID *string
}

// DashboardStats backs the role dashboards on the frontend.
type DashboardStats struct {
	Users           int64                         `json:"users"`
	Lines           int64                         `json:"lines"`
	Projects        int64                         `json:"projects"`
	Courses         int64                         `json:"courses"`
	ProjectsByState map[models.ProjectState]int64 `json:"projectsByState"`
}

// GeneratedText is the response of the generation proxy endpoints.
type GeneratedText struct {
	Text string `json:"text"`
}

// ===== SERVICE CONTRACTS =====

// AuthService owns login, registration and token introspection.
type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	Subject(ctx context.Context, userID string) (*models.UserSummary, error)
}

// LineService owns the research-line collection.
type LineService interface {
	List(ctx context.Context) ([]*models.ResearchLine, error)
	GetByID(ctx context.Context, id string) (*models.ResearchLine, error)
	Create(ctx context.Context, req *CreateLineRequest, actorID string) (*models.ResearchLine, error)
}

// ProjectService owns the project collection.
type ProjectService interface {
	List(ctx context.Context, filters ProjectListFilters) ([]*models.Project, error)
	Create(ctx context.Context, req *CreateProjectRequest, actorID string) (*models.Project, error)
}

// CourseService owns the course collection.
type CourseService interface {
	List(ctx context.Context, filters CourseListFilters) ([]*models.Course, error)
	Create(ctx context.Context, req *CreateCourseRequest, actorID string) (*models.Course, error)
}

// DashboardService aggregates counts for the role dashboards.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

// ExportService renders collection exports.
type ExportService interface {
	ProjectsWorkbook(ctx context.Context) ([]byte, error)
}

// GenerateService proxies the external text-generation collaborator
// through fixed prompt templates.
type GenerateService interface {
	CourseSyllabus(ctx context.Context, req *SyllabusRequest) (*GeneratedText, error)
	ProjectAbstract(ctx context.Context, req *AbstractRequest) (*GeneratedText, error)
}

// ServiceManager wires every service with a shared lifecycle.
type ServiceManager interface {
	Auth() AuthService
	Lines() LineService
	Projects() ProjectService
	Courses() CourseService
	Dashboard() DashboardService
	Export() ExportService
	Generate() GenerateService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
