package repositories

import (
	"context"

	"github.com/aplicatto/showcase-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

// ProjectFilters are optional equality predicates; nil fields place no
// restriction and set fields compose with AND.
type ProjectFilters struct {
	LineID *string              `json:"line_id"`
	State  *models.ProjectState `json:"state"`
}

type CourseFilters struct {
	LineID    *string `json:"line_id"`
	ProjectID *string `json:"project_id"`
}

// ===== REPOSITORY CONTRACTS =====

// UserRepository is the credential store. There is no update or
// delete: accounts are created at registration or seed time only.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int64, error)
}

// LineRepository stores research lines. List preserves insertion order.
type LineRepository interface {
	List(ctx context.Context) ([]*models.ResearchLine, error)
	GetByID(ctx context.Context, id string) (*models.ResearchLine, error)
	Create(ctx context.Context, line *models.ResearchLine) error
	Count(ctx context.Context) (int64, error)
}

// ProjectRepository stores projects. List preserves insertion order.
type ProjectRepository interface {
	List(ctx context.Context, filters ProjectFilters) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Count(ctx context.Context) (int64, error)
	CountByState(ctx context.Context) (map[models.ProjectState]int64, error)
}

// CourseRepository stores courses. List preserves insertion order.
type CourseRepository interface {
	List(ctx context.Context, filters CourseFilters) ([]*models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Count(ctx context.Context) (int64, error)
}

// Repository aggregates the per-collection stores behind one injected
// dependency with a process-wide lifecycle.
type Repository interface {
	Users() UserRepository
	Lines() LineRepository
	Projects() ProjectRepository
	Courses() CourseRepository

	Ping(ctx context.Context) error
	Close() error
}
