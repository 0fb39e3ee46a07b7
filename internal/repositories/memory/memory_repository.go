// Package memory implements the repository contracts on mutex-guarded
// ordered slices. It backs deployments without a DATABASE_URL (the
// demo runs entirely on seed data) and the service tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/aplicatto/showcase-service/internal/models"
	"github.com/aplicatto/showcase-service/internal/repositories"
)

// MemoryRepository aggregates the in-memory collection stores.
type MemoryRepository struct {
	users    *userStore
	lines    *lineStore
	projects *projectStore
	courses  *courseStore
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() repositories.Repository {
	return &MemoryRepository{
		users:    &userStore{},
		lines:    &lineStore{},
		projects: &projectStore{},
		courses:  &courseStore{},
	}
}

func (r *MemoryRepository) Users() repositories.UserRepository       { return r.users }
func (r *MemoryRepository) Lines() repositories.LineRepository       { return r.lines }
func (r *MemoryRepository) Projects() repositories.ProjectRepository { return r.projects }
func (r *MemoryRepository) Courses() repositories.CourseRepository   { return r.courses }

func (r *MemoryRepository) Ping(ctx context.Context) error { return nil }
func (r *MemoryRepository) Close() error                   { return nil }

// newID generates a collision-free id. Ids must stay unique under
// concurrent creates, so callers assign them while holding the store
// lock.
func newID() string {
	return uuid.NewString()
}

// ===== USERS =====

type userStore struct {
	mu    sync.RWMutex
	users []*models.User
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *userStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repositories.ErrDuplicateEmail
		}
	}
	if user.ID == "" {
		user.ID = newID()
	}
	copied := *user
	s.users = append(s.users, &copied)
	return nil
}

func (s *userStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

// ===== RESEARCH LINES =====

type lineStore struct {
	mu    sync.RWMutex
	lines []*models.ResearchLine
}

func (s *lineStore) List(ctx context.Context) ([]*models.ResearchLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.ResearchLine, 0, len(s.lines))
	for _, l := range s.lines {
		copied := *l
		out = append(out, &copied)
	}
	return out, nil
}

func (s *lineStore) GetByID(ctx context.Context, id string) (*models.ResearchLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.lines {
		if l.ID == id {
			copied := *l
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *lineStore) Create(ctx context.Context, line *models.ResearchLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line.ID == "" {
		line.ID = newID()
	}
	copied := *line
	s.lines = append(s.lines, &copied)
	return nil
}

func (s *lineStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.lines)), nil
}

// ===== PROJECTS =====

type projectStore struct {
	mu       sync.RWMutex
	projects []*models.Project
}

func (s *projectStore) List(ctx context.Context, filters repositories.ProjectFilters) ([]*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if filters.LineID != nil && p.LineID != *filters.LineID {
			continue
		}
		if filters.State != nil && p.State != *filters.State {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (s *projectStore) GetByID(ctx context.Context, id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *projectStore) Create(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if project.ID == "" {
		project.ID = newID()
	}
	copied := *project
	s.projects = append(s.projects, &copied)
	return nil
}

func (s *projectStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.projects)), nil
}

func (s *projectStore) CountByState(ctx context.Context) (map[models.ProjectState]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[models.ProjectState]int64)
	for _, p := range s.projects {
		counts[p.State]++
	}
	return counts, nil
}

// ===== COURSES =====

type courseStore struct {
	mu      sync.RWMutex
	courses []*models.Course
}

func (s *courseStore) List(ctx context.Context, filters repositories.CourseFilters) ([]*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		if filters.LineID != nil && (c.LineID == nil || *c.LineID != *filters.LineID) {
			continue
		}
		if filters.ProjectID != nil && (c.ProjectID == nil || *c.ProjectID != *filters.ProjectID) {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (s *courseStore) GetByID(ctx context.Context, id string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *courseStore) Create(ctx context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if course.ID == "" {
		course.ID = newID()
	}
	copied := *course
	s.courses = append(s.courses, &copied)
	return nil
}

func (s *courseStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.courses)), nil
}
