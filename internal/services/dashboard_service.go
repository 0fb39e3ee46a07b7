package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aplicatto/showcase-service/internal/repositories"
)

type dashboardService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewDashboardService(repo repositories.Repository, logger *slog.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// Stats returns the collection counts the role dashboards render.
func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	users, err := s.repo.Users().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	lines, err := s.repo.Lines().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting lines: %w", err)
	}
	projects, err := s.repo.Projects().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting projects: %w", err)
	}
	courses, err := s.repo.Courses().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting courses: %w", err)
	}
	byState, err := s.repo.Projects().CountByState(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting projects by state: %w", err)
	}

	return &DashboardStats{
		Users:           users,
		Lines:           lines,
		Projects:        projects,
		Courses:         courses,
		ProjectsByState: byState,
	}, nil
}
