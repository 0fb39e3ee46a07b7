package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"

	"github.com/aplicatto/showcase-service/internal/events"
	"github.com/aplicatto/showcase-service/internal/models"
	"github.com/aplicatto/showcase-service/internal/repositories"
	"github.com/aplicatto/showcase-service/internal/validator"
)

type projectService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewProjectService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ProjectService {
	return &projectService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *projectService) List(ctx context.Context, filters ProjectListFilters) ([]*models.Project, error) {
	repoFilters := repositories.ProjectFilters{LineID: filters.LineID}
	if filters.State != nil {
		state := models.ProjectState(*filters.State)
		repoFilters.State = &state
	}

	projects, err := s.repo.Projects().List(ctx, repoFilters)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// Create validates the payload and the line/leader references, then
// appends the project. State is accepted as-is: the platform never
// enforces a transition order.
func (s *projectService) Create(ctx context.Context, req *CreateProjectRequest, actorID string) (*models.Project, error) {
	s.logger.Info("creating project", "actor_id", actorID, "title", req.Title)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.repo.Lines().GetByID(ctx, req.LineID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, validator.NewFieldError("lineId", "referenced research line does not exist", "exists", req.LineID)
		}
		return nil, fmt.Errorf("checking line: %w", err)
	}

	if _, err := s.repo.Users().GetByID(ctx, req.LeaderID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, validator.NewFieldError("leaderId", "referenced user does not exist", "exists", req.LeaderID)
		}
		return nil, fmt.Errorf("checking leader: %w", err)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		LineID:      req.LineID,
		LeaderID:    req.LeaderID,
		Year:        req.Year,
		State:       models.ProjectState(req.State),
		Tags:        datatypes.NewJSONSlice(tags),
	}

	if err := s.repo.Projects().Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "project_id", project.ID, "state", project.State)
	s.publishEvent(ctx, events.TypeProjectCreated, project)

	return project, nil
}

func (s *projectService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, data)); err != nil {
		s.logger.Warn("failed to publish event", "event_type", eventType, "error", err)
	}
}
