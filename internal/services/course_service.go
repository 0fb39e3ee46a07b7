package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/aplicatto/showcase-service/internal/events"
	"github.com/aplicatto/showcase-service/internal/models"
	"github.com/aplicatto/showcase-service/internal/repositories"
	"github.com/aplicatto/showcase-service/internal/validator"
)

type courseService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewCourseService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) CourseService {
	return &courseService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *courseService) List(ctx context.Context, filters CourseListFilters) ([]*models.Course, error) {
	courses, err := s.repo.Courses().List(ctx, repositories.CourseFilters{
		LineID:    filters.LineID,
		ProjectID: filters.ProjectID,
	})
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	return courses, nil
}

// Create validates the payload and every cross-reference: the docente
// must exist and hold the DOCENTE role, and the optional line/project
// references must point at existing entities.
func (s *courseService) Create(ctx context.Context, req *CreateCourseRequest, actorID string) (*models.Course, error) {
	s.logger.Info("creating course", "actor_id", actorID, "title", req.Title)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	docente, err := s.repo.Users().GetByID(ctx, req.DocenteID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, validator.NewFieldError("docenteId", "referenced user does not exist", "exists", req.DocenteID)
		}
		return nil, fmt.Errorf("checking docente: %w", err)
	}
	if docente.Role != models.RoleDocente {
		return nil, validator.NewFieldError("docenteId", "referenced user is not a DOCENTE", "role", req.DocenteID)
	}

	if req.LineID != nil {
		if _, err := s.repo.Lines().GetByID(ctx, *req.LineID); err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, validator.NewFieldError("lineId", "referenced research line does not exist", "exists", *req.LineID)
			}
			return nil, fmt.Errorf("checking line: %w", err)
		}
	}

	if req.ProjectID != nil {
		if _, err := s.repo.Projects().GetByID(ctx, *req.ProjectID); err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, validator.NewFieldError("projectId", "referenced project does not exist", "exists", *req.ProjectID)
			}
			return nil, fmt.Errorf("checking project: %w", err)
		}
	}

	modules := make([]models.CourseModule, 0, len(req.Modules))
	for _, m := range req.Modules {
		resources := make([]models.ModuleResource, 0, len(m.Resources))
		for _, r := range m.Resources {
			resources = append(resources, models.ModuleResource{Title: r.Title, URL: r.URL})
		}
		modules = append(modules, models.CourseModule{
			ID:        uuid.NewString(),
			Title:     m.Title,
			Content:   m.Content,
			Resources: resources,
		})
	}

	enrolled := req.EnrolledStudentIDs
	if enrolled == nil {
		enrolled = []string{}
	}

	course := &models.Course{
		Title:              req.Title,
		Description:        req.Description,
		DocenteID:          req.DocenteID,
		LineID:             req.LineID,
		ProjectID:          req.ProjectID,
		Level:              models.CourseLevel(req.Level),
		Modules:            datatypes.NewJSONSlice(modules),
		EnrolledStudentIDs: datatypes.NewJSONSlice(enrolled),
		IsPublic:           req.IsPublic,
	}

	if err := s.repo.Courses().Create(ctx, course); err != nil {
		return nil, fmt.Errorf("creating course: %w", err)
	}

	s.logger.Info("course created", "course_id", course.ID, "level", course.Level)
	s.publishEvent(ctx, events.TypeCourseCreated, course)

	return course, nil
}

func (s *courseService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, data)); err != nil {
		s.logger.Warn("failed to publish event", "event_type", eventType, "error", err)
	}
}
