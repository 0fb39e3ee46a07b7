package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aplicatto/showcase-service/internal/events"
	"github.com/aplicatto/showcase-service/internal/models"
	"github.com/aplicatto/showcase-service/internal/repositories"
	"github.com/aplicatto/showcase-service/internal/validator"
)

type lineService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewLineService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) LineService {
	return &lineService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *lineService) List(ctx context.Context) ([]*models.ResearchLine, error) {
	lines, err := s.repo.Lines().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing research lines: %w", err)
	}
	return lines, nil
}

func (s *lineService) GetByID(ctx context.Context, id string) (*models.ResearchLine, error) {
	line, err := s.repo.Lines().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("research line", id)
		}
		return nil, fmt.Errorf("getting research line: %w", err)
	}
	return line, nil
}

// Create validates the payload and the leader reference, then appends
// the line. The router has already confirmed the actor's role.
func (s *lineService) Create(ctx context.Context, req *CreateLineRequest, actorID string) (*models.ResearchLine, error) {
	s.logger.Info("creating research line", "actor_id", actorID, "name", req.Name)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.repo.Users().GetByID(ctx, req.LeaderID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, validator.NewFieldError("leaderId", "referenced user does not exist", "exists", req.LeaderID)
		}
		return nil, fmt.Errorf("checking leader: %w", err)
	}

	line := &models.ResearchLine{
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    req.LeaderID,
	}

	if err := s.repo.Lines().Create(ctx, line); err != nil {
		return nil, fmt.Errorf("creating research line: %w", err)
	}

	s.logger.Info("research line created", "line_id", line.ID)
	s.publishEvent(ctx, events.TypeLineCreated, line)

	return line, nil
}

func (s *lineService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, data)); err != nil {
		s.logger.Warn("failed to publish event", "event_type", eventType, "error", err)
	}
}
