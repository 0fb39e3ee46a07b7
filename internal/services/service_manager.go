package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/aplicatto/showcase-service/internal/auth"
	"github.com/aplicatto/showcase-service/internal/events"
	"github.com/aplicatto/showcase-service/internal/gemini"
	"github.com/aplicatto/showcase-service/internal/repositories"
	"github.com/aplicatto/showcase-service/internal/validator"
)

// Dependencies holds everything the service layer is built from.
type Dependencies struct {
	Repo      repositories.Repository
	Tokens    *auth.TokenManager
	Publisher events.EventPublisher
	// Subscriber is set in the in-process bus mode; Initialize starts
	// a logging consumer on it.
	Subscriber message.Subscriber
	Gemini     *gemini.Client
	Logger     *slog.Logger
	Validator  *validator.Validator
}

// serviceManager implements ServiceManager.
type serviceManager struct {
	deps Dependencies

	authService      AuthService
	lineService      LineService
	projectService   ProjectService
	courseService    CourseService
	dashboardService DashboardService
	exportService    ExportService
	generateService  GenerateService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies.
func NewServiceManager(deps Dependencies) ServiceManager {
	return &serviceManager{
		deps:             deps,
		authService:      NewAuthService(deps.Repo, deps.Tokens, deps.Publisher, deps.Logger, deps.Validator),
		lineService:      NewLineService(deps.Repo, deps.Publisher, deps.Logger, deps.Validator),
		projectService:   NewProjectService(deps.Repo, deps.Publisher, deps.Logger, deps.Validator),
		courseService:    NewCourseService(deps.Repo, deps.Publisher, deps.Logger, deps.Validator),
		dashboardService: NewDashboardService(deps.Repo, deps.Logger),
		exportService:    NewExportService(deps.Repo, deps.Logger),
		generateService:  NewGenerateService(deps.Gemini, deps.Logger, deps.Validator),
	}
}

func (m *serviceManager) Auth() AuthService           { return m.authService }
func (m *serviceManager) Lines() LineService          { return m.lineService }
func (m *serviceManager) Projects() ProjectService    { return m.projectService }
func (m *serviceManager) Courses() CourseService      { return m.courseService }
func (m *serviceManager) Dashboard() DashboardService { return m.dashboardService }
func (m *serviceManager) Export() ExportService       { return m.exportService }
func (m *serviceManager) Generate() GenerateService   { return m.generateService }

// Initialize seeds an empty store and starts the event consumer.
func (m *serviceManager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := m.deps.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("store not reachable: %w", err)
	}

	if err := repositories.Seed(ctx, m.deps.Repo); err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}

	if m.deps.Subscriber != nil {
		if err := events.RunEventLogger(ctx, m.deps.Subscriber, m.deps.Logger); err != nil {
			return fmt.Errorf("starting event logger: %w", err)
		}
	}

	m.initialized = true
	m.deps.Logger.Info("services initialized")
	return nil
}

// Shutdown closes the event publisher. The store is closed by main.
func (m *serviceManager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shutdown {
		return nil
	}
	m.shutdown = true

	if err := m.deps.Publisher.Close(); err != nil {
		return fmt.Errorf("closing event publisher: %w", err)
	}

	m.deps.Logger.Info("services shut down")
	return nil
}
