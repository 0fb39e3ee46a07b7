package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aplicatto/showcase-service/internal/auth"
	"github.com/aplicatto/showcase-service/internal/events"
	"github.com/aplicatto/showcase-service/internal/gemini"
	"github.com/aplicatto/showcase-service/internal/repositories"
	"github.com/aplicatto/showcase-service/internal/repositories/memory"
	"github.com/aplicatto/showcase-service/internal/validator"
)

// testEnv wires the service layer onto the in-memory store with the
// demo seed loaded, mirroring how main wires it for real.
type testEnv struct {
	repo      repositories.Repository
	tokens    *auth.TokenManager
	publisher *events.MockEventPublisher
	logger    *slog.Logger
	validator *validator.Validator
	services  ServiceManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memory.NewMemoryRepository()
	require.NoError(t, repositories.Seed(context.Background(), repo))

	publisher := events.NewMockEventPublisher(logger)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	env := &testEnv{
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
		validator: validator.New(),
	}
	env.services = NewServiceManager(Dependencies{
		Repo:      repo,
		Tokens:    tokens,
		Publisher: publisher,
		Gemini:    gemini.NewClient(gemini.Config{}),
		Logger:    logger,
		Validator: env.validator,
	})
	return env
}

func strPtr(s string) *string { return &s }
