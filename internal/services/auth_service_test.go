package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplicatto/showcase-service/internal/events"
	"github.com/aplicatto/showcase-service/internal/models"
	"github.com/aplicatto/showcase-service/internal/repositories"
	"github.com/aplicatto/showcase-service/internal/validator"
)

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("valid credentials yield a verifiable token", func(t *testing.T) {
		resp, err := env.services.Auth().Login(ctx, &LoginRequest{
			Email:    "admin@aplicatto.edu",
			Password: "123",
		})
		require.NoError(t, err)
		assert.Equal(t, "Admin User", resp.User.Name)
		assert.Equal(t, models.RoleAdmin, resp.User.Role)

		claims, err := env.tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, claims.Subject)
		assert.Equal(t, models.RoleAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.services.Auth().Login(ctx, &LoginRequest{
			Email:    "admin@aplicatto.edu",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error", func(t *testing.T) {
		_, err := env.services.Auth().Login(ctx, &LoginRequest{
			Email:    "nobody@aplicatto.edu",
			Password: "123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing password is a validation error", func(t *testing.T) {
		_, err := env.services.Auth().Login(ctx, &LoginRequest{Email: "admin@aplicatto.edu"})
		assert.True(t, validator.IsValidationErrors(err))
	})

	t.Run("malformed email fails like any other bad pair", func(t *testing.T) {
		_, err := env.services.Auth().Login(ctx, &LoginRequest{
			Email:    "not-an-email",
			Password: "123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("new accounts are always ESTUDIANTE", func(t *testing.T) {
		user, err := env.services.Auth().Register(ctx, &RegisterRequest{
			Name:     "Nuevo Estudiante",
			Email:    "nuevo@est.edu",
			Password: "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleEstudiante, user.Role)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "secret", user.PasswordHash)

		evts := env.publisher.GetPublishedEvents()
		require.Len(t, evts, 1)
		assert.Equal(t, events.TypeUserRegistered, evts[0].Type)

		// The new account can log in right away.
		_, err = env.services.Auth().Login(ctx, &LoginRequest{
			Email:    "nuevo@est.edu",
			Password: "secret",
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := env.services.Auth().Register(ctx, &RegisterRequest{
			Name:     "Otro",
			Email:    "admin@aplicatto.edu",
			Password: "secret",
		})
		assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
	})
}

func TestAuthService_Subject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	summary, err := env.services.Auth().Subject(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Prof. Jhon Doe", summary.Name)
	assert.Equal(t, models.RoleDocente, summary.Role)

	_, err = env.services.Auth().Subject(ctx, "missing")
	assert.True(t, IsNotFound(err))
}
