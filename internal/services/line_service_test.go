package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplicatto/showcase-service/internal/events"
	"github.com/aplicatto/showcase-service/internal/validator"
)

func TestLineService_List(t *testing.T) {
	env := newTestEnv(t)

	lines, err := env.services.Lines().List(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Inteligencia Artificial", lines[0].Name)
	assert.Equal(t, "IoT y Ciudades", lines[1].Name)
}

func TestLineService_GetByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	line, err := env.services.Lines().GetByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "Inteligencia Artificial", line.Name)

	_, err = env.services.Lines().GetByID(ctx, "nope")
	assert.True(t, IsNotFound(err))
}

func TestLineService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("appends with a fresh id and publishes", func(t *testing.T) {
		line, err := env.services.Lines().Create(ctx, &CreateLineRequest{
			Name:        "Robótica",
			Description: "Automatización y manipuladores.",
			LeaderID:    "2",
		}, "1")
		require.NoError(t, err)
		assert.NotEmpty(t, line.ID)
		assert.NotEqual(t, "l1", line.ID)
		assert.NotEqual(t, "l2", line.ID)

		lines, err := env.services.Lines().List(ctx)
		require.NoError(t, err)
		require.Len(t, lines, 3)
		assert.Equal(t, "Robótica", lines[2].Name)

		evts := env.publisher.GetPublishedEvents()
		require.Len(t, evts, 1)
		assert.Equal(t, events.TypeLineCreated, evts[0].Type)
	})

	t.Run("missing fields reject without mutation", func(t *testing.T) {
		env.publisher.ClearEvents()

		_, err := env.services.Lines().Create(ctx, &CreateLineRequest{Name: "X"}, "1")
		assert.True(t, validator.IsValidationErrors(err))

		lines, listErr := env.services.Lines().List(ctx)
		require.NoError(t, listErr)
		assert.Len(t, lines, 3)
		assert.Empty(t, env.publisher.GetPublishedEvents())
	})

	t.Run("unknown leader rejects", func(t *testing.T) {
		_, err := env.services.Lines().Create(ctx, &CreateLineRequest{
			Name:        "Bioinformática",
			Description: "Genómica computacional.",
			LeaderID:    "ghost",
		}, "1")
		require.True(t, validator.IsValidationErrors(err))
		errs := validator.ToValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "leaderId", errs[0].Field)
	})
}
