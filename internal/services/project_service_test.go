package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplicatto/showcase-service/internal/models"
	"github.com/aplicatto/showcase-service/internal/validator"
)

func TestProjectService_List(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		filters ProjectListFilters
		want    []string
	}{
		{"unfiltered", ProjectListFilters{}, []string{"p1", "p2"}},
		{"by line", ProjectListFilters{LineID: strPtr("l2")}, []string{"p2"}},
		{"by state", ProjectListFilters{State: strPtr("En Curso")}, []string{"p1"}},
		{"line and state with no match", ProjectListFilters{LineID: strPtr("l2"), State: strPtr("En Curso")}, []string{}},
		{"unknown state matches nothing", ProjectListFilters{State: strPtr("Cancelado")}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects, err := env.services.Projects().List(ctx, tt.filters)
			require.NoError(t, err)

			ids := make([]string, 0, len(projects))
			for _, p := range projects {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestProjectService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("valid project", func(t *testing.T) {
		project, err := env.services.Projects().Create(ctx, &CreateProjectRequest{
			Title:       "Detección de sesgos en LLMs",
			Description: "Evaluación de modelos generativos en español.",
			LineID:      "l1",
			LeaderID:    "2",
			Year:        2025,
			State:       "En Formulación",
		}, "2")
		require.NoError(t, err)
		assert.NotEmpty(t, project.ID)
		assert.Equal(t, models.StateFormulation, project.State)
		assert.NotNil(t, project.Tags, "omitted tags default to an empty slice")
		assert.Empty(t, project.Tags)
	})

	t.Run("invalid state value", func(t *testing.T) {
		_, err := env.services.Projects().Create(ctx, &CreateProjectRequest{
			Title:       "Proyecto X",
			Description: "d",
			LineID:      "l1",
			LeaderID:    "2",
			Year:        2025,
			State:       "Cancelado",
		}, "2")
		require.True(t, validator.IsValidationErrors(err))
	})

	t.Run("unknown line reference", func(t *testing.T) {
		_, err := env.services.Projects().Create(ctx, &CreateProjectRequest{
			Title:       "Proyecto Y",
			Description: "d",
			LineID:      "l9",
			LeaderID:    "2",
			Year:        2025,
			State:       "En Curso",
		}, "2")
		require.True(t, validator.IsValidationErrors(err))
		errs := validator.ToValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "lineId", errs[0].Field)
	})

	t.Run("rejections leave the collection unchanged", func(t *testing.T) {
		before, err := env.services.Projects().List(ctx, ProjectListFilters{})
		require.NoError(t, err)

		_, err = env.services.Projects().Create(ctx, &CreateProjectRequest{}, "2")
		require.True(t, validator.IsValidationErrors(err))

		after, err := env.services.Projects().List(ctx, ProjectListFilters{})
		require.NoError(t, err)
		assert.Equal(t, len(before), len(after))
	})
}
