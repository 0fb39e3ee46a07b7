package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aplicatto/showcase-service/internal/cache"
	"github.com/aplicatto/showcase-service/internal/models"
	"github.com/aplicatto/showcase-service/internal/repositories"
)

type ProjectPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewProjectPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.ProjectRepository {
	return &ProjectPostgreSQL{db: db, cacheManager: cacheManager}
}

func (r *ProjectPostgreSQL) List(ctx context.Context, filters repositories.ProjectFilters) ([]*models.Project, error) {
	// Only the unfiltered list is cached; filtered reads go straight
	// to the database.
	if filters.LineID == nil && filters.State == nil {
		var projects []*models.Project
		err := r.cacheManager.Projects.CacheOrExecute(ctx, "list:all", &projects, cache.CatalogCacheConfig.TTL, func() (interface{}, error) {
			return r.query(ctx, filters)
		})
		if err != nil {
			return nil, err
		}
		return projects, nil
	}

	return r.query(ctx, filters)
}

func (r *ProjectPostgreSQL) query(ctx context.Context, filters repositories.ProjectFilters) ([]*models.Project, error) {
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if filters.LineID != nil {
		q = q.Where("line_id = ?", *filters.LineID)
	}
	if filters.State != nil {
		q = q.Where("state = ?", *filters.State)
	}

	var projects []*models.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectPostgreSQL) GetByID(ctx context.Context, id string) (*models.Project, error) {
	// Entities are immutable once created, so id entries never need
	// invalidation; misses are not cached.
	var project models.Project
	err := r.cacheManager.Projects.CacheOrExecute(ctx, fmt.Sprintf("id:%s", id), &project, cache.CatalogCacheConfig.TTL, func() (interface{}, error) {
		var dbProject models.Project
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProject).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repositories.ErrNotFound
			}
			return nil, fmt.Errorf("failed to get project: %w", err)
		}
		return &dbProject, nil
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectPostgreSQL) Create(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	cache.InvalidateProjectCache(ctx, r.cacheManager)
	return nil
}

func (r *ProjectPostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.cacheManager.Stats.CacheOrExecute(ctx, "projects:count", &count, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		var dbCount int64
		if err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&dbCount).Error; err != nil {
			return nil, fmt.Errorf("failed to count projects: %w", err)
		}
		return dbCount, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProjectPostgreSQL) CountByState(ctx context.Context) (map[models.ProjectState]int64, error) {
	var counts map[models.ProjectState]int64
	err := r.cacheManager.Stats.CacheOrExecute(ctx, "projects:by_state", &counts, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		type stateCount struct {
			State models.ProjectState
			Count int64
		}

		var rows []stateCount
		err := r.db.WithContext(ctx).
			Model(&models.Project{}).
			Select("state, count(*) as count").
			Group("state").
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count projects by state: %w", err)
		}

		out := make(map[models.ProjectState]int64, len(rows))
		for _, row := range rows {
			out[row.State] = row.Count
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
