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

type LinePostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewLinePostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.LineRepository {
	return &LinePostgreSQL{db: db, cacheManager: cacheManager}
}

func (r *LinePostgreSQL) List(ctx context.Context) ([]*models.ResearchLine, error) {
	var lines []*models.ResearchLine

	err := r.cacheManager.Lines.CacheOrExecute(ctx, "list:all", &lines, cache.CatalogCacheConfig.TTL, func() (interface{}, error) {
		var dbLines []*models.ResearchLine
		if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&dbLines).Error; err != nil {
			return nil, fmt.Errorf("failed to list research lines: %w", err)
		}
		return dbLines, nil
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *LinePostgreSQL) GetByID(ctx context.Context, id string) (*models.ResearchLine, error) {
	// Entities are immutable once created, so id entries never need
	// invalidation; misses are not cached.
	var line models.ResearchLine
	err := r.cacheManager.Lines.CacheOrExecute(ctx, fmt.Sprintf("id:%s", id), &line, cache.CatalogCacheConfig.TTL, func() (interface{}, error) {
		var dbLine models.ResearchLine
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbLine).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repositories.ErrNotFound
			}
			return nil, fmt.Errorf("failed to get research line: %w", err)
		}
		return &dbLine, nil
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *LinePostgreSQL) Create(ctx context.Context, line *models.ResearchLine) error {
	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(line).Error; err != nil {
		return fmt.Errorf("failed to create research line: %w", err)
	}
	cache.InvalidateLineCache(ctx, r.cacheManager)
	return nil
}

func (r *LinePostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.cacheManager.Stats.CacheOrExecute(ctx, "lines:count", &count, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		var dbCount int64
		if err := r.db.WithContext(ctx).Model(&models.ResearchLine{}).Count(&dbCount).Error; err != nil {
			return nil, fmt.Errorf("failed to count research lines: %w", err)
		}
		return dbCount, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
