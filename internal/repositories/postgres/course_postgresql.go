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

type CoursePostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewCoursePostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.CourseRepository {
	return &CoursePostgreSQL{db: db, cacheManager: cacheManager}
}

func (r *CoursePostgreSQL) List(ctx context.Context, filters repositories.CourseFilters) ([]*models.Course, error) {
	if filters.LineID == nil && filters.ProjectID == nil {
		var courses []*models.Course
		err := r.cacheManager.Courses.CacheOrExecute(ctx, "list:all", &courses, cache.CatalogCacheConfig.TTL, func() (interface{}, error) {
			return r.query(ctx, filters)
		})
		if err != nil {
			return nil, err
		}
		return courses, nil
	}

	return r.query(ctx, filters)
}

func (r *CoursePostgreSQL) query(ctx context.Context, filters repositories.CourseFilters) ([]*models.Course, error) {
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if filters.LineID != nil {
		q = q.Where("line_id = ?", *filters.LineID)
	}
	if filters.ProjectID != nil {
		q = q.Where("project_id = ?", *filters.ProjectID)
	}

	var courses []*models.Course
	if err := q.Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (r *CoursePostgreSQL) GetByID(ctx context.Context, id string) (*models.Course, error) {
	// Entities are immutable once created, so id entries never need
	// invalidation; misses are not cached.
	var course models.Course
	err := r.cacheManager.Courses.CacheOrExecute(ctx, fmt.Sprintf("id:%s", id), &course, cache.CatalogCacheConfig.TTL, func() (interface{}, error) {
		var dbCourse models.Course
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCourse).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repositories.ErrNotFound
			}
			return nil, fmt.Errorf("failed to get course: %w", err)
		}
		return &dbCourse, nil
	})
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CoursePostgreSQL) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	cache.InvalidateCourseCache(ctx, r.cacheManager)
	return nil
}

func (r *CoursePostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.cacheManager.Stats.CacheOrExecute(ctx, "courses:count", &count, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		var dbCount int64
		if err := r.db.WithContext(ctx).Model(&models.Course{}).Count(&dbCount).Error; err != nil {
			return nil, fmt.Errorf("failed to count courses: %w", err)
		}
		return dbCount, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
