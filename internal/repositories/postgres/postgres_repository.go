// Package postgres implements the repository contracts on gorm with
// the catalog list cache layered in front of the public reads.
package postgres

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/aplicatto/showcase-service/internal/cache"
	"github.com/aplicatto/showcase-service/internal/repositories"
)

// PostgreSQLRepository implements the aggregate Repository interface.
type PostgreSQLRepository struct {
	db           *gorm.DB
	redisClient  *redis.Client
	cacheManager *cache.CacheManager

	users    repositories.UserRepository
	lines    repositories.LineRepository
	projects repositories.ProjectRepository
	courses  repositories.CourseRepository
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewPostgreSQLRepository creates the repository manager with all
// sub-repositories wired to the shared cache manager.
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	cacheManager := cache.NewCacheManager(config.RedisClient)

	return &PostgreSQLRepository{
		db:           config.DB,
		redisClient:  config.RedisClient,
		cacheManager: cacheManager,
		users:        NewUserPostgreSQL(config.DB),
		lines:        NewLinePostgreSQL(config.DB, cacheManager),
		projects:     NewProjectPostgreSQL(config.DB, cacheManager),
		courses:      NewCoursePostgreSQL(config.DB, cacheManager),
	}
}

func (r *PostgreSQLRepository) Users() repositories.UserRepository       { return r.users }
func (r *PostgreSQLRepository) Lines() repositories.LineRepository       { return r.lines }
func (r *PostgreSQLRepository) Projects() repositories.ProjectRepository { return r.projects }
func (r *PostgreSQLRepository) Courses() repositories.CourseRepository   { return r.courses }

func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
