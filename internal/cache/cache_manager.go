package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// CacheManager bundles the per-collection cache helpers.
type CacheManager struct {
	Lines    *CacheHelper
	Projects *CacheHelper
	Courses  *CacheHelper
	Stats    *CacheHelper
}

// NewCacheManager creates helpers for each catalog collection. A nil
// client yields a manager whose helpers degrade gracefully.
func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{
		Lines:    NewCacheHelper(client, CatalogCacheConfig.Prefix+"lines:"),
		Projects: NewCacheHelper(client, CatalogCacheConfig.Prefix+"projects:"),
		Courses:  NewCacheHelper(client, CatalogCacheConfig.Prefix+"courses:"),
		Stats:    NewCacheHelper(client, StatsCacheConfig.Prefix),
	}
}

// SafeInvalidatePattern invalidates a cache pattern, logging failures
// instead of propagating them.
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete deletes cache keys, logging failures instead of
// propagating them.
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateLineCache drops the cached line lists and the stats counts
// after a create. Per-id entries never go stale: entities are
// immutable once created, and misses are not cached.
func InvalidateLineCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Lines, "list:*")
	SafeInvalidatePattern(ctx, cm.Stats, "*")
}

// InvalidateProjectCache drops the cached project lists and the stats
// counts after a create.
func InvalidateProjectCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Projects, "list:*")
	SafeInvalidatePattern(ctx, cm.Stats, "*")
}

// InvalidateCourseCache drops the cached course lists and the stats
// counts after a create.
func InvalidateCourseCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Courses, "list:*")
	SafeInvalidatePattern(ctx, cm.Stats, "*")
}
