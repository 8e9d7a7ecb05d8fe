package repository

import (
	"context"

	"github.com/pipeline-route-engine/internal/domain"
)

// RouteCacheRepository memoizes computed route results keyed on the
// request that produced them. Implementations back this with Redis
// (internal/repository/cache) or an in-process LRU
// (internal/repository/memcache); the usecase layer depends only on
// this interface.
type RouteCacheRepository interface {
	// Get returns the cached routes for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (routes []domain.RouteResult, ok bool, err error)

	// Set stores routes under key. ttlSeconds <= 0 means the
	// implementation's default TTL.
	Set(ctx context.Context, key string, routes []domain.RouteResult, ttlSeconds int) error

	// Delete removes any cached entry for key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// Health reports whether the backing store is reachable.
	Health(ctx context.Context) error
}
