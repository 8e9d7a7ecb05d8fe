package cache

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/domain/repository"
	"github.com/pipeline-route-engine/internal/metrics"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const routeKeyPrefix = "route:"

// cacheRepository is the Redis-backed RouteCacheRepository: computed
// routes are JSON-encoded and stored with a per-call TTL, so a cold
// cache degrades to re-planning rather than failing.
type cacheRepository struct {
	client      *redis.Client
	logger      *zap.Logger
	defaultTTL  time.Duration
}

// NewCacheRepository builds a RouteCacheRepository backed by redis,
// defaulting entries to defaultTTL when Set is called with ttlSeconds
// <= 0.
func NewCacheRepository(r *Redis, defaultTTL time.Duration) repository.RouteCacheRepository {
	return &cacheRepository{
		client:     r.Client(),
		logger:     r.logger,
		defaultTTL: defaultTTL,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]domain.RouteResult, bool, error) {
	val, err := r.client.Get(ctx, routeKeyPrefix+key).Bytes()
	if err == redis.Nil {
		metrics.Get().RecordCacheMiss("redis")
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var routes []domain.RouteResult
	if err := json.Unmarshal(val, &routes); err != nil {
		r.logger.Error("cache unmarshal failed", zap.String("key", key), zap.Error(err))
		return nil, false, fmt.Errorf("cache unmarshal: %w", err)
	}

	metrics.Get().RecordCacheHit("redis")
	return routes, true, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, routes []domain.RouteResult, ttlSeconds int) error {
	ttl := r.defaultTTL
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}

	data, err := json.Marshal(routes)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}

	if err := r.client.Set(ctx, routeKeyPrefix+key, data, ttl).Err(); err != nil {
		r.logger.Error("cache set failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set: %w", err)
	}

	r.logger.Debug("cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, routeKeyPrefix+key).Err(); err != nil {
		r.logger.Error("cache delete failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (r *cacheRepository) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
