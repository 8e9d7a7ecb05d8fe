// Package memcache implements an in-process RouteCacheRepository used
// when Redis is unreachable at startup: the same interface, backed by
// a size-bounded LRU instead of a network round trip.
package memcache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/domain/repository"
	"github.com/pipeline-route-engine/internal/metrics"
)

const defaultCapacity = 4096

type entry struct {
	routes    []domain.RouteResult
	expiresAt time.Time
}

// Repository is a RouteCacheRepository backed by an in-process LRU
// with per-entry expiry checked on read.
type Repository struct {
	mu         sync.Mutex
	cache      *lru.Cache[string, entry]
	defaultTTL time.Duration
}

// New builds a memcache Repository with the given capacity (<=0 uses
// defaultCapacity) and default TTL for entries set without one.
func New(capacity int, defaultTTL time.Duration) *Repository {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	c, _ := lru.New[string, entry](capacity)
	return &Repository{cache: c, defaultTTL: defaultTTL}
}

var _ repository.RouteCacheRepository = (*Repository)(nil)

func (r *Repository) Get(ctx context.Context, key string) ([]domain.RouteResult, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.cache.Get(key)
	if !ok || time.Now().After(e.expiresAt) {
		if ok {
			r.cache.Remove(key)
		}
		metrics.Get().RecordCacheMiss("memcache")
		return nil, false, nil
	}

	metrics.Get().RecordCacheHit("memcache")
	return e.routes, true, nil
}

func (r *Repository) Set(ctx context.Context, key string, routes []domain.RouteResult, ttlSeconds int) error {
	ttl := r.defaultTTL
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Add(key, entry{routes: routes, expiresAt: time.Now().Add(ttl)})
	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Remove(key)
	return nil
}

// Health always succeeds: the in-process cache has no external
// dependency to fail.
func (r *Repository) Health(ctx context.Context) error {
	return nil
}
