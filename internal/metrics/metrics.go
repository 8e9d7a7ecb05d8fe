// Package metrics exposes the Prometheus instrumentation for the route
// planning engine: request counters, search performance, and cache
// effectiveness, wired the way the teacher's observability layer wires
// HTTP and domain metrics.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every Prometheus collector the engine records against.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RoutesPlannedTotal   *prometheus.CounterVec
	RoutePlanDuration    *prometheus.HistogramVec
	SearchIterationsUsed prometheus.Histogram
	SearchStrategyTotal  *prometheus.CounterVec
	PathNotFoundTotal    prometheus.Counter

	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	TerrainQueriesTotal *prometheus.CounterVec
}

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Get returns the process-wide Metrics instance, registering its
// collectors with the default registry on first use.
func Get() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = newMetrics()
	})
	return globalMetrics
}

func newMetrics() *Metrics {
	m := &Metrics{}

	m.HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "routeplanner",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	m.HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "routeplanner",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	m.RoutesPlannedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "routeplanner",
			Subsystem: "engine",
			Name:      "routes_planned_total",
			Help:      "Total route plan requests, by pipe type",
		},
		[]string{"pipe_type"},
	)

	m.RoutePlanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "routeplanner",
			Subsystem: "engine",
			Name:      "plan_duration_seconds",
			Help:      "Wall-clock time to plan a route and its alternatives",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"pipe_type"},
	)

	m.SearchIterationsUsed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "routeplanner",
			Subsystem: "search",
			Name:      "iterations",
			Help:      "Number of A* iterations consumed per search",
			Buckets:   prometheus.ExponentialBuckets(16, 2, 12),
		},
	)

	m.SearchStrategyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "routeplanner",
			Subsystem: "search",
			Name:      "strategy_total",
			Help:      "Total searches by strategy selected (direct, standard, adaptive)",
		},
		[]string{"strategy"},
	)

	m.PathNotFoundTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "routeplanner",
			Subsystem: "search",
			Name:      "path_not_found_total",
			Help:      "Total route plans whose primary search did not reach the goal",
		},
	)

	m.CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "routeplanner",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total route cache hits",
		},
		[]string{"backend"},
	)

	m.CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "routeplanner",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total route cache misses",
		},
		[]string{"backend"},
	)

	m.TerrainQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "routeplanner",
			Subsystem: "terrain",
			Name:      "queries_total",
			Help:      "Total terrain oracle queries, by query type",
		},
		[]string{"query"},
	)

	return m
}

// Handler returns the HTTP handler that serves /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRoutePlan records one completed PlanRoute call: its pipe type,
// duration, and whether it produced a usable path.
func (m *Metrics) ObserveRoutePlan(pipeType string, duration time.Duration, found bool) {
	m.RoutesPlannedTotal.WithLabelValues(pipeType).Inc()
	m.RoutePlanDuration.WithLabelValues(pipeType).Observe(duration.Seconds())
	if !found {
		m.PathNotFoundTotal.Inc()
	}
}

// ObserveSearch records the strategy and iteration count of a single
// A*/adaptive search invocation.
func (m *Metrics) ObserveSearch(strategy string, iterations int) {
	m.SearchStrategyTotal.WithLabelValues(strategy).Inc()
	m.SearchIterationsUsed.Observe(float64(iterations))
}

// RecordCacheHit records a route cache hit against the given backend
// ("redis" or "memcache").
func (m *Metrics) RecordCacheHit(backend string) {
	m.CacheHitsTotal.WithLabelValues(backend).Inc()
}

// RecordCacheMiss records a route cache miss.
func (m *Metrics) RecordCacheMiss(backend string) {
	m.CacheMissesTotal.WithLabelValues(backend).Inc()
}

// RecordTerrainQuery records a terrain oracle call by query kind
// ("elevation", "slope", "soil", "difficulty", "access").
func (m *Metrics) RecordTerrainQuery(query string) {
	m.TerrainQueriesTotal.WithLabelValues(query).Inc()
}

// RecordHTTPRequest records one finished HTTP request.
func (m *Metrics) RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
