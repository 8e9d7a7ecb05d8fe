// Package engine exposes the facade the usecase layer calls: accept
// one routing request, normalize its weights, construct a search
// bound to the shared terrain oracle and the request's pipe spec, and
// return the primary route plus alternatives.
package engine

import (
	"time"

	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/metrics"
	"github.com/pipeline-route-engine/internal/search"
	"github.com/pipeline-route-engine/internal/terrain"
)

// Engine is constructed once per process around a shared, read-mostly
// terrain oracle and serves many requests; each request gets its own
// *search.Search instance.
type Engine struct {
	oracle  *terrain.Oracle
	stepDeg float64
}

// New builds an Engine around oracle. stepDeg <= 0 uses
// search.DefaultStepDeg.
func New(oracle *terrain.Oracle, stepDeg float64) *Engine {
	return &Engine{oracle: oracle, stepDeg: stepDeg}
}

// Oracle returns the engine's shared terrain oracle, used by the
// terrain read endpoint.
func (e *Engine) Oracle() *terrain.Oracle {
	return e.oracle
}

// PlanRoute normalizes weights, runs the search for start->goal under
// pipe, and returns the primary route plus up to numAlternatives
// deterministic alternatives.
func (e *Engine) PlanRoute(start, goal domain.Point, pipe domain.PipeSpec, weights domain.Weights, numAlternatives int) []domain.RouteResult {
	started := time.Now()
	normalized := weights.Normalize()
	s := search.New(e.oracle, pipe, start, goal, e.stepDeg)
	results := s.FindPaths(normalized, numAlternatives)

	found := len(results) > 0 && results[0].Metrics.Found
	metrics.Get().ObserveRoutePlan(string(pipe.Type), time.Since(started), found)

	return results
}
