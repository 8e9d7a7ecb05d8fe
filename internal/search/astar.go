// Package search implements the multi-criteria A* core: strategy
// selection between a direct short hop, standard grid A*, and
// adaptive long-distance waypoint routing, plus path smoothing and
// deterministic alternative generation.
package search

import (
	"container/heap"

	"github.com/pipeline-route-engine/internal/costmodel"
	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/geo"
	"github.com/pipeline-route-engine/internal/metrics"
	"github.com/pipeline-route-engine/internal/terrain"
)

const (
	// DefaultStepDeg is the grid's default angular spacing, ~50m.
	DefaultStepDeg = 0.0005

	shortPathThresholdKM   = 0.5
	adaptivePathThresholdKM = 2.0

	iterationsBeforeStepDouble = 5000
	maxIterations              = 20000
)

// Search runs one multi-criteria A* instance bound to a terrain
// oracle, pipe spec, and a single start/goal pair. It is constructed
// per request and discarded after FindPaths returns.
type Search struct {
	oracle   *terrain.Oracle
	pipe     domain.PipeSpec
	start    domain.Point
	goal     domain.Point
	stepDeg  float64
}

// New constructs a Search for one start/goal pair. stepDeg <= 0 uses
// DefaultStepDeg.
func New(oracle *terrain.Oracle, pipe domain.PipeSpec, start, goal domain.Point, stepDeg float64) *Search {
	if stepDeg <= 0 {
		stepDeg = DefaultStepDeg
	}
	return &Search{oracle: oracle, pipe: pipe, start: start, goal: goal, stepDeg: stepDeg}
}

// FindPaths computes the primary route plus up to numAlternatives
// deterministic alternatives (only two perturbation shapes are
// defined, so numAlternatives is clamped to 2).
func (s *Search) FindPaths(weights domain.Weights, numAlternatives int) []domain.RouteResult {
	weights = weights.Normalize()
	results := make([]domain.RouteResult, 0, numAlternatives+1)

	primary := s.findSingle(weights, 0)
	results = append(results, primary)

	if numAlternatives > 2 {
		numAlternatives = 2
	}
	for i := 1; i <= numAlternatives; i++ {
		altWeights := weights.Alternative(i)
		alt := s.findSingle(altWeights, i)
		results = append(results, alt)
	}

	return results
}

// findSingle dispatches to the strategy selected by the great-circle
// start->goal distance.
func (s *Search) findSingle(weights domain.Weights, altNum int) domain.RouteResult {
	d := geo.Haversine(s.start, s.goal)

	var result domain.RouteResult
	switch {
	case d < shortPathThresholdKM:
		result = s.directPath(weights)
	case d > adaptivePathThresholdKM:
		result = s.adaptivePath(weights)
	default:
		result = s.standardAStar(weights)
	}

	result.Metrics.AlternativeNum = altNum
	return result
}

// directPath handles the D < 0.5km case: emit the two-point polyline
// with per-criterion costs evaluated once at goal.
func (s *Search) directPath(weights domain.Weights) domain.RouteResult {
	g := s.edgeCost(s.start, s.goal)
	polyline := []domain.Point{s.start, s.goal}
	metrics.Get().ObserveSearch("direct", 1)
	return domain.RouteResult{
		Polyline: polyline,
		Metrics:  s.buildMetrics(polyline, g, true),
	}
}

// edgeCost computes the per-criterion cost of moving from u to v.
func (s *Search) edgeCost(u, v domain.Point) domain.GScore {
	d := geo.Haversine(u, v)
	t := s.oracle.TerrainDifficulty(v.Lat, v.Lng)
	access := s.oracle.Accessibility(v.Lat, v.Lng)

	return domain.GScore{
		Distance:            d,
		TerrainDifficulty:   d * (1 + t),
		EnvironmentalImpact: costmodel.EnvironmentalImpact(s.pipe.Type, s.pipe.DiameterMM, t),
		ConstructionCost:    costmodel.ConstructionCost(d, s.pipe.DiameterMM, s.pipe.Material, t, s.pipe.Type),
		MaintenanceAccess:   d * (2 - access),
	}
}

// heuristic estimates remaining cost to goal: Haversine scaled up by
// local terrain difficulty. Admissible for distance alone, not for
// the weighted sum — preserved deliberately per the reference design.
func (s *Search) heuristic(p domain.Point) float64 {
	t := s.oracle.TerrainDifficulty(p.Lat, p.Lng)
	return geo.Haversine(p, s.goal) * (1 + 0.3*t)
}

// neighbors returns the eight grid neighbors of current, in the fixed
// iteration order (dlat outer, dlng inner, skipping (0,0)), with the
// two relaxations from the standard-mode spec: an otherwise-invalid
// neighbor is kept if within 3*step of goal, and the exact goal is
// appended once the search is within 4*step of it.
func (s *Search) neighbors(current domain.Point, step float64) []domain.Point {
	var out []domain.Point
	deltas := []float64{-step, 0, step}

	for _, dlat := range deltas {
		for _, dlng := range deltas {
			if dlat == 0 && dlng == 0 {
				continue
			}
			v := domain.Point{Lat: current.Lat + dlat, Lng: current.Lng + dlng}
			if s.oracle.IsValidPosition(v.Lat, v.Lng) {
				out = append(out, v)
				continue
			}
			if geo.Haversine(v, s.goal) <= 3*step {
				out = append(out, v)
			}
		}
	}

	if geo.Haversine(current, s.goal) < 4*step {
		hasGoal := false
		for _, v := range out {
			if v == s.goal {
				hasGoal = true
				break
			}
		}
		if !hasGoal {
			out = append(out, s.goal)
		}
	}

	return out
}

// standardAStar runs the best-first grid search described in spec
// §4.2.2: re-insertion discipline on strict improvement, stale-entry
// discard on pop, adaptive step doubling after 5000 iterations, and a
// hard 20000-iteration cap.
func (s *Search) standardAStar(weights domain.Weights) domain.RouteResult {
	step := s.stepDeg
	stepDoubled := false

	nodes := map[domain.Point]*node{}
	closed := map[domain.Point]bool{}
	oq := &openQueue{}
	heap.Init(oq)

	seq := 0
	startF := s.heuristic(s.start)
	startNode := &node{pos: s.start, g: domain.GScore{}, f: startF}
	nodes[s.start] = startNode
	heap.Push(oq, queueItem{pos: s.start, f: startF, seq: seq})
	seq++

	iterations := 0

	for oq.Len() > 0 {
		item := heap.Pop(oq).(queueItem)
		cur := nodes[item.pos]
		// Stale entry: the authoritative node for this position has
		// since been replaced by a strictly better insertion. Discard
		// rather than revisit.
		if cur == nil || item.f != cur.f {
			continue
		}
		if closed[item.pos] {
			continue
		}

		if geo.Haversine(cur.pos, s.goal) < 2*step {
			goalG := cur.g.Add(s.edgeCost(cur.pos, s.goal))
			goalNode := &node{pos: s.goal, g: goalG, parent: cur}
			polyline := reconstruct(goalNode)
			metrics.Get().ObserveSearch("standard", iterations)
			return domain.RouteResult{
				Polyline: polyline,
				Metrics:  s.buildMetrics(polyline, goalG, true),
			}
		}

		closed[item.pos] = true
		iterations++

		if iterations > iterationsBeforeStepDouble && !stepDoubled {
			step *= 2
			stepDoubled = true
		}
		if iterations > maxIterations {
			break
		}

		for _, v := range s.neighbors(cur.pos, step) {
			if closed[v] {
				continue
			}
			edge := s.edgeCost(cur.pos, v)
			newG := cur.g.Add(edge)
			newF := newG.Combined(weights) + s.heuristic(v)

			existing, seen := nodes[v]
			if !seen || newF < existing.f {
				n := &node{pos: v, g: newG, f: newF, parent: cur}
				nodes[v] = n
				heap.Push(oq, queueItem{pos: v, f: newF, seq: seq})
				seq++
			}
		}
	}

	metrics.Get().ObserveSearch("standard", iterations)
	return domain.RouteResult{
		Polyline: nil,
		Metrics:  domain.RouteMetrics{Found: false},
	}
}

// reconstruct walks parent references from terminal back to the
// search root and reverses them into a start->goal polyline.
func reconstruct(terminal *node) []domain.Point {
	var rev []domain.Point
	for n := terminal; n != nil; n = n.parent {
		rev = append(rev, n.pos)
	}
	out := make([]domain.Point, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}
