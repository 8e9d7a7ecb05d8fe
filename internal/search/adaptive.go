package search

import (
	"math"

	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/geo"
	"github.com/pipeline-route-engine/internal/metrics"
)

const (
	minWaypoints          = 5
	maxWaypoints          = 40
	waypointSpacingKM     = 0.3
	localOptimizeRadiusDeg = 0.002
)

// adaptivePath handles D > 2km: seed evenly spaced waypoints along the
// start->goal chord, locally optimize each interior waypoint against
// evaluatePointSuitability, assemble the path, and smooth it if long.
func (s *Search) adaptivePath(weights domain.Weights) domain.RouteResult {
	d := geo.Haversine(s.start, s.goal)
	n := int(math.Round(d / waypointSpacingKM))
	if n < minWaypoints {
		n = minWaypoints
	}
	if n > maxWaypoints {
		n = maxWaypoints
	}

	waypoints := make([]domain.Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		waypoints[i] = lerp(s.start, s.goal, t)
	}
	for i := 1; i < n-1; i++ {
		waypoints[i] = s.optimizeWaypoint(waypoints[i], weights)
	}

	assembled := []domain.Point{s.start}
	for i := 1; i < n-1; i++ {
		if assembled[len(assembled)-1] != waypoints[i] {
			assembled = append(assembled, waypoints[i])
		}
	}
	if assembled[len(assembled)-1] != s.goal {
		assembled = append(assembled, s.goal)
	}

	polyline := assembled
	if len(polyline) > 10 {
		polyline = smoothPath(s.oracle, polyline)
	}

	var finalG domain.GScore
	for i := 1; i < len(polyline); i++ {
		finalG = finalG.Add(s.edgeCost(polyline[i-1], polyline[i]))
	}

	metrics.Get().ObserveSearch("adaptive", n)
	return domain.RouteResult{
		Polyline: polyline,
		Metrics:  s.buildMetrics(polyline, finalG, true),
	}
}

func lerp(a, b domain.Point, t float64) domain.Point {
	return domain.Point{
		Lat: a.Lat + (b.Lat-a.Lat)*t,
		Lng: a.Lng + (b.Lng-a.Lng)*t,
	}
}

// optimizeWaypoint evaluates w plus eight offsets at
// localOptimizeRadiusDeg in 45-degree increments and returns whichever
// scores highest under evaluatePointSuitability.
func (s *Search) optimizeWaypoint(w domain.Point, weights domain.Weights) domain.Point {
	best := w
	bestScore := s.evaluatePointSuitability(w, weights)

	for angleDeg := 0; angleDeg < 360; angleDeg += 45 {
		rad := float64(angleDeg) * math.Pi / 180
		candidate := domain.Point{
			Lat: w.Lat + localOptimizeRadiusDeg*math.Sin(rad),
			Lng: w.Lng + localOptimizeRadiusDeg*math.Cos(rad),
		}
		if score := s.evaluatePointSuitability(candidate, weights); score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best
}

// evaluatePointSuitability scores a candidate waypoint in [0.01, 1.0],
// starting from a 0.7 baseline and applying weighted road, water,
// terrain-difficulty, protected-area, and settlement adjustments.
func (s *Search) evaluatePointSuitability(p domain.Point, weights domain.Weights) float64 {
	if !s.oracle.IsValidPosition(p.Lat, p.Lng) {
		return 0.01
	}

	score := 0.7
	roadW := 3 * weights[domain.CriterionMaintenanceAccess]
	waterW := 3 * weights[domain.CriterionTerrainDifficulty]
	envW := 3 * weights[domain.CriterionEnvironmentalImpact]
	costW := 3 * weights[domain.CriterionConstructionCost]

	if nearRoad, bonus := s.oracle.NearRoad(p.Lat, p.Lng); nearRoad {
		score += bonus * roadW
	}
	if isWater, difficulty := s.oracle.IsWaterCrossing(p.Lat, p.Lng); isWater {
		score -= difficulty * waterW
	}
	score -= s.oracle.TerrainDifficulty(p.Lat, p.Lng) * (waterW + costW) / 2
	if isProtected, impact := s.oracle.IsProtectedArea(p.Lat, p.Lng); isProtected {
		score -= impact * envW
	}
	if isSettlement, restriction := s.oracle.NearSettlement(p.Lat, p.Lng); isSettlement {
		score -= restriction * envW
	}

	return math.Max(0.01, math.Min(1.0, score))
}
