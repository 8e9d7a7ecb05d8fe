package search

import (
	"math"

	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/geo"
)

// buildMetrics derives the human-facing route metrics from the final
// polyline and the accumulated per-criterion cost at the terminal
// node. Division by zero on a degenerate (zero-length) route falls
// back to 0 for every ratio, per the engine's arithmetic-degeneracy
// rule.
func (s *Search) buildMetrics(polyline []domain.Point, terminal domain.GScore, found bool) domain.RouteMetrics {
	totalDistance := geo.PolylineLength(polyline)

	var terrainScore float64
	if totalDistance > 0 {
		terrainScore = terminal.TerrainDifficulty / totalDistance
	}

	goalDifficulty := s.oracle.TerrainDifficulty(s.goal.Lat, s.goal.Lng)
	constructionDays := (totalDistance / 1000) * (1 + 0.5*goalDifficulty)
	constructionDays = math.Round(constructionDays*10) / 10
	if math.IsNaN(constructionDays) || math.IsInf(constructionDays, 0) {
		constructionDays = 0
	}

	return domain.RouteMetrics{
		TotalDistanceKM:           totalDistance,
		EstimatedCostMillions:     terminal.ConstructionCost,
		TerrainDifficultyScore:    terrainScore,
		EnvironmentalImpactScore:  terminal.EnvironmentalImpact,
		EstimatedConstructionDays: constructionDays,
		Found:                     found,
	}
}
