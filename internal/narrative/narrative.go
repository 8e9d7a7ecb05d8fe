// Package narrative renders a human-readable English description of a
// computed route: an introduction, turn-by-turn highlights, terrain
// features encountered, and the reasoning behind the weighting that
// produced it. Grounded on the reference planner's
// generate_route_description / _determine_turn_reason / _get_direction.
package narrative

import (
	"fmt"
	"math"
	"strings"

	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/geo"
	"github.com/pipeline-route-engine/internal/terrain"
)

const significantTurnRad = 0.26

// Describe builds the route description for route, given its metrics,
// the shared terrain oracle, and the weights the search was run with.
func Describe(route []domain.Point, metrics domain.RouteMetrics, oracle *terrain.Oracle, weights domain.Weights) string {
	if len(route) < 2 {
		return "Route too short to describe."
	}

	var description []string

	description = append(description, fmt.Sprintf("Pipeline route: %s.", formatDistance(metrics.TotalDistanceKM)))

	directDistance := geo.Haversine(route[0], route[len(route)-1])
	var efficiency float64
	if metrics.TotalDistanceKM > 0 {
		efficiency = directDistance / metrics.TotalDistanceKM
	}
	if efficiency > 0.9 {
		description = append(description, fmt.Sprintf("The route closely follows a straight line (%.0f%% efficient).", efficiency*100))
	} else {
		description = append(description, fmt.Sprintf("The route deviates from a straight line (%.0f%% efficient) due to terrain features.", efficiency*100))
	}

	var terrainFeatures []string
	var turnsDescription []string
	roadSegments := 0
	waterCrossings := 0
	difficultTerrain := 0

	turnsDescription = append(turnsDescription, fmt.Sprintf("The route begins at (%.4f, %.4f).", route[0].Lat, route[0].Lng))

	for i := 1; i < len(route); i++ {
		prev := route[i-1]
		cur := route[i]

		if i > 1 {
			prevPrev := route[i-2]
			angle1 := math.Atan2(prev.Lat-prevPrev.Lat, prev.Lng-prevPrev.Lng)
			angle2 := math.Atan2(cur.Lat-prev.Lat, cur.Lng-prev.Lng)
			if math.Abs(angle1-angle2) > significantTurnRad {
				reason := turnReason(prev, cur, oracle)
				dir := direction(prev, cur)
				if reason != "" {
					distFromStart := geo.Haversine(route[0], prev)
					turnsDescription = append(turnsDescription, fmt.Sprintf(
						"At %s the route turns %s %s.", formatDistance(distFromStart), dir, reason))
				}
			}
		}

		if isWater, _ := oracle.IsWaterCrossing(cur.Lat, cur.Lng); isWater {
			waterCrossings++
			line := fmt.Sprintf("At %s the route crosses a water body.", formatDistance(geo.Haversine(route[0], cur)))
			if !contains(turnsDescription, line) {
				turnsDescription = append(turnsDescription, line)
			}
		}

		if nearRoad, bonus := oracle.NearRoad(cur.Lat, cur.Lng); nearRoad && bonus > 0 {
			roadSegments++
		}

		if oracle.TerrainDifficulty(cur.Lat, cur.Lng) > 0.7 {
			difficultTerrain++
			line := fmt.Sprintf("At %s the route crosses a section of difficult terrain.", formatDistance(geo.Haversine(route[0], cur)))
			if !contains(turnsDescription, line) {
				turnsDescription = append(turnsDescription, line)
			}
		}
	}

	turnsDescription = append(turnsDescription, fmt.Sprintf("The route ends at (%.4f, %.4f).", route[len(route)-1].Lat, route[len(route)-1].Lng))

	if waterCrossings > 0 {
		terrainFeatures = append(terrainFeatures, fmt.Sprintf("%d water crossings", waterCrossings))
	}
	if difficultTerrain > 0 {
		terrainFeatures = append(terrainFeatures, fmt.Sprintf("%d sections of difficult terrain", difficultTerrain))
	}
	if float64(roadSegments) > float64(len(route))*0.3 {
		terrainFeatures = append(terrainFeatures, fmt.Sprintf("runs alongside roads for %d segments", roadSegments))
	}

	var weightExplanations []string
	if weights[domain.CriterionEnvironmentalImpact] > 0.3 {
		weightExplanations = append(weightExplanations, "minimizing environmental impact")
	}
	if weights[domain.CriterionTerrainDifficulty] > 0.3 {
		weightExplanations = append(weightExplanations, "minimizing terrain difficulty")
	}
	if weights[domain.CriterionMaintenanceAccess] > 0.3 {
		weightExplanations = append(weightExplanations, "ensuring maintenance access")
	}
	if weights[domain.CriterionConstructionCost] > 0.3 {
		weightExplanations = append(weightExplanations, "reducing construction cost")
	}
	if len(weightExplanations) > 0 {
		description = append(description, "The route was planned with a focus on "+strings.Join(weightExplanations, ", ")+".")
	}

	if len(terrainFeatures) > 0 {
		description = append(description, "Route features: "+strings.Join(terrainFeatures, ", ")+".")
	}

	if len(turnsDescription) > 0 {
		description = append(description, "Detailed route description:")
		description = append(description, turnsDescription...)
	}

	description = append(description, fmt.Sprintf("Estimated construction cost: %s.", formatCostMillions(metrics.EstimatedCostMillions)))

	return strings.Join(description, " ")
}

// turnReason picks the dominant cause of a turn: water crossing, road
// following, road avoidance, terrain detour, settlement avoidance, or
// a generic optimization explanation.
func turnReason(prev, cur domain.Point, oracle *terrain.Oracle) string {
	if isWater, _ := oracle.IsWaterCrossing(cur.Lat, cur.Lng); isWater {
		return "to cross a water body"
	}

	if nearRoad, bonus := oracle.NearRoad(cur.Lat, cur.Lng); nearRoad && bonus > 0 {
		return "to follow a road"
	}

	midLat := prev.Lat + (cur.Lat-prev.Lat)*0.5
	midLng := prev.Lng + (cur.Lng-prev.Lng)*0.5
	if onRoad, penalty := oracle.NearRoad(midLat, midLng); onRoad && penalty < 0 {
		return "to avoid a road"
	}

	difficultyCur := oracle.TerrainDifficulty(cur.Lat, cur.Lng)
	difficultyPrev := oracle.TerrainDifficulty(prev.Lat, prev.Lng)
	difficultyBetween := oracle.TerrainDifficulty(midLat, midLng)

	if difficultyBetween > difficultyCur+0.2 {
		return "to avoid a difficult terrain section"
	}

	if isSettlement, _ := oracle.NearSettlement(midLat, midLng); isSettlement {
		return "to avoid a settlement"
	}

	if difficultyCur < difficultyPrev-0.1 {
		return "to choose more favorable terrain"
	}

	return "per the optimization criteria"
}

// direction reports the dominant compass heading from prev to cur.
func direction(prev, cur domain.Point) string {
	latDiff := cur.Lat - prev.Lat
	lngDiff := cur.Lng - prev.Lng

	if math.Abs(latDiff) > math.Abs(lngDiff) {
		if latDiff > 0 {
			return "north"
		}
		return "south"
	}
	if lngDiff > 0 {
		return "east"
	}
	return "west"
}

func formatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(km*1000))
	}
	return fmt.Sprintf("%.2f km", km)
}

func formatCostMillions(millions float64) string {
	if millions < 1 {
		return fmt.Sprintf("%d thousand ₽", int(millions*1000))
	}
	return fmt.Sprintf("%.2f million ₽", millions)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
