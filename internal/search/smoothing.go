package search

import (
	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/geo"
	"github.com/pipeline-route-engine/internal/terrain"
)

const (
	turnAngleThresholdRad   = 0.2
	difficultyThreshold     = 0.6
	segmentLengthThresholdKM = 0.8
	minEmitSpacingKM        = 0.05
)

// smoothPath keeps the start and goal, and retains an interior point
// only if it marks a meaningful turn, a water crossing, road
// proximity, difficult terrain, or a long preceding segment. A kept
// point is still dropped if it falls within minEmitSpacingKM of the
// most recently emitted point.
func smoothPath(oracle *terrain.Oracle, points []domain.Point) []domain.Point {
	if len(points) <= 2 {
		return points
	}

	out := []domain.Point{points[0]}
	lastEmitted := points[0]

	for i := 1; i < len(points)-1; i++ {
		prev, cur, next := points[i-1], points[i], points[i+1]

		keep := geo.TurnAngle(prev, cur, next) > turnAngleThresholdRad
		if !keep {
			if isWater, _ := oracle.IsWaterCrossing(cur.Lat, cur.Lng); isWater {
				keep = true
			}
		}
		if !keep {
			if nearRoad, _ := oracle.NearRoad(cur.Lat, cur.Lng); nearRoad {
				keep = true
			}
		}
		if !keep && oracle.TerrainDifficulty(cur.Lat, cur.Lng) > difficultyThreshold {
			keep = true
		}
		if !keep && geo.Haversine(prev, cur) > segmentLengthThresholdKM {
			keep = true
		}

		if !keep {
			continue
		}
		if geo.Haversine(lastEmitted, cur) < minEmitSpacingKM {
			continue
		}

		out = append(out, cur)
		lastEmitted = cur
	}

	out = append(out, points[len(points)-1])
	return out
}
