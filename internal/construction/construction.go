// Package construction estimates and formats pipeline build time from
// route metrics, grounded on the reference planner's
// calculate_construction_time: a diameter-tiered base rate, adjusted
// for pipe type and terrain difficulty, rendered as a human string.
package construction

import (
	"fmt"
	"math"

	"github.com/pipeline-route-engine/internal/domain"
)

var pipeTypeTimeFactors = map[domain.PipeType]float64{
	domain.PipeTypeOil:   1.0,
	domain.PipeTypeGas:   1.2,
	domain.PipeTypeWater: 0.9,
}

// baseRateKMPerDay returns the diameter-tiered construction rate:
// small pipes go in fastest, large pipes slowest.
func baseRateKMPerDay(diameterMM float64) float64 {
	switch {
	case diameterMM <= 300:
		return 0.5
	case diameterMM <= 700:
		return 0.3
	default:
		return 0.2
	}
}

// EstimateDays returns the ceiling number of construction days for a
// route of totalDistanceKM at the given diameter/pipe type and
// terrain difficulty score.
func EstimateDays(totalDistanceKM, diameterMM float64, pipeType domain.PipeType, terrainDifficultyScore float64) int {
	rate := baseRateKMPerDay(diameterMM)
	typeFactor, ok := pipeTypeTimeFactors[pipeType]
	if !ok {
		typeFactor = 1.0
	}
	terrainFactor := 1.0 + terrainDifficultyScore

	days := (totalDistanceKM / rate) * terrainFactor * typeFactor
	return int(math.Ceil(days))
}

// FormatDays renders a day count as a human string: "N days" up to a
// month, "N months" up to a year, otherwise "Y years and M months"
// (or just "Y years" when the remainder is exact).
func FormatDays(days int) string {
	switch {
	case days <= 30:
		return fmt.Sprintf("%d days", days)
	case days <= 365:
		months := int(math.Ceil(float64(days) / 30))
		return fmt.Sprintf("%d months", months)
	default:
		years := days / 365
		months := int(math.Ceil(float64(days%365) / 30))
		if months > 0 {
			return fmt.Sprintf("%d years and %d months", years, months)
		}
		return fmt.Sprintf("%d years", years)
	}
}

// Describe is the one-call convenience used when rendering route
// responses: it estimates days from route metrics and renders the
// human string.
func Describe(totalDistanceKM, diameterMM float64, pipeType domain.PipeType, terrainDifficultyScore float64) string {
	return FormatDays(EstimateDays(totalDistanceKM, diameterMM, pipeType, terrainDifficultyScore))
}
