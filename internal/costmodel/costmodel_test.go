package costmodel

import (
	"testing"

	"github.com/pipeline-route-engine/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestConstructionCostIncreasesWithDistance(t *testing.T) {
	short := ConstructionCost(1, 500, domain.PipeMaterialSteel, 0.2, domain.PipeTypeOil)
	long := ConstructionCost(10, 500, domain.PipeMaterialSteel, 0.2, domain.PipeTypeOil)
	assert.Greater(t, long, short)
}

func TestConstructionCostIncreasesWithTerrainDifficulty(t *testing.T) {
	easy := ConstructionCost(5, 500, domain.PipeMaterialSteel, 0.1, domain.PipeTypeOil)
	hard := ConstructionCost(5, 500, domain.PipeMaterialSteel, 0.9, domain.PipeTypeOil)
	assert.Greater(t, hard, easy)
}

func TestConstructionCostUnknownMaterialDefaultsToOne(t *testing.T) {
	known := ConstructionCost(5, 500, domain.PipeMaterialSteel, 0.3, domain.PipeTypeOil)
	unknown := ConstructionCost(5, 500, domain.PipeMaterial("unobtainium"), 0.3, domain.PipeTypeOil)
	assert.InDelta(t, known, unknown, 1e-9)
}

func TestEnvironmentalImpactBounded(t *testing.T) {
	for _, pt := range []domain.PipeType{domain.PipeTypeOil, domain.PipeTypeGas, domain.PipeTypeWater} {
		for _, d := range []float64{100, 500, 2000} {
			for _, terr := range []float64{0, 0.5, 1} {
				v := EnvironmentalImpact(pt, d, terr)
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

func TestEnvironmentalImpactOilHigherThanWater(t *testing.T) {
	oil := EnvironmentalImpact(domain.PipeTypeOil, 500, 0.3)
	water := EnvironmentalImpact(domain.PipeTypeWater, 500, 0.3)
	assert.Greater(t, oil, water)
}
