package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightsNormalize(t *testing.T) {
	w := Weights{
		CriterionDistance:          2,
		CriterionTerrainDifficulty: 2,
	}
	norm := w.Normalize()

	var sum float64
	for _, c := range AllCriteria {
		sum += norm[c]
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, 0.5, norm[CriterionDistance], 1e-9)
	assert.InDelta(t, 0.5, norm[CriterionTerrainDifficulty], 1e-9)
}

func TestWeightsNormalizeZeroFallsBackToDefault(t *testing.T) {
	w := Weights{}
	assert.Equal(t, DefaultWeights(), w.Normalize())
}

func TestWeightsAlternativeRenormalizes(t *testing.T) {
	base := DefaultWeights()
	for _, n := range []int{1, 2} {
		out := base.Alternative(n)
		var sum float64
		for _, c := range AllCriteria {
			sum += out[c]
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestWeightsAlternativeUnknownIndexIsUnperturbed(t *testing.T) {
	base := DefaultWeights()
	assert.Equal(t, base.Normalize(), base.Alternative(99))
}

func TestWeightsAlternativeOneBoostsTerrainAndImpact(t *testing.T) {
	base := DefaultWeights()
	out := base.Alternative(1)
	assert.Greater(t, out[CriterionTerrainDifficulty], base.Normalize()[CriterionTerrainDifficulty])
	assert.Greater(t, out[CriterionEnvironmentalImpact], base.Normalize()[CriterionEnvironmentalImpact])
}

func TestGScoreCombined(t *testing.T) {
	g := GScore{Distance: 10, TerrainDifficulty: 5}
	w := Weights{CriterionDistance: 0.5, CriterionTerrainDifficulty: 0.5}
	assert.InDelta(t, 7.5, g.Combined(w), 1e-9)
}

func TestGScoreAdd(t *testing.T) {
	a := GScore{Distance: 1, ConstructionCost: 2}
	b := GScore{Distance: 3, ConstructionCost: 4}
	sum := a.Add(b)
	assert.Equal(t, GScore{Distance: 4, ConstructionCost: 6}, sum)
}

func TestRoundedKeyStableUnderTinyNoise(t *testing.T) {
	a := RoundedKey(52.300001, 104.300001)
	b := RoundedKey(52.300002, 104.300002)
	assert.Equal(t, a, b)

	c := RoundedKey(52.30006, 104.30006)
	assert.NotEqual(t, a, c)
}

func TestBoundingBoxContains(t *testing.T) {
	box := BoundingBox{North: 53, South: 52, East: 105, West: 104}
	assert.True(t, box.Contains(Point{Lat: 52.5, Lng: 104.5}))
	assert.False(t, box.Contains(Point{Lat: 54, Lng: 104.5}))
}

func TestTerrainFeatureClosedSet(t *testing.T) {
	var features []TerrainFeature = []TerrainFeature{
		ProtectedArea{Name: "reserve"},
		River{Name: "river"},
		Road{Name: "road"},
		Settlement{Name: "town"},
	}
	for _, f := range features {
		assert.NotEmpty(t, f.FeatureName())
	}
}
