package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElevationDeterministic(t *testing.T) {
	o := New(42)
	a := o.Elevation(52.3, 104.3)
	b := o.Elevation(52.3, 104.3)
	assert.Equal(t, a, b)
}

func TestElevationDeterministicAcrossRoundedKeys(t *testing.T) {
	o := New(42)
	a := o.Elevation(52.300001, 104.300001)
	b := o.Elevation(52.300002, 104.300002)
	assert.Equal(t, a, b)
}

func TestSlopeInRange(t *testing.T) {
	o := New(1)
	s := o.Slope(52.4, 104.4)
	assert.GreaterOrEqual(t, s, 0.0)
	assert.LessOrEqual(t, s, 1.0)
}

func TestSoilTypeIsKnownClass(t *testing.T) {
	o := New(1)
	soil := o.SoilType(52.4, 104.4)
	_, ok := soilFactors[soil]
	assert.True(t, ok)
}

func TestIsProtectedAreaInsideCatalogEntry(t *testing.T) {
	o := New(1)
	ok, impact := o.IsProtectedArea(52.0, 105.5)
	assert.True(t, ok)
	assert.InDelta(t, 0.9, impact, 1e-9)
}

func TestIsProtectedAreaOutside(t *testing.T) {
	o := New(1)
	ok, _ := o.IsProtectedArea(10, 10)
	assert.False(t, ok)
}

func TestIsWaterCrossingOnAngaraRiver(t *testing.T) {
	o := New(1)
	ok, difficulty := o.IsWaterCrossing(52.3, 104.3)
	assert.True(t, ok)
	assert.InDelta(t, 0.8, difficulty, 1e-9)
}

func TestNearRoadDirectlyOnRoadIsPenalized(t *testing.T) {
	o := New(1)
	ok, bonus := o.NearRoad(52.3, 104.3)
	assert.True(t, ok)
	assert.Less(t, bonus, 0.0)
}

func TestNearRoadAtOptimalDistanceIsPositive(t *testing.T) {
	o := New(1)
	// M55 runs along lat=52.3 from lng 104.3 to 104.7 with half-width
	// 0.002; this point sits exactly 2x half-width north of the
	// centerline, the peak of the optimal-bonus band.
	ok, bonus := o.NearRoad(52.304, 104.4)
	assert.True(t, ok)
	assert.Greater(t, bonus, 0.0)
}

func TestNearRoadFarAway(t *testing.T) {
	o := New(1)
	ok, bonus := o.NearRoad(10, 10)
	assert.False(t, ok)
	assert.Equal(t, 0.0, bonus)
}

func TestNearSettlementInsideIrkutsk(t *testing.T) {
	o := New(1)
	ok, restriction := o.NearSettlement(52.3, 104.3)
	assert.True(t, ok)
	assert.InDelta(t, 0.8, restriction, 1e-9)
}

func TestTerrainDifficultyBounded(t *testing.T) {
	o := New(1)
	d := o.TerrainDifficulty(52.35, 104.45)
	assert.GreaterOrEqual(t, d, 0.0)
	assert.LessOrEqual(t, d, 1.0)
}

func TestTerrainDifficultyDeterministic(t *testing.T) {
	o := New(7)
	a := o.TerrainDifficulty(52.4, 104.5)
	b := o.TerrainDifficulty(52.4, 104.5)
	assert.Equal(t, a, b)
}

func TestAccessibilityBounded(t *testing.T) {
	o := New(1)
	a := o.Accessibility(52.4, 104.5)
	assert.GreaterOrEqual(t, a, 0.0)
	assert.LessOrEqual(t, a, 1.0)
}

func TestIsValidPositionOutsideEarthBounds(t *testing.T) {
	o := New(1)
	assert.False(t, o.IsValidPosition(95, 104.3))
	assert.False(t, o.IsValidPosition(52.3, 185))
}

func TestIsValidPositionInsideForbiddenCity(t *testing.T) {
	o := New(1)
	assert.False(t, o.IsValidPosition(52.3, 104.3))
}

func TestIsValidPositionInsideExtremeProtectedReserve(t *testing.T) {
	o := New(1)
	// Байкало-Ленский заповедник has impact_factor 0.95, which alone
	// does not exceed the IsValidPosition threshold, but it is also on
	// the hard-forbidden list at a different center/radius.
	assert.False(t, o.IsValidPosition(53.9, 108.0))
}

func TestIsValidPositionOrdinaryPointIsValid(t *testing.T) {
	o := New(1)
	assert.True(t, o.IsValidPosition(52.6, 104.6))
}

func TestGetTerrainDataProducesGridAndFeatures(t *testing.T) {
	o := New(1)
	data := o.GetTerrainData(52.35, 52.25, 104.35, 104.25)
	assert.NotEmpty(t, data.Grid)
	assert.NotEmpty(t, data.Features)
}
