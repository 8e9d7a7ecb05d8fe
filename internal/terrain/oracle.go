// Package terrain implements the deterministic, memoized spatial
// oracle the search consults for elevation, slope, soil class,
// protected-area/water/road/settlement proximity, aggregate terrain
// difficulty, accessibility, and position validity.
package terrain

import (
	"math"
	"math/rand"
	"sync"

	"github.com/dhconnelly/rtreego"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/geo"
	"github.com/pipeline-route-engine/internal/metrics"
)

const (
	gridStepDeg    = 0.001 // slope sampling offset (~100m)
	maxRoadPadDeg  = 0.02  // widest road half-width * 5, rounded up
	maxRiverPadDeg = 0.02
	cacheSize      = 1 << 16
)

// Oracle answers spatial queries over the static terrain catalog. It
// is safe for concurrent reads once constructed: the catalog is
// immutable, and the memoization caches use their own locking.
type Oracle struct {
	protected   []domain.ProtectedArea
	rivers      []domain.River
	roads       []domain.Road
	settlements []domain.Settlement
	forbidden   []domain.ForbiddenZone
	index       *rtreego.Rtree

	rngMu sync.Mutex
	rng   *rand.Rand

	elevationCache *lru.Cache[[2]int64, float64]
	slopeCache     *lru.Cache[[2]int64, float64]
	soilCache      *lru.Cache[[2]int64, string]
	difficultyCache *lru.Cache[[2]int64, float64]
	accessCache    *lru.Cache[[2]int64, float64]
}

// New builds an Oracle over the default static catalog, seeding its
// noise generator deterministically so repeated runs with the same
// seed reproduce identical elevation/slope/difficulty values.
func New(seed int64) *Oracle {
	protected := defaultProtectedAreas()
	rivers := defaultRivers()
	roads := defaultRoads()
	settlements := defaultSettlements()

	o := &Oracle{
		protected:   protected,
		rivers:      rivers,
		roads:       roads,
		settlements: settlements,
		forbidden:   defaultForbiddenZones(),
		index:       buildIndex(protected, rivers, roads, settlements),
		rng:         rand.New(rand.NewSource(seed)),
	}

	o.elevationCache, _ = lru.New[[2]int64, float64](cacheSize)
	o.slopeCache, _ = lru.New[[2]int64, float64](cacheSize)
	o.soilCache, _ = lru.New[[2]int64, string](cacheSize)
	o.difficultyCache, _ = lru.New[[2]int64, float64](cacheSize)
	o.accessCache, _ = lru.New[[2]int64, float64](cacheSize)
	return o
}

func (o *Oracle) noise() float64 {
	o.rngMu.Lock()
	defer o.rngMu.Unlock()
	return -50 + o.rng.Float64()*100
}

// Elevation returns a synthesized elevation in meters. Noise is drawn
// once per unique rounded coordinate and cached for the oracle's
// lifetime, so repeated calls at the same position are idempotent.
func (o *Oracle) Elevation(lat, lng float64) float64 {
	metrics.Get().RecordTerrainQuery("elevation")
	key := domain.RoundedKey(lat, lng)
	if v, ok := o.elevationCache.Get(key); ok {
		return v
	}

	base := 500.0
	xFactor := math.Sin(lat*10) * math.Cos(lng*8) * 200
	yFactor := math.Sin(lng*12) * math.Cos(lat*9) * 150
	elevation := base + xFactor + yFactor + o.noise()

	o.elevationCache.Add(key, elevation)
	return elevation
}

// Slope returns the max normalized elevation gradient toward the
// northern and eastern neighbor, in [0, 1].
func (o *Oracle) Slope(lat, lng float64) float64 {
	metrics.Get().RecordTerrainQuery("slope")
	key := domain.RoundedKey(lat, lng)
	if v, ok := o.slopeCache.Get(key); ok {
		return v
	}

	center := o.Elevation(lat, lng)
	north := o.Elevation(lat+gridStepDeg, lng)
	east := o.Elevation(lat, lng+gridStepDeg)

	slopeNorth := math.Min(math.Abs(north-center)/100, 1.0)
	slopeEast := math.Min(math.Abs(east-center)/100, 1.0)
	slope := math.Max(slopeNorth, slopeEast)

	o.slopeCache.Add(key, slope)
	return slope
}

// SoilType returns a deterministic soil class in
// {clay, loam, sand, rock, peat}.
func (o *Oracle) SoilType(lat, lng float64) string {
	metrics.Get().RecordTerrainQuery("soil")
	key := domain.RoundedKey(lat, lng)
	if v, ok := o.soilCache.Get(key); ok {
		return v
	}

	value := ((math.Sin(lat*100)+1)/2 + (math.Cos(lng*100)+1)/2) / 2
	idx := int(value * float64(len(soilTypes)))
	if idx >= len(soilTypes) {
		idx = len(soilTypes) - 1
	}
	if idx < 0 {
		idx = 0
	}
	soil := soilTypes[idx]

	o.soilCache.Add(key, soil)
	return soil
}

// IsProtectedArea reports whether (lat,lng) falls inside a catalog
// nature reserve, and its impact factor if so. The R-tree narrows the
// candidate set before the exact circle test runs.
func (o *Oracle) IsProtectedArea(lat, lng float64) (bool, float64) {
	p := domain.Point{Lat: lat, Lng: lng}
	for _, f := range nearbyFeatures(o.index, p, 0.5) {
		area, ok := f.(domain.ProtectedArea)
		if !ok {
			continue
		}
		if angularDistance(p, area.Center) <= area.RadiusDeg {
			return true, area.ImpactFactor
		}
	}
	return false, 0
}

// IsWaterCrossing reports whether (lat,lng) falls within a river's
// half-width, and the crossing difficulty if so.
func (o *Oracle) IsWaterCrossing(lat, lng float64) (bool, float64) {
	p := domain.Point{Lat: lat, Lng: lng}
	for _, f := range nearbyFeatures(o.index, p, maxRiverPadDeg) {
		river, ok := f.(domain.River)
		if !ok {
			continue
		}
		if geo.PolylineMinDistance(p, river.Points) <= river.HalfWidthDeg {
			return true, river.DifficultyAdd
		}
	}
	return false, 0
}

// NearRoad reports tri-valued road proximity: directly on a road
// returns (true, -0.2); within 1x-5x half-width returns (true, bonus)
// peaking at 2x half-width; otherwise (false, 0).
func (o *Oracle) NearRoad(lat, lng float64) (bool, float64) {
	p := domain.Point{Lat: lat, Lng: lng}
	for _, f := range nearbyFeatures(o.index, p, maxRoadPadDeg) {
		road, ok := f.(domain.Road)
		if !ok {
			continue
		}
		dist := geo.PolylineMinDistance(p, road.Points)
		w := road.HalfWidthDeg
		switch {
		case dist <= w:
			return true, -0.2
		case dist <= w*5:
			optimalDist := w * 2
			proximity := 1.0 - math.Abs(dist-optimalDist)/(w*3)
			return true, road.BonusFactor * proximity
		}
	}
	return false, 0
}

// NearSettlement reports whether (lat,lng) falls within a settlement
// radius, and its restriction factor if so.
func (o *Oracle) NearSettlement(lat, lng float64) (bool, float64) {
	p := domain.Point{Lat: lat, Lng: lng}
	for _, f := range nearbyFeatures(o.index, p, 0.1) {
		s, ok := f.(domain.Settlement)
		if !ok {
			continue
		}
		if angularDistance(p, s.Center) <= s.RadiusDeg {
			return true, s.RestrictionFactor
		}
	}
	return false, 0
}

// TerrainDifficulty aggregates slope, soil, water, protection, and
// settlement factors into a single [0,1] score.
func (o *Oracle) TerrainDifficulty(lat, lng float64) float64 {
	metrics.Get().RecordTerrainQuery("difficulty")
	key := domain.RoundedKey(lat, lng)
	if v, ok := o.difficultyCache.Get(key); ok {
		return v
	}

	slope := o.Slope(lat, lng)
	soil := o.SoilType(lat, lng)
	isProtected, protectionFactor := o.IsProtectedArea(lat, lng)
	isWater, waterDifficulty := o.IsWaterCrossing(lat, lng)
	isSettlement, settlementRestriction := o.NearSettlement(lat, lng)

	difficulty := 0.3*slope + 0.2*soilFactors[soil]
	if isWater {
		difficulty += 0.25 * waterDifficulty
	}
	if isProtected {
		difficulty += 0.15 * protectionFactor
	}
	if isSettlement {
		difficulty += 0.1 * settlementRestriction
	}
	difficulty = clamp01(difficulty)

	o.difficultyCache.Add(key, difficulty)
	return difficulty
}

// Accessibility scores how easy a position is to reach and maintain,
// in [0,1]: inversely related to terrain difficulty, boosted or
// penalized by road proximity.
func (o *Oracle) Accessibility(lat, lng float64) float64 {
	metrics.Get().RecordTerrainQuery("access")
	key := domain.RoundedKey(lat, lng)
	if v, ok := o.accessCache.Get(key); ok {
		return v
	}

	difficulty := o.TerrainDifficulty(lat, lng)
	accessibility := 1.0 - difficulty*0.6

	if nearRoad, bonus := o.NearRoad(lat, lng); nearRoad {
		accessibility += bonus * 0.4
	}
	accessibility = clamp01(accessibility)

	o.accessCache.Add(key, accessibility)
	return accessibility
}

// IsValidPosition reports whether a pipeline may pass through
// (lat,lng): false outside Earth bounds, false inside any hard
// forbidden zone, false inside a catalog protected area or settlement
// whose factor exceeds 0.95, true otherwise.
func (o *Oracle) IsValidPosition(lat, lng float64) bool {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return false
	}

	p := domain.Point{Lat: lat, Lng: lng}
	for _, zone := range o.forbidden {
		if angularDistance(p, zone.Center) <= zone.RadiusDeg {
			return false
		}
	}

	if isProtected, impact := o.IsProtectedArea(lat, lng); isProtected && impact > 0.95 {
		return false
	}
	if isSettlement, restriction := o.NearSettlement(lat, lng); isSettlement && restriction > 0.95 {
		return false
	}

	return true
}

// TerrainCell is one sample of the terrain grid returned by
// GetTerrainData.
type TerrainCell struct {
	Position     domain.Point
	Elevation    float64
	Difficulty   float64
	Accessibility float64
}

// TerrainData is the read-model response for the terrain exploration
// endpoint: a sampled grid plus the catalog features intersecting the
// requested bbox.
type TerrainData struct {
	Grid     [][]TerrainCell
	Features []domain.TerrainFeature
	Bounds   domain.BoundingBox
}

const terrainGridStepDeg = 0.01

// GetTerrainData samples a grid at ~1km resolution over the bbox and
// returns the catalog features intersecting it.
func (o *Oracle) GetTerrainData(north, south, east, west float64) TerrainData {
	var grid [][]TerrainCell
	for lat := south; lat <= north; lat += terrainGridStepDeg {
		var row []TerrainCell
		for lng := west; lng <= east; lng += terrainGridStepDeg {
			row = append(row, TerrainCell{
				Position:      domain.Point{Lat: lat, Lng: lng},
				Elevation:     o.Elevation(lat, lng),
				Difficulty:    o.TerrainDifficulty(lat, lng),
				Accessibility: o.Accessibility(lat, lng),
			})
		}
		grid = append(grid, row)
	}

	return TerrainData{
		Grid:     grid,
		Features: queryBBox(o.index, north, south, east, west),
		Bounds:   domain.BoundingBox{North: north, South: south, East: east, West: west},
	}
}

func angularDistance(a, b domain.Point) float64 {
	return math.Hypot(a.Lat-b.Lat, a.Lng-b.Lng)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
