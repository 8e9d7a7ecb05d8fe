package terrain

import "github.com/pipeline-route-engine/internal/domain"

// defaultProtectedAreas returns the static catalog's two nature
// reserves, centered in the Irkutsk region.
func defaultProtectedAreas() []domain.ProtectedArea {
	return []domain.ProtectedArea{
		{
			Name:         "Прибайкальский национальный парк",
			Center:       domain.Point{Lat: 52.0, Lng: 105.5},
			RadiusDeg:    0.5,
			ImpactFactor: 0.9,
		},
		{
			Name:         "Байкало-Ленский заповедник",
			Center:       domain.Point{Lat: 53.5, Lng: 107.8},
			RadiusDeg:    0.4,
			ImpactFactor: 0.95,
		},
	}
}

func defaultRivers() []domain.River {
	return []domain.River{
		{
			Name: "Ангара",
			Points: []domain.Point{
				{Lat: 52.3, Lng: 104.3},
				{Lat: 52.5, Lng: 104.2},
				{Lat: 52.7, Lng: 104.0},
				{Lat: 52.9, Lng: 103.8},
			},
			HalfWidthDeg: 0.01,
			DifficultyAdd: 0.8,
		},
		{
			Name: "Лена",
			Points: []domain.Point{
				{Lat: 53.1, Lng: 105.5},
				{Lat: 53.3, Lng: 105.7},
				{Lat: 53.5, Lng: 105.9},
			},
			HalfWidthDeg: 0.008,
			DifficultyAdd: 0.7,
		},
	}
}

func defaultRoads() []domain.Road {
	return []domain.Road{
		{
			Name: "М53",
			Points: []domain.Point{
				{Lat: 52.2, Lng: 104.1},
				{Lat: 52.3, Lng: 104.3},
				{Lat: 52.4, Lng: 104.5},
			},
			HalfWidthDeg: 0.003,
			BonusFactor:  0.6,
		},
		{
			Name: "М55",
			Points: []domain.Point{
				{Lat: 52.3, Lng: 104.3},
				{Lat: 52.3, Lng: 104.5},
				{Lat: 52.3, Lng: 104.7},
			},
			HalfWidthDeg: 0.002,
			BonusFactor:  0.5,
		},
	}
}

func defaultSettlements() []domain.Settlement {
	return []domain.Settlement{
		{
			Name:              "Иркутск",
			Center:            domain.Point{Lat: 52.3, Lng: 104.3},
			RadiusDeg:         0.1,
			Population:        600000,
			RestrictionFactor: 0.8,
		},
		{
			Name:              "Ангарск",
			Center:            domain.Point{Lat: 52.5, Lng: 103.9},
			RadiusDeg:         0.07,
			Population:        220000,
			RestrictionFactor: 0.7,
		},
	}
}

// defaultForbiddenZones is the hard exclusion list: cities too dense
// to route through, plus reserves whose core area is fully off-limits.
// These override the soft catalog above in IsValidPosition.
func defaultForbiddenZones() []domain.ForbiddenZone {
	return []domain.ForbiddenZone{
		{Name: "Иркутск", Center: domain.Point{Lat: 52.3, Lng: 104.3}, RadiusDeg: 0.12},
		{Name: "Ангарск", Center: domain.Point{Lat: 52.5, Lng: 103.9}, RadiusDeg: 0.08},
		{Name: "Шелехов", Center: domain.Point{Lat: 52.2, Lng: 104.08}, RadiusDeg: 0.04},
		{Name: "Усолье-Сибирское", Center: domain.Point{Lat: 52.75, Lng: 103.65}, RadiusDeg: 0.05},
		{Name: "Прибайкальский национальный парк", Center: domain.Point{Lat: 53.2, Lng: 107.35}, RadiusDeg: 0.35},
		{Name: "Байкало-Ленский заповедник", Center: domain.Point{Lat: 53.9, Lng: 108.0}, RadiusDeg: 0.40},
		{Name: "Байкальский заповедник", Center: domain.Point{Lat: 51.5, Lng: 105.0}, RadiusDeg: 0.30},
	}
}

// soilFactors maps each soil class to its difficulty contribution.
var soilFactors = map[string]float64{
	"clay": 0.4,
	"loam": 0.2,
	"sand": 0.3,
	"rock": 0.8,
	"peat": 0.6,
}

var soilTypes = []string{"clay", "loam", "sand", "rock", "peat"}
