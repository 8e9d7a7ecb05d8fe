// Package geojson renders planned routes and terrain features as
// GeoJSON, for callers (map UIs, GIS tooling) that want the standard
// format instead of the engine's native JSON shape.
package geojson

import (
	"github.com/paulmach/go.geojson"
	"github.com/pipeline-route-engine/internal/domain"
)

// RouteFeature renders one route's polyline as a GeoJSON LineString
// feature, with its metrics attached as properties.
func RouteFeature(result domain.RouteResult) *geojson.Feature {
	coords := make([][]float64, len(result.Polyline))
	for i, p := range result.Polyline {
		coords[i] = []float64{p.Lng, p.Lat}
	}

	f := geojson.NewLineStringFeature(coords)
	f.SetProperty("total_distance_km", result.Metrics.TotalDistanceKM)
	f.SetProperty("estimated_cost_millions", result.Metrics.EstimatedCostMillions)
	f.SetProperty("terrain_difficulty_score", result.Metrics.TerrainDifficultyScore)
	f.SetProperty("environmental_impact_score", result.Metrics.EnvironmentalImpactScore)
	f.SetProperty("alternative_num", result.Metrics.AlternativeNum)
	f.SetProperty("found", result.Metrics.Found)
	return f
}

// RouteCollection renders a primary route plus its alternatives as a
// single GeoJSON FeatureCollection.
func RouteCollection(results []domain.RouteResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range results {
		if r.Metrics.Found {
			fc.AddFeature(RouteFeature(r))
		}
	}
	return fc
}

// FeatureGeometry renders one catalog terrain feature (protected area,
// river, road, or settlement) as a GeoJSON feature: a circle's center
// becomes a Point, a linear feature's points become a LineString.
func FeatureGeometry(f domain.TerrainFeature) *geojson.Feature {
	switch v := f.(type) {
	case domain.ProtectedArea:
		gf := geojson.NewPointFeature([]float64{v.Center.Lng, v.Center.Lat})
		gf.SetProperty("name", v.Name)
		gf.SetProperty("kind", "protected_area")
		gf.SetProperty("radius_deg", v.RadiusDeg)
		return gf
	case domain.Settlement:
		gf := geojson.NewPointFeature([]float64{v.Center.Lng, v.Center.Lat})
		gf.SetProperty("name", v.Name)
		gf.SetProperty("kind", "settlement")
		gf.SetProperty("population", v.Population)
		return gf
	case domain.River:
		gf := geojson.NewLineStringFeature(pathCoords(v.Points))
		gf.SetProperty("name", v.Name)
		gf.SetProperty("kind", "river")
		return gf
	case domain.Road:
		gf := geojson.NewLineStringFeature(pathCoords(v.Points))
		gf.SetProperty("name", v.Name)
		gf.SetProperty("kind", "road")
		return gf
	default:
		return geojson.NewFeature(geojson.NewPointGeometry([]float64{0, 0}))
	}
}

// FeatureCollectionFrom renders a set of catalog terrain features as a
// GeoJSON FeatureCollection, as returned by the terrain exploration
// endpoint's bounding-box query.
func FeatureCollectionFrom(features []domain.TerrainFeature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.AddFeature(FeatureGeometry(f))
	}
	return fc
}

func pathCoords(points []domain.Point) [][]float64 {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lng, p.Lat}
	}
	return coords
}
