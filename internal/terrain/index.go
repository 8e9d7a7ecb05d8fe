package terrain

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/pipeline-route-engine/internal/domain"
)

// indexedFeature adapts a catalog feature to rtreego.Spatial so the
// oracle can prune candidates with a bounding-box query before running
// the exact (and more expensive) containment test.
type indexedFeature struct {
	feature domain.TerrainFeature
	bounds  *rtreego.Rect
}

func (f indexedFeature) Bounds() *rtreego.Rect {
	return f.bounds
}

// padRect builds an rtreego.Rect covering [minLat-pad, maxLat+pad] x
// [minLng-pad, maxLng+pad]. rtreego indexes lng on axis 0 and lat on
// axis 1, matching the (x, y) convention used elsewhere in this
// package.
func padRect(minLng, minLat, maxLng, maxLat, pad float64) *rtreego.Rect {
	p := rtreego.Point{minLng - pad, minLat - pad}
	lengths := []float64{
		math.Max(maxLng-minLng+2*pad, 1e-9),
		math.Max(maxLat-minLat+2*pad, 1e-9),
	}
	rect, err := rtreego.NewRect(p, lengths)
	if err != nil {
		// Degenerate (zero-size) rects are rejected by rtreego; widen
		// slightly and retry rather than propagate a construction
		// error for a case the catalog can't actually produce.
		lengths[0] = math.Max(lengths[0], 1e-6)
		lengths[1] = math.Max(lengths[1], 1e-6)
		rect, _ = rtreego.NewRect(p, lengths)
	}
	return rect
}

func circleBounds(center domain.Point, radiusDeg float64) *rtreego.Rect {
	return padRect(center.Lng, center.Lat, center.Lng, center.Lat, radiusDeg)
}

func polylineBounds(points []domain.Point, halfWidthDeg float64) *rtreego.Rect {
	minLat, minLng := math.Inf(1), math.Inf(1)
	maxLat, maxLng := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLng = math.Min(minLng, p.Lng)
		maxLng = math.Max(maxLng, p.Lng)
	}
	return padRect(minLng, minLat, maxLng, maxLat, halfWidthDeg)
}

// buildIndex inserts every catalog feature into a fresh R-tree keyed
// by its padded bounding box, so bbox-style lookups (GetTerrainData,
// near-feature pre-filtering) don't need a linear scan as the catalog
// grows.
func buildIndex(protected []domain.ProtectedArea, rivers []domain.River, roads []domain.Road, settlements []domain.Settlement) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 2, 5)
	for _, a := range protected {
		tree.Insert(indexedFeature{feature: a, bounds: circleBounds(a.Center, a.RadiusDeg)})
	}
	for _, r := range rivers {
		tree.Insert(indexedFeature{feature: r, bounds: polylineBounds(r.Points, r.HalfWidthDeg)})
	}
	for _, r := range roads {
		tree.Insert(indexedFeature{feature: r, bounds: polylineBounds(r.Points, r.HalfWidthDeg)})
	}
	for _, s := range settlements {
		tree.Insert(indexedFeature{feature: s, bounds: circleBounds(s.Center, s.RadiusDeg)})
	}
	return tree
}

// queryBBox returns every catalog feature whose padded bounds
// intersect the given lat/lng rectangle.
func queryBBox(tree *rtreego.Rtree, north, south, east, west float64) []domain.TerrainFeature {
	rect := padRect(west, south, east, north, 0)
	hits := tree.SearchIntersect(rect)
	out := make([]domain.TerrainFeature, 0, len(hits))
	for _, h := range hits {
		if idx, ok := h.(indexedFeature); ok {
			out = append(out, idx.feature)
		}
	}
	return out
}

// nearbyFeatures returns every catalog feature whose padded bounds
// intersect a small box around p, used to narrow the candidates that
// near_road/near_settlement/is_water_crossing/is_protected_area test
// exactly.
func nearbyFeatures(tree *rtreego.Rtree, p domain.Point, pad float64) []domain.TerrainFeature {
	rect := padRect(p.Lng, p.Lat, p.Lng, p.Lat, pad)
	hits := tree.SearchIntersect(rect)
	out := make([]domain.TerrainFeature, 0, len(hits))
	for _, h := range hits {
		if idx, ok := h.(indexedFeature); ok {
			out = append(out, idx.feature)
		}
	}
	return out
}
