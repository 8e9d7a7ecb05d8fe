// Package geo provides the geodesy primitives the search and terrain
// oracle build on: great-circle distance, polyline length,
// point-to-segment distance, and Fréchet distance for comparing
// candidate routes.
package geo

import (
	"math"

	"github.com/pipeline-route-engine/internal/domain"
)

// EarthRadiusKM is the sphere radius used by Haversine, matching the
// value used throughout the route planner's cost and heuristic models.
const EarthRadiusKM = 6371.0

// Haversine returns the great-circle distance between a and b in
// kilometers.
func Haversine(a, b domain.Point) float64 {
	lat1, lat2 := degToRad(a.Lat), degToRad(b.Lat)
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	sinDLat := math.Sin(dLat / 2)
	sinDLng := math.Sin(dLng / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLng*sinDLng
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKM * math.Asin(math.Sqrt(h))
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

// PolylineLength sums the Haversine distance between consecutive
// points. Returns 0 for fewer than two points.
func PolylineLength(points []domain.Point) float64 {
	if len(points) < 2 {
		return 0
	}
	var total float64
	for i := 1; i < len(points); i++ {
		total += Haversine(points[i-1], points[i])
	}
	return total
}

// PointToSegmentDistance returns the shortest planar distance in
// degrees from p to the segment ab, treating lat/lng as a flat
// Euclidean plane. This is adequate at the sub-degree scale the
// terrain catalog operates at; it is not a geodesic distance.
func PointToSegmentDistance(p, a, b domain.Point) float64 {
	ax, ay := a.Lng, a.Lat
	bx, by := b.Lng, b.Lat
	px, py := p.Lng, p.Lat

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}

	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	closestX := ax + t*dx
	closestY := ay + t*dy
	return math.Hypot(px-closestX, py-closestY)
}

// PolylineMinDistance returns the minimum point-to-segment distance
// from p to any consecutive pair of points, used by the terrain
// oracle to test proximity to rivers and roads.
func PolylineMinDistance(p domain.Point, line []domain.Point) float64 {
	if len(line) == 0 {
		return math.Inf(1)
	}
	if len(line) == 1 {
		return math.Hypot(p.Lng-line[0].Lng, p.Lat-line[0].Lat)
	}
	min := math.Inf(1)
	for i := 1; i < len(line); i++ {
		d := PointToSegmentDistance(p, line[i-1], line[i])
		if d < min {
			min = d
		}
	}
	return min
}

// TurnAngle returns the angle in radians between the incoming segment
// prev->cur and the outgoing segment cur->next, in [0, pi]. Used by
// path smoothing to decide whether a vertex marks a meaningful turn.
func TurnAngle(prev, cur, next domain.Point) float64 {
	v1x, v1y := cur.Lng-prev.Lng, cur.Lat-prev.Lat
	v2x, v2y := next.Lng-cur.Lng, next.Lat-cur.Lat

	n1 := math.Hypot(v1x, v1y)
	n2 := math.Hypot(v2x, v2y)
	if n1 == 0 || n2 == 0 {
		return 0
	}

	cos := (v1x*v2x + v1y*v2y) / (n1 * n2)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// FrechetDistance computes the discrete Fréchet distance between two
// polylines using Haversine as the point metric, returned in
// kilometers. Used to confirm alternative routes are meaningfully
// distinct (spec scenario S5).
func FrechetDistance(p, q []domain.Point) float64 {
	n, m := len(p), len(q)
	if n == 0 || m == 0 {
		return 0
	}

	ca := make([][]float64, n)
	for i := range ca {
		ca[i] = make([]float64, m)
		for j := range ca[i] {
			ca[i][j] = -1
		}
	}

	var recurse func(i, j int) float64
	recurse = func(i, j int) float64 {
		if ca[i][j] > -1 {
			return ca[i][j]
		}
		d := Haversine(p[i], q[j])
		switch {
		case i == 0 && j == 0:
			ca[i][j] = d
		case i > 0 && j == 0:
			ca[i][j] = math.Max(recurse(i-1, 0), d)
		case i == 0 && j > 0:
			ca[i][j] = math.Max(recurse(0, j-1), d)
		default:
			ca[i][j] = math.Max(
				math.Min(recurse(i-1, j), math.Min(recurse(i-1, j-1), recurse(i, j-1))),
				d,
			)
		}
		return ca[i][j]
	}

	return recurse(n-1, m-1)
}
