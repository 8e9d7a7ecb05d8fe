package domain

import "math"

// Point is a geographic position in decimal degrees. Equality is bitwise
// on the two floats, matching the engine's use of points as exact grid
// keys.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox is a rectangular lat/lng region used for terrain queries.
type BoundingBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Contains reports whether p lies within the box, boundary inclusive.
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.South && p.Lat <= b.North && p.Lng >= b.West && p.Lng <= b.East
}

// roundScale is the fixed decimal precision used to key terrain oracle
// caches. Native float equality is not relied on anywhere else.
const roundScale = 1e5

// RoundedKey rounds lat/lng to 5 decimal places and returns an integer
// pair suitable as a map/cache key.
func RoundedKey(lat, lng float64) [2]int64 {
	return [2]int64{
		int64(math.Round(lat * roundScale)),
		int64(math.Round(lng * roundScale)),
	}
}
