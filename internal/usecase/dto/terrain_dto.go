package dto

// TerrainRequest is the decoded query of GET /api/v1/terrain.
type TerrainRequest struct {
	North float64 `validate:"required"`
	South float64 `validate:"required"`
	East  float64 `validate:"required"`
	West  float64 `validate:"required"`
}

// TerrainResponse renders the sampled terrain grid plus the catalog
// features intersecting the requested bounding box.
type TerrainResponse struct {
	Grid     [][]TerrainCellDTO  `json:"grid"`
	Features []TerrainFeatureDTO `json:"features"`
	Bounds   BoundingBoxDTO      `json:"bounds"`
}

type TerrainCellDTO struct {
	Position      PointDTO `json:"position"`
	Elevation     float64  `json:"elevation"`
	Difficulty    float64  `json:"difficulty"`
	Accessibility float64  `json:"accessibility"`
}

// TerrainFeatureDTO flattens the closed TerrainFeature union into one
// wire shape tagged by Kind, since JSON has no native sum type.
type TerrainFeatureDTO struct {
	Kind string     `json:"kind"`
	Name string     `json:"name"`
	Lat  float64    `json:"lat,omitempty"`
	Lng  float64    `json:"lng,omitempty"`
	Path []PointDTO `json:"path,omitempty"`
}

type BoundingBoxDTO struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}
