package usecase

import (
	"fmt"

	"github.com/paulmach/go.geojson"
	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/engine"
	geojsonrender "github.com/pipeline-route-engine/internal/pkg/geojson"
	"github.com/pipeline-route-engine/internal/terrain"
	"github.com/pipeline-route-engine/internal/usecase/dto"
)

// TerrainUseCase serves the terrain exploration endpoint directly from
// the engine's shared oracle; there is nothing to cache or validate
// beyond the bounding box shape.
type TerrainUseCase struct {
	engine *engine.Engine
}

func NewTerrainUseCase(e *engine.Engine) *TerrainUseCase {
	return &TerrainUseCase{engine: e}
}

// GetTerrain samples the oracle over req's bounding box and renders
// the result for the HTTP layer.
func (uc *TerrainUseCase) GetTerrain(req dto.TerrainRequest) (*dto.TerrainResponse, error) {
	if req.North <= req.South || req.East <= req.West {
		return nil, fmt.Errorf("invalid bounding box: north must exceed south and east must exceed west")
	}

	data := uc.engine.Oracle().GetTerrainData(req.North, req.South, req.East, req.West)
	return renderTerrain(data), nil
}

// GetTerrainGeoJSON samples the same bounding box and renders only
// the catalog features (not the elevation grid) as a GeoJSON
// FeatureCollection.
func (uc *TerrainUseCase) GetTerrainGeoJSON(req dto.TerrainRequest) (*geojson.FeatureCollection, error) {
	if req.North <= req.South || req.East <= req.West {
		return nil, fmt.Errorf("invalid bounding box: north must exceed south and east must exceed west")
	}

	data := uc.engine.Oracle().GetTerrainData(req.North, req.South, req.East, req.West)
	return geojsonrender.FeatureCollectionFrom(data.Features), nil
}

func renderTerrain(data terrain.TerrainData) *dto.TerrainResponse {
	grid := make([][]dto.TerrainCellDTO, len(data.Grid))
	for i, row := range data.Grid {
		cells := make([]dto.TerrainCellDTO, len(row))
		for j, cell := range row {
			cells[j] = dto.TerrainCellDTO{
				Position:      dto.PointDTO{Lat: cell.Position.Lat, Lng: cell.Position.Lng},
				Elevation:     cell.Elevation,
				Difficulty:    cell.Difficulty,
				Accessibility: cell.Accessibility,
			}
		}
		grid[i] = cells
	}

	features := make([]dto.TerrainFeatureDTO, 0, len(data.Features))
	for _, f := range data.Features {
		features = append(features, renderFeature(f))
	}

	return &dto.TerrainResponse{
		Grid:     grid,
		Features: features,
		Bounds: dto.BoundingBoxDTO{
			North: data.Bounds.North,
			South: data.Bounds.South,
			East:  data.Bounds.East,
			West:  data.Bounds.West,
		},
	}
}

// renderFeature flattens the closed TerrainFeature union into one
// tagged wire shape via a type switch, since the interface itself
// deliberately forbids external implementations.
func renderFeature(f domain.TerrainFeature) dto.TerrainFeatureDTO {
	switch v := f.(type) {
	case domain.ProtectedArea:
		return dto.TerrainFeatureDTO{Kind: "protected_area", Name: v.Name, Lat: v.Center.Lat, Lng: v.Center.Lng}
	case domain.River:
		return dto.TerrainFeatureDTO{Kind: "river", Name: v.Name, Path: pointsToDTO(v.Points)}
	case domain.Road:
		return dto.TerrainFeatureDTO{Kind: "road", Name: v.Name, Path: pointsToDTO(v.Points)}
	case domain.Settlement:
		return dto.TerrainFeatureDTO{Kind: "settlement", Name: v.Name, Lat: v.Center.Lat, Lng: v.Center.Lng}
	default:
		return dto.TerrainFeatureDTO{Kind: "unknown", Name: f.FeatureName()}
	}
}

func pointsToDTO(points []domain.Point) []dto.PointDTO {
	out := make([]dto.PointDTO, len(points))
	for i, p := range points {
		out[i] = dto.PointDTO{Lat: p.Lat, Lng: p.Lng}
	}
	return out
}
