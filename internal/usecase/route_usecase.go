// Package usecase wires the engine, terrain oracle, construction-time
// estimator, narrative generator, and route cache behind the two
// HTTP-facing operations: plan a route, and sample terrain over a
// bounding box.
package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pipeline-route-engine/internal/construction"
	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/domain/repository"
	"github.com/pipeline-route-engine/internal/engine"
	"github.com/pipeline-route-engine/internal/narrative"
	geojsonrender "github.com/pipeline-route-engine/internal/pkg/geojson"
	apperrors "github.com/pipeline-route-engine/internal/pkg/errors"
	"github.com/pipeline-route-engine/internal/usecase/dto"
	"github.com/paulmach/go.geojson"
	"go.uber.org/zap"
)

// defaultNumAlternatives is used when a request omits numAlternatives.
const defaultNumAlternatives = 2

// RouteUseCase plans primary and alternative pipeline routes, caching
// results keyed on the normalized request.
type RouteUseCase struct {
	engine *engine.Engine
	cache  repository.RouteCacheRepository
	logger *zap.Logger
}

// NewRouteUseCase builds a RouteUseCase around the shared engine and
// cache backend.
func NewRouteUseCase(e *engine.Engine, cache repository.RouteCacheRepository, logger *zap.Logger) *RouteUseCase {
	return &RouteUseCase{engine: e, cache: cache, logger: logger}
}

// CalculateRouteGeoJSON plans the same primary+alternatives route set
// as CalculateRoute and renders it as a GeoJSON FeatureCollection for
// map-facing callers. It bypasses the route cache: GeoJSON export is
// an occasional convenience path, not the hot request shape.
func (uc *RouteUseCase) CalculateRouteGeoJSON(ctx context.Context, req dto.RouteRequest) (*geojson.FeatureCollection, error) {
	start, goal, pipe, weights, numAlt, err := parseAndValidate(req)
	if err != nil {
		return nil, err
	}

	results := uc.engine.PlanRoute(start, goal, pipe, weights, numAlt)
	return geojsonrender.RouteCollection(results), nil
}

// CalculateRoute validates req, consults the cache, and otherwise runs
// the engine, caching and returning the primary route plus
// alternatives rendered for the HTTP layer.
func (uc *RouteUseCase) CalculateRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	start, goal, pipe, weights, numAlt, err := parseAndValidate(req)
	if err != nil {
		return nil, err
	}

	cacheKey := buildCacheKey(start, goal, pipe, weights, numAlt)

	if cached, ok, err := uc.cache.Get(ctx, cacheKey); err == nil && ok {
		return &dto.RouteResponse{Success: true, Routes: renderRoutes(cached, uc.engine, pipe, weights)}, nil
	} else if err != nil {
		uc.logger.Warn("route cache get failed, falling through to search", zap.Error(err))
	}

	results := uc.engine.PlanRoute(start, goal, pipe, weights, numAlt)

	if err := uc.cache.Set(ctx, cacheKey, results, 0); err != nil {
		uc.logger.Warn("route cache set failed", zap.Error(err))
	}

	return &dto.RouteResponse{Success: true, Routes: renderRoutes(results, uc.engine, pipe, weights)}, nil
}

// renderRoutes converts engine results into the HTTP-facing shape,
// attaching the construction-time string and narrative description
// that are not computed inside the search core. weights is the
// request's normalized criteria weighting, not the engine default, so
// the narrative's weight-focus sentence reflects what was actually
// asked for.
func renderRoutes(results []domain.RouteResult, e *engine.Engine, pipe domain.PipeSpec, weights domain.Weights) []dto.RouteResult {
	out := make([]dto.RouteResult, 0, len(results))
	for _, r := range results {
		if !r.Metrics.Found {
			continue
		}

		points := make([]dto.PointDTO, len(r.Polyline))
		for i, p := range r.Polyline {
			points[i] = dto.PointDTO{Lat: p.Lat, Lng: p.Lng}
		}

		description := narrative.Describe(r.Polyline, r.Metrics, e.Oracle(), weights)
		constructionTime := construction.Describe(r.Metrics.TotalDistanceKM, pipe.DiameterMM, pipe.Type, r.Metrics.TerrainDifficultyScore)

		out = append(out, dto.RouteResult{
			Route: points,
			Metrics: dto.RouteMetrics{
				TotalDistanceKM:           r.Metrics.TotalDistanceKM,
				EstimatedCost:             r.Metrics.EstimatedCostMillions,
				TerrainDifficultyScore:    r.Metrics.TerrainDifficultyScore,
				EnvironmentalImpactScore:  r.Metrics.EnvironmentalImpactScore,
				EstimatedConstructionDays: r.Metrics.EstimatedConstructionDays,
				AlternativeNum:            r.Metrics.AlternativeNum,
			},
			TotalDistance:       r.Metrics.TotalDistanceKM,
			EstimatedCost:       r.Metrics.EstimatedCostMillions,
			TerrainDifficulty:   r.Metrics.TerrainDifficultyScore,
			EnvironmentalImpact: r.Metrics.EnvironmentalImpactScore,
			ConstructionTime:    constructionTime,
			RouteDescription:    description,
			AlternativeNum:      r.Metrics.AlternativeNum,
		})
	}
	return out
}

// parseAndValidate decodes and checks req, returning the structured
// values the engine expects or an *errors.AppError on failure.
func parseAndValidate(req dto.RouteRequest) (start, goal domain.Point, pipe domain.PipeSpec, weights domain.Weights, numAlt int, err error) {
	start, err = parseLatLng(req.StartPoint)
	if err != nil {
		return start, goal, pipe, weights, numAlt, apperrors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{"field": "startPoint"})
	}
	goal, err = parseLatLng(req.EndPoint)
	if err != nil {
		return start, goal, pipe, weights, numAlt, apperrors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{"field": "endPoint"})
	}
	if start == goal {
		return start, goal, pipe, weights, numAlt, apperrors.ErrSameStartGoal
	}

	pipeType := domain.PipeType(req.PipeType)
	switch pipeType {
	case domain.PipeTypeOil, domain.PipeTypeGas, domain.PipeTypeWater:
	default:
		return start, goal, pipe, weights, numAlt, apperrors.ErrInvalidPipeType
	}

	material := domain.PipeMaterial(req.PipeMaterial)
	switch material {
	case domain.PipeMaterialSteel, domain.PipeMaterialPlastic, domain.PipeMaterialComposite:
	default:
		return start, goal, pipe, weights, numAlt, apperrors.ErrInvalidPipeMaterial
	}

	if req.PipeDiameter < 100 || req.PipeDiameter > 2000 {
		return start, goal, pipe, weights, numAlt, apperrors.ErrInvalidPipeDiameter
	}
	if req.MaxPressure < 1 || req.MaxPressure > 100 {
		return start, goal, pipe, weights, numAlt, apperrors.ErrInvalidPressure
	}

	pipe = domain.PipeSpec{
		Type:           pipeType,
		DiameterMM:     req.PipeDiameter,
		Material:       material,
		MaxPressureATM: req.MaxPressure,
	}

	weights = domain.DefaultWeights()
	for k, v := range req.CriteriaWeights {
		if v < 0 {
			return start, goal, pipe, weights, numAlt, apperrors.ErrInvalidWeights
		}
		weights[domain.Criterion(k)] = v
	}
	weights = weights.Normalize()

	numAlt = defaultNumAlternatives
	if req.NumAlternatives != nil {
		numAlt = *req.NumAlternatives
	}
	if numAlt < 0 {
		numAlt = 0
	}

	return start, goal, pipe, weights, numAlt, nil
}

// parseLatLng parses a "lat,lng" string into a domain.Point, rejecting
// malformed input and out-of-range coordinates.
func parseLatLng(s string) (domain.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Point{}, fmt.Errorf("expected \"lat,lng\", got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid longitude: %w", err)
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return domain.Point{}, fmt.Errorf("coordinates out of range: %s", s)
	}

	return domain.Point{Lat: lat, Lng: lng}, nil
}

// buildCacheKey derives a stable string key from the normalized
// request so identical requests (including perturbed alternatives)
// hit the same cache entry.
func buildCacheKey(start, goal domain.Point, pipe domain.PipeSpec, weights domain.Weights, numAlt int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.5f,%.5f-%.5f,%.5f|%s|%d|%s|%.1f|%d",
		start.Lat, start.Lng, goal.Lat, goal.Lng,
		pipe.Type, int(pipe.DiameterMM), pipe.Material, pipe.MaxPressureATM, numAlt)
	for _, c := range domain.AllCriteria {
		fmt.Fprintf(&b, "|%s=%.4f", c, weights[c])
	}
	return b.String()
}
