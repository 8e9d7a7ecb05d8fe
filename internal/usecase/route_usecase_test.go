package usecase_test

import (
	"context"
	"testing"

	"github.com/gotidy/ptr"
	"github.com/pipeline-route-engine/internal/domain"
	"github.com/pipeline-route-engine/internal/engine"
	"github.com/pipeline-route-engine/internal/terrain"
	"github.com/pipeline-route-engine/internal/usecase"
	"github.com/pipeline-route-engine/internal/usecase/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRouteCache is a mock of repository.RouteCacheRepository.
type MockRouteCache struct {
	mock.Mock
}

func (m *MockRouteCache) Get(ctx context.Context, key string) ([]domain.RouteResult, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.RouteResult), args.Bool(1), args.Error(2)
}

func (m *MockRouteCache) Set(ctx context.Context, key string, routes []domain.RouteResult, ttlSeconds int) error {
	args := m.Called(ctx, key, routes, ttlSeconds)
	return args.Error(0)
}

func (m *MockRouteCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRouteCache) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func validRequest() dto.RouteRequest {
	return dto.RouteRequest{
		StartPoint:      "52.30,104.40",
		EndPoint:        "52.32,104.42",
		PipeType:        "oil",
		PipeDiameter:    500,
		PipeMaterial:    "steel",
		MaxPressure:     10,
		NumAlternatives: ptr.Int(1),
	}
}

func TestCalculateRouteCacheMissRunsEngine(t *testing.T) {
	cache := &MockRouteCache{}
	cache.On("Get", mock.Anything, mock.Anything).Return(nil, false, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	e := engine.New(terrain.New(1), 0)
	uc := usecase.NewRouteUseCase(e, cache, zap.NewNop())

	resp, err := uc.CalculateRoute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Routes, 2)
	cache.AssertExpectations(t)
}

func TestCalculateRouteCacheHitSkipsEngine(t *testing.T) {
	cache := &MockRouteCache{}
	cached := []domain.RouteResult{
		{
			Polyline: []domain.Point{{Lat: 52.30, Lng: 104.40}, {Lat: 52.32, Lng: 104.42}},
			Metrics:  domain.RouteMetrics{Found: true, TotalDistanceKM: 2.5},
		},
	}
	cache.On("Get", mock.Anything, mock.Anything).Return(cached, true, nil)

	e := engine.New(terrain.New(1), 0)
	uc := usecase.NewRouteUseCase(e, cache, zap.NewNop())

	resp, err := uc.CalculateRoute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, resp.Routes, 1)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCalculateRouteRejectsSameStartGoal(t *testing.T) {
	cache := &MockRouteCache{}
	e := engine.New(terrain.New(1), 0)
	uc := usecase.NewRouteUseCase(e, cache, zap.NewNop())

	req := validRequest()
	req.EndPoint = req.StartPoint

	_, err := uc.CalculateRoute(context.Background(), req)
	assert.Error(t, err)
}

func TestCalculateRouteRejectsInvalidDiameter(t *testing.T) {
	cache := &MockRouteCache{}
	e := engine.New(terrain.New(1), 0)
	uc := usecase.NewRouteUseCase(e, cache, zap.NewNop())

	req := validRequest()
	req.PipeDiameter = 50

	_, err := uc.CalculateRoute(context.Background(), req)
	assert.Error(t, err)
}

func TestCalculateRouteRejectsNegativeWeight(t *testing.T) {
	cache := &MockRouteCache{}
	e := engine.New(terrain.New(1), 0)
	uc := usecase.NewRouteUseCase(e, cache, zap.NewNop())

	req := validRequest()
	req.CriteriaWeights = map[string]float64{"distance": -0.1}

	_, err := uc.CalculateRoute(context.Background(), req)
	assert.Error(t, err)
}
