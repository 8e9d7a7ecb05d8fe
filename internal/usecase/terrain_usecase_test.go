package usecase_test

import (
	"testing"

	"github.com/pipeline-route-engine/internal/engine"
	"github.com/pipeline-route-engine/internal/terrain"
	"github.com/pipeline-route-engine/internal/usecase"
	"github.com/pipeline-route-engine/internal/usecase/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTerrainReturnsGridAndFeatures(t *testing.T) {
	e := engine.New(terrain.New(1), 0)
	uc := usecase.NewTerrainUseCase(e)

	resp, err := uc.GetTerrain(dto.TerrainRequest{North: 52.30, South: 52.28, East: 104.30, West: 104.28})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Grid)
	assert.Equal(t, 52.30, resp.Bounds.North)
}

func TestGetTerrainRejectsInvertedBounds(t *testing.T) {
	e := engine.New(terrain.New(1), 0)
	uc := usecase.NewTerrainUseCase(e)

	_, err := uc.GetTerrain(dto.TerrainRequest{North: 52.28, South: 52.30, East: 104.30, West: 104.28})
	assert.Error(t, err)
}
