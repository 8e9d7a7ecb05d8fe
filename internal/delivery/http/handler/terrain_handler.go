package handler

import (
	"github.com/gofiber/fiber/v2"
	apperrors "github.com/pipeline-route-engine/internal/pkg/errors"
	"github.com/pipeline-route-engine/internal/pkg/utils"
	"github.com/pipeline-route-engine/internal/usecase"
	"github.com/pipeline-route-engine/internal/usecase/dto"
	"go.uber.org/zap"
)

// TerrainHandler exposes the terrain exploration operation over HTTP.
type TerrainHandler struct {
	uc     *usecase.TerrainUseCase
	logger *zap.Logger
}

func NewTerrainHandler(uc *usecase.TerrainUseCase, logger *zap.Logger) *TerrainHandler {
	return &TerrainHandler{uc: uc, logger: logger}
}

// GetTerrain handles GET /api/v1/terrain?north&south&east&west.
func (h *TerrainHandler) GetTerrain(c *fiber.Ctx) error {
	req := dto.TerrainRequest{
		North: c.QueryFloat("north"),
		South: c.QueryFloat("south"),
		East:  c.QueryFloat("east"),
		West:  c.QueryFloat("west"),
	}

	resp, err := h.uc.GetTerrain(req)
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"error": err.Error()}))
	}

	return c.JSON(resp)
}

// GetTerrainGeoJSON handles GET /api/v1/terrain/geojson?north&south&east&west.
func (h *TerrainHandler) GetTerrainGeoJSON(c *fiber.Ctx) error {
	req := dto.TerrainRequest{
		North: c.QueryFloat("north"),
		South: c.QueryFloat("south"),
		East:  c.QueryFloat("east"),
		West:  c.QueryFloat("west"),
	}

	fc, err := h.uc.GetTerrainGeoJSON(req)
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"error": err.Error()}))
	}

	return c.JSON(fc)
}
