package handler

import (
	"github.com/gofiber/fiber/v2"
	apperrors "github.com/pipeline-route-engine/internal/pkg/errors"
	"github.com/pipeline-route-engine/internal/pkg/utils"
	"github.com/pipeline-route-engine/internal/pkg/validator"
	"github.com/pipeline-route-engine/internal/usecase"
	"github.com/pipeline-route-engine/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler exposes the route planning operation over HTTP.
type RouteHandler struct {
	uc     *usecase.RouteUseCase
	logger *zap.Logger
}

func NewRouteHandler(uc *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{uc: uc, logger: logger}
}

// CalculateRoute handles POST /api/v1/calculate_route.
func (h *RouteHandler) CalculateRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"parse_error": err.Error()}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"validation_error": err.Error()}))
	}

	resp, err := h.uc.CalculateRoute(c.Context(), req)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			return utils.SendError(c, appErr)
		}
		h.logger.Error("calculate route failed", zap.Error(err))
		return utils.SendError(c, apperrors.ErrInternalServer)
	}

	return c.JSON(resp)
}

// CalculateRouteGeoJSON handles POST /api/v1/calculate_route/geojson,
// the same planning request rendered as a GeoJSON FeatureCollection.
func (h *RouteHandler) CalculateRouteGeoJSON(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"parse_error": err.Error()}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"validation_error": err.Error()}))
	}

	fc, err := h.uc.CalculateRouteGeoJSON(c.Context(), req)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			return utils.SendError(c, appErr)
		}
		h.logger.Error("calculate route geojson failed", zap.Error(err))
		return utils.SendError(c, apperrors.ErrInternalServer)
	}

	return c.JSON(fc)
}
