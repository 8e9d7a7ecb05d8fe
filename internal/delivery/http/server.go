package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/pipeline-route-engine/internal/config"
	"github.com/pipeline-route-engine/internal/delivery/http/handler"
	"github.com/pipeline-route-engine/internal/delivery/http/middleware"
	"github.com/pipeline-route-engine/internal/metrics"
	"go.uber.org/zap"
)

// Server is the Fiber-based HTTP server exposing route planning and
// terrain exploration.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	routeHandler   *handler.RouteHandler
	terrainHandler *handler.TerrainHandler
}

// NewServer builds a Server around its handlers, wiring middleware and
// routes but not yet listening.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routeHandler *handler.RouteHandler,
	terrainHandler *handler.TerrainHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Pipeline Route Engine",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		routeHandler:   routeHandler,
		terrainHandler: terrainHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/calculate_route", s.routeHandler.CalculateRoute)
	api.Post("/calculate_route/geojson", s.routeHandler.CalculateRouteGeoJSON)
	api.Get("/terrain", s.terrainHandler.GetTerrain)
	api.Get("/terrain/geojson", s.terrainHandler.GetTerrainGeoJSON)

	if s.config.Metrics.Enabled {
		path := s.config.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		s.app.Get(path, adaptor.HTTPHandler(metrics.Handler()))
	}
}

// Start begins listening on the configured address.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("unhandled http error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
}
