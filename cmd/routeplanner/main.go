package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pipeline-route-engine/internal/config"
	httpDelivery "github.com/pipeline-route-engine/internal/delivery/http"
	"github.com/pipeline-route-engine/internal/delivery/http/handler"
	"github.com/pipeline-route-engine/internal/domain/repository"
	"github.com/pipeline-route-engine/internal/engine"
	"github.com/pipeline-route-engine/internal/pkg/logger"
	"github.com/pipeline-route-engine/internal/repository/cache"
	"github.com/pipeline-route-engine/internal/repository/memcache"
	"github.com/pipeline-route-engine/internal/terrain"
	"github.com/pipeline-route-engine/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("starting pipeline route engine",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	oracle := terrain.New(cfg.Engine.TerrainSeed)
	eng := engine.New(oracle, cfg.Engine.StepDeg)
	log.Info("terrain oracle and search engine initialized", zap.Int64("seed", cfg.Engine.TerrainSeed))

	routeCache := newRouteCache(cfg, log)

	routeUC := usecase.NewRouteUseCase(eng, routeCache, log)
	terrainUC := usecase.NewTerrainUseCase(eng)

	routeHandler := handler.NewRouteHandler(routeUC, log)
	terrainHandler := handler.NewTerrainHandler(terrainUC, log)

	server := httpDelivery.NewServer(cfg, log, routeHandler, terrainHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("address", cfg.GetServerAddr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}

	log.Info("server stopped")
}

// newRouteCache connects to Redis if configured and reachable, falling
// back to an in-process LRU so the planner still serves traffic
// without a cache backend.
func newRouteCache(cfg *config.Config, log *zap.Logger) repository.RouteCacheRepository {
	if cfg.Redis.Host == "" {
		log.Info("no redis host configured, using in-process route cache")
		return memcache.New(0, cfg.Cache.RouteCacheTTL)
	}

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("redis unavailable, falling back to in-process route cache", zap.Error(err))
		return memcache.New(0, cfg.Cache.RouteCacheTTL)
	}

	return cache.NewCacheRepository(redisClient, cfg.Cache.RouteCacheTTL)
}
