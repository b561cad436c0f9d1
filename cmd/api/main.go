package main

// @title TravelSpot API
// @version 1.0.0
// @description REST API for the TravelSpot travel-discovery frontend.
// @description
// @description Persists user-submitted tourist spots with geocoded GeoJSON
// @description locations, answers nearby-spot queries off a 2dsphere index,
// @description and manages guide registrations.

// @contact.name API Support
// @contact.email support@travelspot.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/travelspot-service/docs"
	"github.com/travelspot-service/internal/config"
	httpDelivery "github.com/travelspot-service/internal/delivery/http"
	"github.com/travelspot-service/internal/delivery/http/handler"
	"github.com/travelspot-service/internal/infrastructure/nominatim"
	"github.com/travelspot-service/internal/pkg/logger"
	"github.com/travelspot-service/internal/repository/cache"
	"github.com/travelspot-service/internal/repository/mongodb"
	"github.com/travelspot-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting TravelSpot API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to MongoDB
	db, err := mongodb.New(&cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Error("Failed to close MongoDB connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("MongoDB health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and the geocoder
	spotRepo := mongodb.NewSpotRepository(db)
	guideRepo := mongodb.NewGuideRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	geocoder := nominatim.NewClient(&cfg.Geocoder, log)

	log.Info("Repositories initialized")

	// 7. Repair invalid documents BEFORE building indexes or serving
	// traffic: a malformed location document can break the spatial index.
	cleanupUC := usecase.NewCleanupUseCase(spotRepo, geocoder, cacheRepo, log, cfg.Cache.GeocodeTTL)

	repairCtx, repairCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if _, err := cleanupUC.Repair(repairCtx); err != nil {
		log.Error("Repair pass failed, continuing startup", zap.Error(err))
	}
	repairCancel()

	// 8. Build indexes and the guide collection schema
	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer schemaCancel()

	if err := mongodb.EnsureSpotIndexes(schemaCtx, db); err != nil {
		log.Fatal("Failed to create spot indexes", zap.Error(err))
	}
	if err := mongodb.EnsureGuideSchema(schemaCtx, db); err != nil {
		log.Fatal("Failed to install guide schema", zap.Error(err))
	}

	// 9. Initialize use cases
	spotUC := usecase.NewSpotUseCase(spotRepo, geocoder, cacheRepo, log, cfg.Cache.GeocodeTTL)
	proximityUC := usecase.NewProximityUseCase(spotRepo, log)
	guideUC := usecase.NewGuideUseCase(guideRepo, log)

	log.Info("Use cases initialized")

	// 10. Initialize HTTP handlers and server
	spotHandler := handler.NewSpotHandler(spotUC, proximityUC, log)
	guideHandler := handler.NewGuideHandler(guideUC, log)
	healthHandler := handler.NewHealthHandler(db, log)

	server := httpDelivery.NewServer(
		cfg,
		log,
		spotHandler,
		guideHandler,
		healthHandler,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
