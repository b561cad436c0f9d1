package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/travelspot-service/internal/config"
	"github.com/travelspot-service/internal/domain/repository"
	"github.com/travelspot-service/internal/infrastructure/nominatim"
	"github.com/travelspot-service/internal/pkg/logger"
	"github.com/travelspot-service/internal/repository/cache"
	"github.com/travelspot-service/internal/repository/mongodb"
	"github.com/travelspot-service/internal/usecase"
)

// Standalone runner for the document repair pass. Useful for fixing a
// collection without restarting the API. Do not run two instances against
// the same database at once.
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

	log.Info("Starting spot document repair pass")

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

	// 4. Connect to Redis (geocode cache); optional for this tool
	var cacheRepo repository.CacheRepository
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, repairing without geocode cache", zap.Error(err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	// 5. Run the pass
	spotRepo := mongodb.NewSpotRepository(db)
	geocoder := nominatim.NewClient(&cfg.Geocoder, log)

	cleanupUC := usecase.NewCleanupUseCase(
		spotRepo,
		geocoder,
		cacheRepo,
		log,
		cfg.Cache.GeocodeTTL,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	report, err := cleanupUC.Repair(ctx)
	if err != nil {
		log.Fatal("Repair pass failed", zap.Error(err))
	}

	log.Info("Repair pass complete",
		zap.Int("scanned", report.Scanned),
		zap.Int("repaired", report.Repaired),
		zap.Int("deleted", report.Deleted),
		zap.Int("failed", report.Failed),
	)
}
