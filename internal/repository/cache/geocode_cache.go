package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/travelspot-service/internal/domain"
	"github.com/travelspot-service/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

func (r *cacheRepository) get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// geocodeKey normalizes the address so trivially different spellings share a
// cache entry.
func geocodeKey(address string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(address)), " ")
	return "geocode:" + normalized
}

func (r *cacheRepository) GetGeocode(ctx context.Context, address string) (*domain.GeoPoint, error) {
	data, err := r.get(ctx, geocodeKey(address))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var point domain.GeoPoint
	if err := json.Unmarshal(data, &point); err != nil {
		r.logger.Error("Failed to unmarshal cached geocode", zap.Error(err))
		return nil, fmt.Errorf("unmarshal geocode: %w", err)
	}
	if !point.Valid() {
		// Never serve a malformed point out of the cache.
		return nil, nil
	}
	return &point, nil
}

func (r *cacheRepository) SetGeocode(ctx context.Context, address string, point domain.GeoPoint, ttl time.Duration) error {
	data, err := json.Marshal(point)
	if err != nil {
		r.logger.Error("Failed to marshal geocode", zap.Error(err))
		return fmt.Errorf("marshal geocode: %w", err)
	}

	return r.set(ctx, geocodeKey(address), data, ttl)
}
