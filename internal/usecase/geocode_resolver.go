package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/travelspot-service/internal/domain"
	"github.com/travelspot-service/internal/domain/repository"
)

// geocodeResolver puts the Redis cache in front of the geocoding provider.
// Shared by the ingestion pipeline and the repair pass. Cache faults are
// logged and ignored; the cache never fails a resolution.
type geocodeResolver struct {
	geocoder repository.Geocoder
	cache    repository.CacheRepository
	ttl      time.Duration
	logger   *zap.Logger
}

func newGeocodeResolver(
	geocoder repository.Geocoder,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *geocodeResolver {
	return &geocodeResolver{
		geocoder: geocoder,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

func (r *geocodeResolver) Resolve(ctx context.Context, address string) (*domain.GeoPoint, error) {
	if r.cache != nil {
		point, err := r.cache.GetGeocode(ctx, address)
		if err != nil {
			r.logger.Warn("Geocode cache read failed", zap.Error(err))
		} else if point != nil {
			return point, nil
		}
	}

	point, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}
	if point == nil || !point.Valid() {
		return nil, fmt.Errorf("geocoder returned a malformed point for %q", address)
	}

	if r.cache != nil {
		if err := r.cache.SetGeocode(ctx, address, *point, r.ttl); err != nil {
			r.logger.Warn("Geocode cache write failed", zap.Error(err))
		}
	}
	return point, nil
}
