package repository

import (
	"context"
	"time"

	"github.com/travelspot-service/internal/domain"
)

// CacheRepository defines the cache used in front of the geocoding provider.
// A (nil, nil) return means cache miss.
type CacheRepository interface {
	// GetGeocode returns the cached point for an address, nil on miss.
	GetGeocode(ctx context.Context, address string) (*domain.GeoPoint, error)

	// SetGeocode caches a resolved point for an address.
	SetGeocode(ctx context.Context, address string, point domain.GeoPoint, ttl time.Duration) error
}
