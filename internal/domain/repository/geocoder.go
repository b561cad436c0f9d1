package repository

import (
	"context"

	"github.com/travelspot-service/internal/domain"
)

// Geocoder resolves a free-text address into a geographic point.
// A provider match count of zero is reported as domain.ErrAddressNotFound.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*domain.GeoPoint, error)
}
