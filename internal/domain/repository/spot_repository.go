package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/travelspot-service/internal/domain"
)

// SpotRepository defines persistence for tourist spots.
type SpotRepository interface {
	// Insert stores a new spot as a single atomic document write and returns
	// it with the store-assigned id and timestamps populated.
	Insert(ctx context.Context, spot *domain.Spot) (*domain.Spot, error)

	// FindNearby returns spots within radiusKm of the center, ordered by
	// increasing distance (the spatial index's native ordering).
	FindNearby(ctx context.Context, lat, lon, radiusKm float64, limit int64) ([]*domain.Spot, error)

	// FindSample returns up to limit arbitrary spots with no distance
	// filtering and no ordering guarantee. Serves the degraded query path.
	FindSample(ctx context.Context, limit int64) ([]*domain.Spot, error)

	// FindInvalidLocations scans for documents violating the location
	// invariant: missing type, missing coordinates, or a bare string.
	FindInvalidLocations(ctx context.Context) ([]*domain.InvalidSpot, error)

	// UpdateLocation overwrites a document's location with a well-formed
	// point and bumps its updatedAt.
	UpdateLocation(ctx context.Context, id primitive.ObjectID, point domain.GeoPoint) error

	// Delete removes a document by id.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
