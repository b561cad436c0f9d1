package repository

import (
	"context"

	"github.com/travelspot-service/internal/domain"
)

// GuideRepository defines persistence for guide registrations.
type GuideRepository interface {
	// Insert stores a new guide. Age range and gender enum are enforced by
	// the collection schema; violations surface as store errors.
	Insert(ctx context.Context, guide *domain.Guide) (*domain.Guide, error)

	// FindAll returns every registered guide, unordered and unpaginated.
	FindAll(ctx context.Context) ([]*domain.Guide, error)
}
