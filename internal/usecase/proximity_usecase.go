package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/travelspot-service/internal/domain/repository"
	apperrors "github.com/travelspot-service/internal/pkg/errors"
	"github.com/travelspot-service/internal/pkg/utils"
	"github.com/travelspot-service/internal/usecase/dto"
)

const (
	nearbyLimit     = 50
	defaultRadiusKm = 10.0
)

// ProximityUseCase serves the nearby-spots query. When the indexed query
// fails it falls back to an unfiltered sample, tagging the result as
// degraded so callers can tell approximate from exact.
type ProximityUseCase struct {
	spotRepo repository.SpotRepository
	logger   *zap.Logger
}

func NewProximityUseCase(
	spotRepo repository.SpotRepository,
	logger *zap.Logger,
) *ProximityUseCase {
	return &ProximityUseCase{
		spotRepo: spotRepo,
		logger:   logger,
	}
}

func (uc *ProximityUseCase) Nearby(ctx context.Context, req dto.NearbyRequest) (*dto.NearbyResult, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, apperrors.ErrMissingCoordinates
	}
	lat, lon := *req.Latitude, *req.Longitude

	if !utils.ValidateCoordinates(lat, lon) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	radius := req.RadiusKm
	if radius == 0 {
		radius = defaultRadiusKm
	}
	// Oversized radii are clamped, not rejected; only nonsensical values
	// turn the caller away.
	radius, ok := utils.ClampRadius(radius)
	if !ok {
		return nil, apperrors.ErrInvalidRadius
	}

	spots, err := uc.spotRepo.FindNearby(ctx, lat, lon, radius, nearbyLimit)
	if err == nil {
		return &dto.NearbyResult{Spots: dto.NewSpotResponses(spots)}, nil
	}

	uc.logger.Warn("Geospatial query failed, falling back to unfiltered sample",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Float64("radius_km", radius),
		zap.Error(err),
	)

	sample, sampleErr := uc.spotRepo.FindSample(ctx, nearbyLimit)
	if sampleErr != nil {
		uc.logger.Error("Fallback sample query failed", zap.Error(sampleErr))
		return nil, apperrors.ErrDatabase.WithCause(sampleErr)
	}

	return &dto.NearbyResult{
		Spots:          dto.NewSpotResponses(sample),
		Degraded:       true,
		DegradedReason: "geospatial index unavailable",
	}, nil
}
