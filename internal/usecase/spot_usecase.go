package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/travelspot-service/internal/domain"
	"github.com/travelspot-service/internal/domain/repository"
	apperrors "github.com/travelspot-service/internal/pkg/errors"
	"github.com/travelspot-service/internal/pkg/validator"
	"github.com/travelspot-service/internal/usecase/dto"
)

// SpotUseCase runs the spot ingestion pipeline:
// validate -> geocode -> single atomic insert.
type SpotUseCase struct {
	spotRepo repository.SpotRepository
	resolver *geocodeResolver
	logger   *zap.Logger
}

func NewSpotUseCase(
	spotRepo repository.SpotRepository,
	geocoder repository.Geocoder,
	cache repository.CacheRepository,
	logger *zap.Logger,
	geocodeTTL time.Duration,
) *SpotUseCase {
	return &SpotUseCase{
		spotRepo: spotRepo,
		resolver: newGeocodeResolver(geocoder, cache, geocodeTTL, logger),
		logger:   logger,
	}
}

// Submit validates a submission, geocodes its address, and persists the
// spot. Nothing is written unless the address resolves: a spot never reaches
// the store with a string-typed location.
func (uc *SpotUseCase) Submit(ctx context.Context, req dto.SubmitSpotRequest) (*dto.SpotResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidation("Name is required")
	}
	address := strings.TrimSpace(req.Location)
	if address == "" {
		return nil, apperrors.NewValidation("Location is required")
	}
	transport := domain.TransportMode(req.PreferredTransport)
	otherTransport := strings.TrimSpace(req.OtherTransport)
	if transport == domain.TransportOthers && otherTransport == "" {
		return nil, apperrors.NewValidation("Other transport is required when preferred transport is others")
	}
	if transport != domain.TransportOthers {
		otherTransport = ""
	}

	point, err := uc.resolver.Resolve(ctx, address)
	if err != nil {
		if errors.Is(err, domain.ErrAddressNotFound) {
			uc.logger.Debug("Address could not be resolved",
				zap.String("address", address),
			)
			return nil, apperrors.ErrGeocodeFailed
		}
		uc.logger.Error("Geocoding failed",
			zap.String("address", address),
			zap.Error(err),
		)
		return nil, apperrors.ErrGeocodeFailed.WithCause(err)
	}

	spot := &domain.Spot{
		Name:               name,
		Location:           *point,
		PreferredTransport: transport,
		OtherTransport:     otherTransport,
		PreferredTime:      domain.TimeOfDay(req.PreferredTime),
		Interests:          req.Interests,
		AdditionalNotes:    req.AdditionalNotes,
	}

	saved, err := uc.spotRepo.Insert(ctx, spot)
	if err != nil {
		uc.logger.Error("Failed to save spot", zap.Error(err))
		return nil, apperrors.ErrDatabase.WithCause(err)
	}

	uc.logger.Info("Spot submitted",
		zap.String("id", saved.ID.Hex()),
		zap.String("name", saved.Name),
	)
	return dto.NewSpotResponse(saved), nil
}
