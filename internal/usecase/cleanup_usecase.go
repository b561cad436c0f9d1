package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/travelspot-service/internal/domain"
	"github.com/travelspot-service/internal/domain/repository"
	apperrors "github.com/travelspot-service/internal/pkg/errors"
)

// RepairReport summarizes one run of the repair pass.
type RepairReport struct {
	Scanned  int
	Repaired int
	Deleted  int
	Failed   int
}

// CleanupUseCase repairs documents that violate the location invariant.
// It must run before the spatial index is (re)built and before query
// traffic: one malformed document can break indexed queries for all.
// Not safe to run concurrently with itself; run once at process start.
type CleanupUseCase struct {
	spotRepo repository.SpotRepository
	resolver *geocodeResolver
	logger   *zap.Logger
}

func NewCleanupUseCase(
	spotRepo repository.SpotRepository,
	geocoder repository.Geocoder,
	cache repository.CacheRepository,
	logger *zap.Logger,
	geocodeTTL time.Duration,
) *CleanupUseCase {
	return &CleanupUseCase{
		spotRepo: spotRepo,
		resolver: newGeocodeResolver(geocoder, cache, geocodeTTL, logger),
		logger:   logger,
	}
}

// Repair scans for invalid documents and fixes or removes them. String
// locations are re-geocoded and upgraded to points when the address still
// resolves, deleted when it does not; anything else malformed is deleted.
// Per-document failures are logged and skipped, never aborting the pass.
// Idempotent: a second run finds nothing left to do.
func (uc *CleanupUseCase) Repair(ctx context.Context) (*RepairReport, error) {
	invalid, err := uc.spotRepo.FindInvalidLocations(ctx)
	if err != nil {
		return nil, apperrors.ErrDatabase.WithCause(err)
	}

	report := &RepairReport{Scanned: len(invalid)}
	if len(invalid) == 0 {
		uc.logger.Info("No invalid spot documents found")
		return report, nil
	}

	uc.logger.Info("Found invalid spot documents to clean up",
		zap.Int("count", len(invalid)),
	)

	for _, doc := range invalid {
		if doc.HasLegacyAddress {
			uc.repairLegacyDocument(ctx, doc, report)
			continue
		}

		// Neither a valid point nor a recoverable string: discard.
		if err := uc.spotRepo.Delete(ctx, doc.ID); err != nil {
			uc.logger.Error("Failed to delete malformed document",
				zap.String("id", doc.ID.Hex()),
				zap.Error(err),
			)
			report.Failed++
			continue
		}
		uc.logger.Info("Deleted malformed document", zap.String("id", doc.ID.Hex()))
		report.Deleted++
	}

	uc.logger.Info("Repair pass finished",
		zap.Int("scanned", report.Scanned),
		zap.Int("repaired", report.Repaired),
		zap.Int("deleted", report.Deleted),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (uc *CleanupUseCase) repairLegacyDocument(ctx context.Context, doc *domain.InvalidSpot, report *RepairReport) {
	point, err := uc.resolver.Resolve(ctx, doc.LegacyAddress)
	if err != nil {
		if errors.Is(err, domain.ErrAddressNotFound) {
			// The address no longer resolves; the document cannot be placed.
			if derr := uc.spotRepo.Delete(ctx, doc.ID); derr != nil {
				uc.logger.Error("Failed to delete unresolvable document",
					zap.String("id", doc.ID.Hex()),
					zap.Error(derr),
				)
				report.Failed++
				return
			}
			uc.logger.Info("Deleted unresolvable document",
				zap.String("id", doc.ID.Hex()),
				zap.String("address", doc.LegacyAddress),
			)
			report.Deleted++
			return
		}

		// Transient failure (provider or network): keep the document for the
		// next run rather than destroying data on an outage.
		uc.logger.Error("Failed to geocode legacy address, skipping document",
			zap.String("id", doc.ID.Hex()),
			zap.String("address", doc.LegacyAddress),
			zap.Error(err),
		)
		report.Failed++
		return
	}

	if err := uc.spotRepo.UpdateLocation(ctx, doc.ID, *point); err != nil {
		uc.logger.Error("Failed to update document location",
			zap.String("id", doc.ID.Hex()),
			zap.Error(err),
		)
		report.Failed++
		return
	}

	uc.logger.Info("Repaired document location",
		zap.String("id", doc.ID.Hex()),
		zap.String("address", doc.LegacyAddress),
	)
	report.Repaired++
}
