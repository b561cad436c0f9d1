package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/travelspot-service/internal/pkg/errors"
	"github.com/travelspot-service/internal/pkg/utils"
	"github.com/travelspot-service/internal/usecase"
	"github.com/travelspot-service/internal/usecase/dto"
)

// SpotHandler serves spot submission and the nearby-spots query.
type SpotHandler struct {
	spotUC      *usecase.SpotUseCase
	proximityUC *usecase.ProximityUseCase
	logger      *zap.Logger
}

func NewSpotHandler(
	spotUC *usecase.SpotUseCase,
	proximityUC *usecase.ProximityUseCase,
	logger *zap.Logger,
) *SpotHandler {
	return &SpotHandler{
		spotUC:      spotUC,
		proximityUC: proximityUC,
		logger:      logger,
	}
}

// Submit godoc
// @Summary Submit a tourist spot
// @Description Validates the submission, geocodes the free-text address and stores the spot with a GeoJSON point location. Nothing is stored when the address cannot be resolved.
// @Tags Tourist Spots
// @Accept json
// @Produce json
// @Param request body dto.SubmitSpotRequest true "Spot submission"
// @Success 201 {object} utils.SuccessResponse{data=dto.SpotResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /tourist-info [post]
func (h *SpotHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Invalid request body").WithCause(err)
	}

	spot, err := h.spotUC.Submit(c.Context(), req)
	if err != nil {
		return err
	}

	return utils.SendCreated(c, "Tourist information saved successfully", spot)
}

// Nearby godoc
// @Summary Spots near a coordinate
// @Description Returns up to 50 spots within the radius, closest first. When the spatial index is unavailable the response carries an unfiltered sample flagged degraded.
// @Tags Tourist Spots
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Param radius query number false "Search radius in kilometers (default 10, capped at 100)"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.SpotResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /user-spots [get]
func (h *SpotHandler) Nearby(c *fiber.Ctx) error {
	var req dto.NearbyRequest
	if err := c.QueryParser(&req); err != nil {
		return apperrors.NewValidation("Invalid query parameters").WithCause(err)
	}

	result, err := h.proximityUC.Nearby(c.Context(), req)
	if err != nil {
		return err
	}

	return utils.SendNearby(c, len(result.Spots), result.Degraded, result.Spots)
}
