package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/travelspot-service/internal/pkg/errors"
	"github.com/travelspot-service/internal/pkg/utils"
	"github.com/travelspot-service/internal/usecase"
	"github.com/travelspot-service/internal/usecase/dto"
)

// GuideHandler serves guide registration and listing.
type GuideHandler struct {
	guideUC *usecase.GuideUseCase
	logger  *zap.Logger
}

func NewGuideHandler(guideUC *usecase.GuideUseCase, logger *zap.Logger) *GuideHandler {
	return &GuideHandler{
		guideUC: guideUC,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a guide
// @Description Registers a guide. The age range and gender enum are enforced by the collection schema.
// @Tags Guides
// @Accept json
// @Produce json
// @Param request body dto.RegisterGuideRequest true "Guide registration"
// @Success 201 {object} utils.SuccessResponse{data=dto.GuideResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /guides [post]
func (h *GuideHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Invalid request body").WithCause(err)
	}

	guide, err := h.guideUC.Register(c.Context(), req)
	if err != nil {
		return err
	}

	return utils.SendCreated(c, "Guide registered successfully", guide)
}

// List godoc
// @Summary List registered guides
// @Tags Guides
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.GuideResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /guides [get]
func (h *GuideHandler) List(c *fiber.Ctx) error {
	guides, err := h.guideUC.List(c.Context())
	if err != nil {
		return err
	}

	return utils.SendCollection(c, len(guides), guides)
}
