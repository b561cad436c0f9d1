package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/travelspot-service/internal/domain"
	"github.com/travelspot-service/internal/domain/repository"
	apperrors "github.com/travelspot-service/internal/pkg/errors"
	"github.com/travelspot-service/internal/pkg/validator"
	"github.com/travelspot-service/internal/usecase/dto"
)

// GuideUseCase handles guide registration and listing. Only field presence
// is checked here; the age range and gender enum live in the collection
// schema, so violations surface as store errors, not validation errors.
type GuideUseCase struct {
	guideRepo repository.GuideRepository
	logger    *zap.Logger
}

func NewGuideUseCase(
	guideRepo repository.GuideRepository,
	logger *zap.Logger,
) *GuideUseCase {
	return &GuideUseCase{
		guideRepo: guideRepo,
		logger:    logger,
	}
}

func (uc *GuideUseCase) Register(ctx context.Context, req dto.RegisterGuideRequest) (*dto.GuideResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	guide := &domain.Guide{
		Name:     req.Name,
		Age:      req.Age,
		Gender:   domain.Gender(req.Gender),
		Location: req.Location,
		Mobile:   req.Mobile,
		Email:    req.Email,
	}

	saved, err := uc.guideRepo.Insert(ctx, guide)
	if err != nil {
		uc.logger.Error("Failed to register guide", zap.Error(err))
		return nil, apperrors.ErrDatabase.WithCause(err)
	}

	uc.logger.Info("Guide registered",
		zap.String("id", saved.ID.Hex()),
		zap.String("name", saved.Name),
	)
	return dto.NewGuideResponse(saved), nil
}

func (uc *GuideUseCase) List(ctx context.Context) ([]*dto.GuideResponse, error) {
	guides, err := uc.guideRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list guides", zap.Error(err))
		return nil, apperrors.ErrDatabase.WithCause(err)
	}
	return dto.NewGuideResponses(guides), nil
}
