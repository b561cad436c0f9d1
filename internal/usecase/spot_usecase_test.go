package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/travelspot-service/internal/domain"
	apperrors "github.com/travelspot-service/internal/pkg/errors"
	"github.com/travelspot-service/internal/usecase"
	"github.com/travelspot-service/internal/usecase/dto"
)

func validSubmission() dto.SubmitSpotRequest {
	return dto.SubmitSpotRequest{
		Name:               "Tea House",
		Location:           "Munnar, Kerala",
		PreferredTransport: "car",
		PreferredTime:      "morning",
		Interests:          []string{"April-July"},
	}
}

func TestSpotUseCase_Submit(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	munnar := domain.NewPoint(77.0595, 10.0889)

	t.Run("valid submission is geocoded and persisted", func(t *testing.T) {
		mockRepo := &MockSpotRepository{}
		mockGeo := &MockGeocoder{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockRepo, mockGeo, mockCache, logger, time.Hour)

		mockCache.On("GetGeocode", ctx, "Munnar, Kerala").Return(nil, nil)
		mockGeo.On("Geocode", ctx, "Munnar, Kerala").Return(&munnar, nil)
		mockCache.On("SetGeocode", ctx, "Munnar, Kerala", munnar, time.Hour).Return(nil)

		now := time.Now().UTC()
		saved := &domain.Spot{
			ID:                 primitive.NewObjectID(),
			Name:               "Tea House",
			Location:           munnar,
			PreferredTransport: domain.TransportCar,
			PreferredTime:      domain.TimeMorning,
			Interests:          []string{"April-July"},
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		mockRepo.On("Insert", ctx, mock.MatchedBy(func(s *domain.Spot) bool {
			return s.Name == "Tea House" && s.Location.Valid() && len(s.Location.Coordinates) == 2
		})).Return(saved, nil)

		resp, err := uc.Submit(ctx, validSubmission())
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, saved.ID.Hex(), resp.ID)
		assert.Equal(t, "Point", resp.Location.Type)
		assert.InDelta(t, 77.0595, resp.Location.Coordinates[0], 0.001)
		assert.InDelta(t, 10.0889, resp.Location.Coordinates[1], 0.001)

		mockRepo.AssertExpectations(t)
		mockGeo.AssertExpectations(t)
	})

	t.Run("missing name rejected before any IO", func(t *testing.T) {
		mockRepo := &MockSpotRepository{}
		mockGeo := &MockGeocoder{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockRepo, mockGeo, mockCache, logger, time.Hour)

		req := validSubmission()
		req.Name = ""

		resp, err := uc.Submit(ctx, req)
		assert.Nil(t, resp)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		assert.Equal(t, 400, appErr.StatusCode)

		mockGeo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("whitespace-only name rejected", func(t *testing.T) {
		mockRepo := &MockSpotRepository{}
		mockGeo := &MockGeocoder{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockRepo, mockGeo, mockCache, logger, time.Hour)

		req := validSubmission()
		req.Name = "   "

		_, err := uc.Submit(ctx, req)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		mockGeo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("others transport requires otherTransport", func(t *testing.T) {
		mockRepo := &MockSpotRepository{}
		mockGeo := &MockGeocoder{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockRepo, mockGeo, mockCache, logger, time.Hour)

		req := validSubmission()
		req.PreferredTransport = "others"
		req.OtherTransport = ""

		_, err := uc.Submit(ctx, req)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("invalid transport enum rejected", func(t *testing.T) {
		mockRepo := &MockSpotRepository{}
		mockGeo := &MockGeocoder{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockRepo, mockGeo, mockCache, logger, time.Hour)

		req := validSubmission()
		req.PreferredTransport = "teleport"

		_, err := uc.Submit(ctx, req)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	})

	t.Run("unresolvable address is a 400 and nothing is written", func(t *testing.T) {
		mockRepo := &MockSpotRepository{}
		mockGeo := &MockGeocoder{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockRepo, mockGeo, mockCache, logger, time.Hour)

		req := validSubmission()
		req.Location = "qwertyuiop nowhere"

		mockCache.On("GetGeocode", ctx, "qwertyuiop nowhere").Return(nil, nil)
		mockGeo.On("Geocode", ctx, "qwertyuiop nowhere").Return(nil, domain.ErrAddressNotFound)

		resp, err := uc.Submit(ctx, req)
		assert.Nil(t, resp)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "GEOCODE_FAILED", appErr.Code)
		assert.Equal(t, 400, appErr.StatusCode)

		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("store failure surfaces as database error", func(t *testing.T) {
		mockRepo := &MockSpotRepository{}
		mockGeo := &MockGeocoder{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockRepo, mockGeo, mockCache, logger, time.Hour)

		mockCache.On("GetGeocode", ctx, "Munnar, Kerala").Return(nil, nil)
		mockGeo.On("Geocode", ctx, "Munnar, Kerala").Return(&munnar, nil)
		mockCache.On("SetGeocode", ctx, "Munnar, Kerala", munnar, time.Hour).Return(nil)
		mockRepo.On("Insert", ctx, mock.Anything).Return(nil, errors.New("connection reset"))

		_, err := uc.Submit(ctx, validSubmission())

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DATABASE_ERROR", appErr.Code)
		assert.Equal(t, 500, appErr.StatusCode)
	})

	t.Run("cache hit skips the provider", func(t *testing.T) {
		mockRepo := &MockSpotRepository{}
		mockGeo := &MockGeocoder{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockRepo, mockGeo, mockCache, logger, time.Hour)

		mockCache.On("GetGeocode", ctx, "Munnar, Kerala").Return(&munnar, nil)
		saved := &domain.Spot{ID: primitive.NewObjectID(), Name: "Tea House", Location: munnar}
		mockRepo.On("Insert", ctx, mock.Anything).Return(saved, nil)

		_, err := uc.Submit(ctx, validSubmission())
		require.NoError(t, err)

		mockGeo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("otherTransport cleared for non-others transport", func(t *testing.T) {
		mockRepo := &MockSpotRepository{}
		mockGeo := &MockGeocoder{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockRepo, mockGeo, mockCache, logger, time.Hour)

		req := validSubmission()
		req.OtherTransport = "hot air balloon"

		mockCache.On("GetGeocode", ctx, "Munnar, Kerala").Return(&munnar, nil)
		saved := &domain.Spot{ID: primitive.NewObjectID(), Location: munnar}
		mockRepo.On("Insert", ctx, mock.MatchedBy(func(s *domain.Spot) bool {
			return s.OtherTransport == ""
		})).Return(saved, nil)

		_, err := uc.Submit(ctx, req)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
