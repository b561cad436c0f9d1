package usecase_test

import (
	"context"
	"errors"
	"testing"

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

func validGuideRequest() dto.RegisterGuideRequest {
	return dto.RegisterGuideRequest{
		Name:     "Anita Menon",
		Age:      34,
		Gender:   "Female",
		Location: "Kochi",
		Mobile:   "+91 9000000000",
		Email:    "anita@example.com",
	}
}

func TestGuideUseCase_Register(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("valid guide is persisted", func(t *testing.T) {
		mockRepo := &MockGuideRepository{}
		uc := usecase.NewGuideUseCase(mockRepo, logger)

		saved := &domain.Guide{
			ID:       primitive.NewObjectID(),
			Name:     "Anita Menon",
			Age:      34,
			Gender:   domain.GenderFemale,
			Location: "Kochi",
			Mobile:   "+91 9000000000",
			Email:    "anita@example.com",
		}
		mockRepo.On("Insert", ctx, mock.MatchedBy(func(g *domain.Guide) bool {
			return g.Name == "Anita Menon" && g.Age == 34 && g.Gender == domain.GenderFemale
		})).Return(saved, nil)

		resp, err := uc.Register(ctx, validGuideRequest())
		require.NoError(t, err)
		assert.Equal(t, saved.ID.Hex(), resp.ID)
		assert.Equal(t, "Anita Menon", resp.Name)

		mockRepo.AssertExpectations(t)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		mockRepo := &MockGuideRepository{}
		uc := usecase.NewGuideUseCase(mockRepo, logger)

		req := validGuideRequest()
		req.Email = ""
		req.Mobile = ""

		_, err := uc.Register(ctx, req)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		assert.Contains(t, appErr.Details, "email")
		assert.Contains(t, appErr.Details, "mobile")

		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("store rejection surfaces as database error", func(t *testing.T) {
		mockRepo := &MockGuideRepository{}
		uc := usecase.NewGuideUseCase(mockRepo, logger)

		// Schema-level rules (age range, gender enum) are enforced by the
		// collection validator, so a 15-year-old fails at the store.
		req := validGuideRequest()
		req.Age = 15

		mockRepo.On("Insert", ctx, mock.Anything).Return(nil, errors.New("Document failed validation"))

		_, err := uc.Register(ctx, req)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DATABASE_ERROR", appErr.Code)
		assert.Equal(t, 500, appErr.StatusCode)
	})
}

func TestGuideUseCase_List(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns all guides", func(t *testing.T) {
		mockRepo := &MockGuideRepository{}
		uc := usecase.NewGuideUseCase(mockRepo, logger)

		guides := []*domain.Guide{
			{ID: primitive.NewObjectID(), Name: "Anita Menon", Age: 34, Gender: domain.GenderFemale},
			{ID: primitive.NewObjectID(), Name: "Ravi Nair", Age: 41, Gender: domain.GenderMale},
		}
		mockRepo.On("FindAll", ctx).Return(guides, nil)

		resp, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Ravi Nair", resp[1].Name)
	})

	t.Run("empty collection yields empty slice", func(t *testing.T) {
		mockRepo := &MockGuideRepository{}
		uc := usecase.NewGuideUseCase(mockRepo, logger)

		mockRepo.On("FindAll", ctx).Return([]*domain.Guide{}, nil)

		resp, err := uc.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("store failure surfaces as database error", func(t *testing.T) {
		mockRepo := &MockGuideRepository{}
		uc := usecase.NewGuideUseCase(mockRepo, logger)

		mockRepo.On("FindAll", ctx).Return(nil, errors.New("connection lost"))

		_, err := uc.List(ctx)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DATABASE_ERROR", appErr.Code)
	})
}
