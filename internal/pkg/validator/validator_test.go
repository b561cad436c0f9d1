package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/travelspot-service/internal/pkg/errors"
)

type sampleRequest struct {
	Name      string `json:"name" validate:"required"`
	Transport string `json:"preferredTransport" validate:"required,oneof=train flight car others"`
	Other     string `json:"otherTransport" validate:"required_if=Transport others"`
	Email     string `json:"email" validate:"omitempty,email"`
}

func TestValidate(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		err := Validate(&sampleRequest{Name: "Tea House", Transport: "car"})
		assert.NoError(t, err)
	})

	t.Run("failures map wire field names to rules", func(t *testing.T) {
		err := Validate(&sampleRequest{Transport: "teleport", Email: "not-an-email"})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		assert.Equal(t, 400, appErr.StatusCode)

		assert.Equal(t, "required", appErr.Details["name"])
		assert.Equal(t, "oneof", appErr.Details["preferredTransport"])
		assert.Equal(t, "email", appErr.Details["email"])
	})

	t.Run("conditional requirement enforced", func(t *testing.T) {
		err := Validate(&sampleRequest{Name: "Ferry Point", Transport: "others"})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "required_if", appErr.Details["otherTransport"])
	})

	t.Run("sentinel error is not mutated", func(t *testing.T) {
		_ = Validate(&sampleRequest{})
		assert.Nil(t, apperrors.ErrValidation.Details)
	})
}
