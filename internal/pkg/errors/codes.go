package errors

import "net/http"

const CodeValidation = "VALIDATION_ERROR"

var (
	ErrValidation = New(
		CodeValidation,
		"Invalid request payload",
		http.StatusBadRequest,
	)

	ErrGeocodeFailed = New(
		"GEOCODE_FAILED",
		"Could not determine coordinates for this location",
		http.StatusBadRequest,
	)

	ErrMissingCoordinates = New(
		"MISSING_COORDINATES",
		"Latitude and longitude are required",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrDatabase = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)
)

// NewValidation builds a field-specific validation error.
func NewValidation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}
