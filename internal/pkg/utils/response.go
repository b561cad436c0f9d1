package utils

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse is the envelope every successful endpoint returns.
// Count and Degraded are only present on collection endpoints.
type SuccessResponse struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Count    *int        `json:"count,omitempty"`
	Degraded *bool       `json:"degraded,omitempty"`
	Data     interface{} `json:"data"`
}

// ErrorResponse is the envelope for failures. Error carries the underlying
// cause and is only populated in development.
type ErrorResponse struct {
	Success bool                   `json:"success"`
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// SendCreated writes a 201 with a confirmation message.
func SendCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendCollection writes a 200 envelope with a result count.
func SendCollection(c *fiber.Ctx, count int, data interface{}) error {
	return c.JSON(SuccessResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// SendNearby writes a 200 envelope with count and the degraded-precision
// marker, so callers can distinguish indexed results from the fallback
// sample.
func SendNearby(c *fiber.Ctx, count int, degraded bool, data interface{}) error {
	return c.JSON(SuccessResponse{
		Success:  true,
		Count:    &count,
		Degraded: &degraded,
		Data:     data,
	})
}
