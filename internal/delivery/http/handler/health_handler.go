package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DatabasePinger is the slice of the database connection the health check
// needs.
type DatabasePinger interface {
	Health(ctx context.Context) error
}

// HealthResponse mirrors what the frontend polls for.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthHandler struct {
	db     DatabasePinger
	logger *zap.Logger
}

func NewHealthHandler(db DatabasePinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Health godoc
// @Summary Service health
// @Description Always answers 200; database connectivity is reported in the body.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	database := "Connected"
	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("Database health check failed", zap.Error(err))
		database = "Disconnected"
	}

	return c.JSON(HealthResponse{
		Status:    "Healthy",
		Database:  database,
		Timestamp: time.Now().UTC(),
	})
}
