package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/travelspot-service/internal/config"
	"github.com/travelspot-service/internal/delivery/http/handler"
	"github.com/travelspot-service/internal/delivery/http/middleware"
	apperrors "github.com/travelspot-service/internal/pkg/errors"
	"github.com/travelspot-service/internal/pkg/utils"
)

// Server is the Fiber-based HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	spotHandler   *handler.SpotHandler
	guideHandler  *handler.GuideHandler
	healthHandler *handler.HealthHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	spotHandler *handler.SpotHandler,
	guideHandler *handler.GuideHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "TravelSpot API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: newErrorHandler(logger, cfg.IsDevelopment()),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		spotHandler:   spotHandler,
		guideHandler:  guideHandler,
		healthHandler: healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	api.Get("/health", s.healthHandler.Health)

	// Spot routes
	api.Post("/tourist-info", s.spotHandler.Submit)
	api.Get("/user-spots", s.spotHandler.Nearby)

	// Guide routes
	api.Post("/guides", s.guideHandler.Register)
	api.Get("/guides", s.guideHandler.List)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// newErrorHandler maps application errors onto the wire error envelope.
// Underlying causes are attached only in development.
func newErrorHandler(logger *zap.Logger, dev bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			resp := utils.ErrorResponse{
				Code:    appErr.Code,
				Message: appErr.Message,
				Details: appErr.Details,
			}
			if dev && appErr.Err != nil {
				resp.Error = appErr.Err.Error()
			}

			if appErr.StatusCode >= fiber.StatusInternalServerError {
				logger.Error("Request failed",
					zap.String("path", c.Path()),
					zap.String("code", appErr.Code),
					zap.Error(err),
				)
			}
			return c.Status(appErr.StatusCode).JSON(resp)
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		resp := utils.ErrorResponse{Message: message}
		if dev {
			resp.Error = err.Error()
		}
		return c.Status(code).JSON(resp)
	}
}
