package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/shrine-functions/internal/config"
	"github.com/shrine-functions/internal/delivery/http/handler"
	"github.com/shrine-functions/internal/delivery/http/middleware"
	"github.com/shrine-functions/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер вызываемых функций на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	shrineHandler  *handler.ShrineHandler
	captionHandler *handler.CaptionHandler
	snsHandler     *handler.SNSHandler
	healthHandler  *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	shrineHandler *handler.ShrineHandler,
	captionHandler *handler.CaptionHandler,
	snsHandler *handler.SNSHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Shrine Functions",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		shrineHandler:  shrineHandler,
		captionHandler: captionHandler,
		snsHandler:     snsHandler,
		healthHandler:  healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/health", s.healthHandler.Health)

	// Callable functions
	s.app.Post("/detectShrine", s.shrineHandler.DetectShrine)
	s.app.Post("/generateCaptions", s.captionHandler.GenerateCaptions)
	s.app.Post("/postToSNS", s.snsHandler.PostToSNS)
}

// App exposes the underlying fiber app for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler отвечает в формате вызываемых функций
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			status := "INTERNAL"
			switch fiberErr.Code {
			case fiber.StatusNotFound:
				status = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				status = "UNIMPLEMENTED"
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
				status = "INVALID_ARGUMENT"
			}
			return c.Status(fiberErr.Code).JSON(utils.ErrorResponse{
				Error: utils.ErrorBody{Status: status, Message: fiberErr.Message},
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
