package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - всё, что умеет проверить своё соединение
type HealthChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	store  HealthChecker
	logger *zap.Logger
}

func NewHealthHandler(store HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

// Health godoc
// @Summary Проверка состояния
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.store.Health(ctx); err != nil {
		h.logger.Warn("Store health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"time":   time.Now(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}
