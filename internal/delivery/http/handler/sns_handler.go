package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shrine-functions/internal/pkg/utils"
	"github.com/shrine-functions/internal/usecase"
	"go.uber.org/zap"
)

// SNSHandler - обработчик вызова postToSNS
type SNSHandler struct {
	snsUC  *usecase.SNSUseCase
	logger *zap.Logger
}

func NewSNSHandler(snsUC *usecase.SNSUseCase, logger *zap.Logger) *SNSHandler {
	return &SNSHandler{
		snsUC:  snsUC,
		logger: logger,
	}
}

// PostToSNS godoc
// @Summary Публикация в соцсети (не реализована)
// @Description Всегда возвращает posted=false для всех площадок и ошибку not-implemented.
// @Tags SNS
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{result=domain.PostResult}
// @Router /postToSNS [post]
func (h *SNSHandler) PostToSNS(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.snsUC.Post(c.UserContext()))
}
