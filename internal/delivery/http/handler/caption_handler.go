package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shrine-functions/internal/pkg/errors"
	"github.com/shrine-functions/internal/pkg/utils"
	"github.com/shrine-functions/internal/pkg/validator"
	"github.com/shrine-functions/internal/usecase"
	"github.com/shrine-functions/internal/usecase/dto"
	"go.uber.org/zap"
)

// CaptionHandler - обработчик вызова generateCaptions
type CaptionHandler struct {
	captionUC *usecase.CaptionUseCase
	logger    *zap.Logger
}

func NewCaptionHandler(captionUC *usecase.CaptionUseCase, logger *zap.Logger) *CaptionHandler {
	return &CaptionHandler{
		captionUC: captionUC,
		logger:    logger,
	}
}

// GenerateCaptions godoc
// @Summary Подписи для соцсетей
// @Description Собирает подписи для Instagram, X и Threads по названию святилища, тексту и отметке о госюине. Подпись для X обрезается до 280 символов.
// @Tags Captions
// @Accept json
// @Produce json
// @Param request body utils.CallableRequest{data=dto.GenerateCaptionsRequest} true "Текст поста"
// @Success 200 {object} utils.SuccessResponse{result=dto.GenerateCaptionsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /generateCaptions [post]
func (h *CaptionHandler) GenerateCaptions(c *fiber.Ctx) error {
	raw, err := utils.ParseCallable(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	data := dto.Payload(raw)
	if data == nil {
		return utils.SendError(c, errors.ErrDataRequired)
	}

	req := dto.NewGenerateCaptionsRequest(data)
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	captions := h.captionUC.Generate(c.UserContext(), req.ToDomain())

	return utils.SendSuccess(c, captions)
}
