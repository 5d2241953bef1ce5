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

// ShrineHandler - обработчик вызова detectShrine
type ShrineHandler struct {
	shrineUC *usecase.ShrineUseCase
	logger   *zap.Logger
}

func NewShrineHandler(shrineUC *usecase.ShrineUseCase, logger *zap.Logger) *ShrineHandler {
	return &ShrineHandler{
		shrineUC: shrineUC,
		logger:   logger,
	}
}

// DetectShrine godoc
// @Summary Ближайшее святилище
// @Description Ищет ближайшее святилище в радиусе 1000 м от координаты пользователя. Если ничего не найдено, все поля результата равны null.
// @Tags Shrines
// @Accept json
// @Produce json
// @Param request body utils.CallableRequest{data=dto.DetectShrineRequest} true "Координаты"
// @Success 200 {object} utils.SuccessResponse{result=dto.DetectShrineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /detectShrine [post]
func (h *ShrineHandler) DetectShrine(c *fiber.Ctx) error {
	raw, err := utils.ParseCallable(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	data := dto.Payload(raw)
	if data == nil {
		return utils.SendError(c, errors.ErrDataRequired)
	}

	req := dto.NewDetectShrineRequest(data)
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	nearest, err := h.shrineUC.FindNearest(c.UserContext(), req.Coordinate())
	if err != nil {
		h.logger.Error("detectShrine failed",
			zap.Float64("lat", *req.Lat),
			zap.Float64("lng", *req.Lng),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertNearestShrine(nearest))
}
