package utils

import (
	"bytes"
	"encoding/json"
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shrine-functions/internal/pkg/errors"
)

// CallableRequest - конверт запроса вызываемой функции: полезная нагрузка лежит в "data"
type CallableRequest struct {
	Data interface{} `json:"data"`
}

// SuccessResponse - конверт успешного ответа
type SuccessResponse struct {
	Result interface{} `json:"result"`
}

// ErrorResponse - конверт ответа с ошибкой
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func SendSuccess(c *fiber.Ctx, result interface{}) error {
	return c.JSON(SuccessResponse{
		Result: result,
	})
}

// SendError writes an AppError as-is; anything else is reported as INTERNAL
// without leaking the cause to the caller.
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.ErrInternal
	}

	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: ErrorBody{
			Status:  appErr.Status(),
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

// ParseCallable decodes the callable envelope and returns its data payload.
// Numbers are kept as json.Number so that out-of-range values such as 1e999
// reach field validation instead of failing the whole body.
func ParseCallable(c *fiber.Ctx) (interface{}, error) {
	body := c.Body()
	if len(body) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var req CallableRequest
	if err := dec.Decode(&req); err != nil {
		return nil, errors.ErrInvalidRequest
	}
	if dec.More() {
		return nil, errors.ErrInvalidRequest
	}
	return req.Data, nil
}
