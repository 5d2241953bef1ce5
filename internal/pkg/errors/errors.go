package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError - ошибка уровня приложения, которую транспорт отдаёт клиенту как есть
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Status returns the callable status name, e.g. "invalid-argument" -> "INVALID_ARGUMENT".
func (e *AppError) Status() string {
	return strings.ToUpper(strings.ReplaceAll(e.Code, "-", "_"))
}

// Is matches errors by code so that sentinels survive WithMessage/WithDetails copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy of the error with details attached.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage returns a copy of the error with a different message.
func (e *AppError) WithMessage(message string) *AppError {
	cp := *e
	cp.Message = message
	return &cp
}

// InvalidArgument - ошибка валидации входных данных
func InvalidArgument(message string) *AppError {
	return New(CodeInvalidArgument, message, http.StatusBadRequest)
}

// FieldNotFinite builds the error returned for a coordinate that is not a finite number.
func FieldNotFinite(field string) *AppError {
	return InvalidArgument(field + " must be a finite number").WithDetails(map[string]interface{}{
		"field": field,
	})
}

// FieldRequired builds the error returned for a missing required field.
func FieldRequired(field string) *AppError {
	return InvalidArgument(field + " is required").WithDetails(map[string]interface{}{
		"field": field,
	})
}
