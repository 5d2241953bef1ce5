package usecase

import (
	"context"

	"github.com/shrine-functions/internal/domain"
	"github.com/shrine-functions/internal/pkg/errors"
	"go.uber.org/zap"
)

// SNSUseCase - публикация в соцсети. Интеграция с API площадок ещё не сделана,
// поэтому каждый вызов возвращает явный not-implemented результат.
type SNSUseCase struct {
	logger *zap.Logger
}

func NewSNSUseCase(logger *zap.Logger) *SNSUseCase {
	return &SNSUseCase{logger: logger}
}

func (uc *SNSUseCase) Post(ctx context.Context) *domain.PostResult {
	uc.logger.Info("SNS posting requested but not implemented")

	return &domain.PostResult{
		Posted: domain.PostedTargets{},
		Errors: []domain.PostError{
			{
				Code:    errors.ErrNotImplemented.Code,
				Message: errors.ErrNotImplemented.Message,
			},
		},
	}
}
