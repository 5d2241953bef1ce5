package usecase

import (
	"context"
	"strings"

	"github.com/shrine-functions/internal/domain"
	"github.com/shrine-functions/internal/pkg/utils"
	"go.uber.org/zap"
)

const (
	// XCaptionMaxChars - лимит длины поста в X (в кодовых единицах UTF-16)
	XCaptionMaxChars = 280

	goshuinLine = "御朱印もいただきました。"
)

// CaptionUseCase - шаблонные подписи к посту о посещении
type CaptionUseCase struct {
	logger *zap.Logger
}

func NewCaptionUseCase(logger *zap.Logger) *CaptionUseCase {
	return &CaptionUseCase{logger: logger}
}

// Generate собирает подписи для Instagram, X и Threads
func (uc *CaptionUseCase) Generate(ctx context.Context, in domain.CaptionInput) *domain.Captions {
	shrineName := utils.TrimWhitespace(in.ShrineName)
	text := utils.TrimWhitespace(in.Text)

	lines := []string{"⛩️ " + shrineName + " に参拝しました。"}
	if text != "" {
		lines = append(lines, text)
	}
	if in.Goshuin {
		lines = append(lines, goshuinLine)
	}
	base := strings.Join(lines, "\n")

	hashtags := strings.Join([]string{
		"#神社",
		"#参拝",
		"#" + utils.StripWhitespace(shrineName),
	}, " ")

	instagram := base + "\n\n" + hashtags
	full := base + "\n" + hashtags
	x := utils.TruncateUTF16(full, XCaptionMaxChars)

	uc.logger.Debug("Captions generated",
		zap.Int("base_len", utils.UTF16Len(base)),
		zap.Bool("x_truncated", len(x) < len(full)))

	return &domain.Captions{
		InstagramCaption: instagram,
		XCaption:         x,
		ThreadsCaption:   instagram,
	}
}

