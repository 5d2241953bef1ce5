package dto

import "github.com/shrine-functions/internal/domain"

// GenerateCaptionsRequest - данные вызова generateCaptions
type GenerateCaptionsRequest struct {
	ShrineName *string `json:"shrineName" validate:"required,notblank"`
	Text       *string `json:"text" validate:"required"`
	Goshuin    bool    `json:"-"`
}

func NewGenerateCaptionsRequest(data map[string]interface{}) GenerateCaptionsRequest {
	req := GenerateCaptionsRequest{
		ShrineName: stringField(data, "shrineName"),
		Text:       stringField(data, "text"),
	}
	if meta, ok := data["metadata"].(map[string]interface{}); ok {
		req.Goshuin = Truthy(meta["goshuin"])
	}
	return req
}

func (r GenerateCaptionsRequest) ToDomain() domain.CaptionInput {
	return domain.CaptionInput{
		ShrineName: *r.ShrineName,
		Text:       *r.Text,
		Goshuin:    r.Goshuin,
	}
}

// GenerateCaptionsResponse - подписи для трёх площадок
type GenerateCaptionsResponse = domain.Captions
