package dto

import (
	"math"

	"github.com/shrine-functions/internal/domain"
)

// DetectShrineRequest - данные вызова detectShrine
type DetectShrineRequest struct {
	Lat  *float64 `json:"lat" validate:"finite"`
	Lng  *float64 `json:"lng" validate:"finite"`
	Text *string  `json:"text,omitempty"`
}

// NewDetectShrineRequest reads the loosely typed callable payload. Fields of the
// wrong JSON type are left nil so validation reports them like missing ones.
func NewDetectShrineRequest(data map[string]interface{}) DetectShrineRequest {
	return DetectShrineRequest{
		Lat:  numberField(data, "lat"),
		Lng:  numberField(data, "lng"),
		Text: stringField(data, "text"),
	}
}

func (r DetectShrineRequest) Coordinate() domain.Coordinate {
	return domain.Coordinate{Lat: *r.Lat, Lng: *r.Lng}
}

// DetectShrineResponse - формат, который ожидает мобильное приложение
type DetectShrineResponse struct {
	ShrineID *string `json:"shrineId"`
	Name     *string `json:"name"`
	Distance *int64  `json:"distance"`
}

func ConvertNearestShrine(s *domain.NearestShrine) DetectShrineResponse {
	if s == nil {
		return DetectShrineResponse{}
	}

	id := s.ShrineID
	distance := int64(math.Round(s.DistanceMeters))
	return DetectShrineResponse{
		ShrineID: &id,
		Name:     s.Name,
		Distance: &distance,
	}
}
