package usecase

import (
	"context"
	"fmt"

	"github.com/shrine-functions/internal/domain"
	"github.com/shrine-functions/internal/domain/repository"
	"github.com/shrine-functions/internal/pkg/errors"
	"github.com/shrine-functions/internal/pkg/utils"
	"go.uber.org/zap"
)

const (
	// RadiusMeters - радиус поиска святилища вокруг точки пользователя
	RadiusMeters = 1000.0

	// CandidateLimit caps the number of records fetched per lookup.
	CandidateLimit = 200
)

// ShrineUseCase - поиск ближайшего святилища
type ShrineUseCase struct {
	shrineRepo repository.ShrineRepository
	logger     *zap.Logger
}

func NewShrineUseCase(
	shrineRepo repository.ShrineRepository,
	logger *zap.Logger,
) *ShrineUseCase {
	return &ShrineUseCase{
		shrineRepo: shrineRepo,
		logger:     logger,
	}
}

// FindNearest возвращает ближайшее святилище в радиусе RadiusMeters или nil.
//
// The store can only range-filter one field, so candidates are fetched by a
// latitude band and the longitude is checked by the distance scan. Records with
// equal distance keep the store's fetch order.
func (uc *ShrineUseCase) FindNearest(ctx context.Context, query domain.Coordinate) (*domain.NearestShrine, error) {
	if !utils.IsFinite(query.Lat) {
		return nil, errors.FieldNotFinite("lat")
	}
	if !utils.IsFinite(query.Lng) {
		return nil, errors.FieldNotFinite("lng")
	}

	deltaLat := utils.LatitudeDelta(RadiusMeters)
	minLat := query.Lat - deltaLat
	maxLat := query.Lat + deltaLat

	candidates, err := uc.shrineRepo.FindByLatitudeRange(ctx, minLat, maxLat, CandidateLimit)
	if err != nil {
		uc.logger.Error("Failed to fetch shrine candidates",
			zap.Float64("min_lat", minLat),
			zap.Float64("max_lat", maxLat),
			zap.Error(err))
		return nil, fmt.Errorf("fetch shrine candidates: %w", err)
	}

	var best *domain.NearestShrine
	skipped := 0
	for _, s := range candidates {
		if !s.HasCoordinates() || !utils.IsFinite(*s.Lat) || !utils.IsFinite(*s.Lng) {
			skipped++
			continue
		}

		d := utils.HaversineMeters(query.Lat, query.Lng, *s.Lat, *s.Lng)
		if d > RadiusMeters {
			continue
		}

		if best == nil || d < best.DistanceMeters {
			best = &domain.NearestShrine{
				ShrineID:       s.ID,
				Name:           s.Name,
				Prefecture:     s.Prefecture,
				Lat:            *s.Lat,
				Lng:            *s.Lng,
				DistanceMeters: d,
			}
		}
	}

	uc.logger.Debug("Shrine candidates scanned",
		zap.Int("candidates", len(candidates)),
		zap.Int("skipped", skipped),
		zap.Bool("found", best != nil))

	return best, nil
}
