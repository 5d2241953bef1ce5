package repository

import (
	"context"

	"github.com/shrine-functions/internal/domain"
)

// ShrineRepository - чтение коллекции святилищ
type ShrineRepository interface {
	// FindByLatitudeRange returns up to limit shrines with lat in [minLat, maxLat],
	// in store order.
	FindByLatitudeRange(ctx context.Context, minLat, maxLat float64, limit int) ([]*domain.Shrine, error)

	Health(ctx context.Context) error
}

// ShrineWriter - запись в коллекцию, используется только утилитой наполнения
type ShrineWriter interface {
	Upsert(ctx context.Context, shrines []*domain.Shrine) error
}
