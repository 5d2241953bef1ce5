package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"

	"github.com/shrine-functions/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockShrineRepository is a mock of ShrineRepository
type MockShrineRepository struct {
	mock.Mock
}

func (m *MockShrineRepository) FindByLatitudeRange(ctx context.Context, minLat, maxLat float64, limit int) ([]*domain.Shrine, error) {
	args := m.Called(ctx, minLat, maxLat, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Shrine), args.Error(1)
}

func (m *MockShrineRepository) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func ptrFloat64(v float64) *float64 { return &v }

func ptrString(v string) *string { return &v }

func shrineAt(id string, lat, lng float64) *domain.Shrine {
	return &domain.Shrine{
		ID:   id,
		Name: ptrString(id + "-name"),
		Lat:  ptrFloat64(lat),
		Lng:  ptrFloat64(lng),
	}
}
