package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineMeters(35.6762, 139.7503, 35.6762, 139.7503))
	})

	t.Run("tokyo short hop", func(t *testing.T) {
		d := HaversineMeters(35.6762, 139.7503, 35.6764, 139.7505)
		assert.InDelta(t, 28.6, d, 0.5)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := HaversineMeters(0, 0, 1, 0)
		assert.InDelta(t, EarthRadiusMeters*math.Pi/180, d, 1e-6)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := HaversineMeters(35.0, 135.0, 35.01, 135.02)
		b := HaversineMeters(35.01, 135.02, 35.0, 135.0)
		assert.InDelta(t, a, b, 1e-9)
	})
}

func TestLatitudeDelta(t *testing.T) {
	assert.InDelta(t, 0.008983, LatitudeDelta(1000), 1e-6)
	assert.Equal(t, 0.0, LatitudeDelta(0))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(35.6))
	assert.True(t, IsFinite(-1e300))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}
