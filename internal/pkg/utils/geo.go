package utils

import "math"

const (
	// EarthRadiusMeters - радиус сферической Земли для формулы гаверсинуса
	EarthRadiusMeters = 6371000.0

	// MetersPerDegreeLat approximates one degree of latitude at the equator.
	MetersPerDegreeLat = 111320.0
)

// DegreesToRadians переводит градусы в радианы
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineMeters вычисляет расстояние по большому кругу между двумя точками в метрах
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := DegreesToRadians(lat2 - lat1)
	dLng := DegreesToRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(DegreesToRadians(lat1))*math.Cos(DegreesToRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// LatitudeDelta converts a radius to the half-height of a latitude band.
// Longitude convergence is ignored, so the band is only exact at the equator.
func LatitudeDelta(radiusMeters float64) float64 {
	return radiusMeters / MetersPerDegreeLat
}

// IsFinite сообщает, что значение не NaN и не ±Inf
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
