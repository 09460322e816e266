// README: Pure geographic computation helpers.
package location

import (
	"math"

	"greenroute/internal/types"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees. The formula is symmetric:
// HaversineKm(a, b) == HaversineKm(b, a).
func HaversineKm(a, b types.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// IsNearby reports whether the two points are within maxKm of each other.
func IsNearby(a, b types.Point, maxKm float64) bool {
	return HaversineKm(a, b) <= maxKm
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
