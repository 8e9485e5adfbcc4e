package distance

import (
	"math"

	"load-optimizer-service/internal/domain"
)

const earthRadiusKm = 6371

// Haversine returns the great-circle distance between two coordinates in
// kilometers. Fully deterministic; the fallback metric when the routing
// service is unavailable.
func Haversine(a, b domain.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// HaversineMatrix computes a full origin x destination matrix of great-circle
// distances. It always succeeds, which keeps the distance engine total.
func HaversineMatrix(origins, destinations []domain.Coordinate) domain.DistanceMatrix {
	m := domain.NewDistanceMatrix(len(origins), len(destinations), 0)
	for i, o := range origins {
		for j, d := range destinations {
			m[i][j] = Haversine(o, d)
		}
	}
	return m
}
