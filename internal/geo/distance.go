package geo

import (
	"math"

	"skytide/internal/types"
)

// earthRadiusKm is the mean radius of the Earth in kilometers.
const earthRadiusKm = 6371

// Haversine returns the great-circle distance in kilometers between two
// coordinates given in degrees.
func Haversine(a, b types.Coords) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
