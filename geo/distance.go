package geo

import (
	"math"

	"github.com/campusaid-inc/campusaid-api/schema"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// latitude/longitude pairs given in degrees. NaN inputs propagate.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// DistanceKm returns the great-circle distance in kilometers between two
// locations.
func DistanceKm(from, to schema.Location) float64 {
	return Haversine(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
