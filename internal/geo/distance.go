package geo

import (
	"math"

	"github.com/rootsec1/meals-on-heels/internal/types"
)

// EarthRadiusKm is the spherical earth radius used by DistanceKm. Existing
// distance fixtures depend on this exact value.
const EarthRadiusKm = 6373.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// DistanceKm returns the great-circle distance in kilometres between two
// coordinates given in decimal degrees, using the haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lon1Rad := toRadians(lon1)
	lat2Rad := toRadians(lat2)
	lon2Rad := toRadians(lon2)

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Pow(math.Sin(dLon/2), 2)
	// rounding can push near-antipodal points a hair above 1
	a = math.Min(a, 1)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Distance is DistanceKm for two Coords
func Distance(from, to types.Coords) float64 {
	return DistanceKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

// RoundKm rounds a distance to 2 decimal places, halves away from zero
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
