package nearby

import (
	"cmp"
	"slices"

	"github.com/rootsec1/meals-on-heels/internal/geo"
	"github.com/rootsec1/meals-on-heels/internal/types"
)

// SearchNearby returns the trucks within radiusKm of the center, nearest
// first. The boundary is inclusive and compared against the unrounded
// distance; trucks at equal rounded distance keep their input order.
// The result is never nil and trucks is not modified.
func SearchNearby(centerLat, centerLon, radiusKm float64, trucks []types.FoodTruck) []types.SearchResult {
	results := make([]types.SearchResult, 0)

	for _, truck := range trucks {
		distance := geo.DistanceKm(centerLat, centerLon, truck.Latitude, truck.Longitude)
		if distance > radiusKm {
			continue
		}
		results = append(results, types.SearchResult{
			FoodTruck:  truck,
			DistanceKm: geo.RoundKm(distance),
		})
	}

	slices.SortStableFunc(results, func(a, b types.SearchResult) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return results
}
