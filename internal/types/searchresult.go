package types

// SearchResult is a FoodTruck plus its distance from the search center.
// It only lives for the duration of one search request.
type SearchResult struct {
	FoodTruck
	DistanceKm float64 `json:"distance" example:"1.42" doc:"Distance from the search center in kilometres, rounded to 2 decimals"`
}
