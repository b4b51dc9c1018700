// Package store provides the data-access side of the food truck search: a
// Repository interface, seed file readers and the in-memory and
// Elasticsearch backed implementations.
package store

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/rootsec1/meals-on-heels/internal/types"
)

// Repository exposes the complete food truck collection for a search.
// Implementations must return a slice the caller can read without
// synchronisation and must not modify it afterwards.
type Repository interface {
	All(ctx context.Context) ([]types.FoodTruck, error)
}

var (
	// ErrInvalidCoordinates marks a record whose latitude or longitude is
	// outside the valid WGS84 range.
	ErrInvalidCoordinates = errors.New("store: coordinates out of range")

	// ErrMalformedRow marks a seed row that is missing a required column or
	// holds a value that cannot be parsed.
	ErrMalformedRow = errors.New("store: malformed row")

	// ErrUnsupportedFormat is returned for seed files that are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("store: unsupported seed file format")
)

// Validate checks the invariants every stored record must satisfy
func Validate(truck types.FoodTruck) error {
	if !truck.Coords().Valid() {
		return errors.Wrapf(ErrInvalidCoordinates, "location %d at %s", truck.LocationID, truck.Coords())
	}
	return nil
}
