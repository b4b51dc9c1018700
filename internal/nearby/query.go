package nearby

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rootsec1/meals-on-heels/internal/types"
)

// DefaultRadiusKm is used when neither the request nor the configuration
// supplies a radius.
const DefaultRadiusKm = 5.0

// Validation errors returned by ParseQuery. Their messages are safe to return
// to API clients.
var (
	ErrMissingParameter     = errors.New("latitude and longitude are required")
	ErrInvalidNumericFormat = errors.New("latitude and longitude must be numbers")
	ErrInvalidRadius        = errors.New("radius must be a positive number")
	ErrCoordinateOutOfRange = errors.New("latitude must be between -90 and 90 and longitude between -180 and 180")
)

// Query is a validated proximity search request
type Query struct {
	Center   types.Coords
	RadiusKm float64
}

// ParseQuery validates raw lat, lng and radius parameters. An empty radius
// falls back to defaultRadiusKm.
func ParseQuery(lat, lng, radius string, defaultRadiusKm float64) (Query, error) {
	lat, lng, radius = strings.TrimSpace(lat), strings.TrimSpace(lng), strings.TrimSpace(radius)

	if lat == "" || lng == "" {
		return Query{}, ErrMissingParameter
	}

	latitude, latOK := parseFinite(lat)
	longitude, lngOK := parseFinite(lng)
	if !latOK || !lngOK {
		return Query{}, ErrInvalidNumericFormat
	}

	center := types.NewCoords(latitude, longitude)
	if !center.Valid() {
		return Query{}, ErrCoordinateOutOfRange
	}

	radiusKm := defaultRadiusKm
	if radius != "" {
		r, ok := parseFinite(radius)
		if !ok {
			return Query{}, ErrInvalidRadius
		}
		radiusKm = r
	}
	if radiusKm <= 0 {
		return Query{}, ErrInvalidRadius
	}

	return Query{Center: center, RadiusKm: radiusKm}, nil
}

// IsValidationError reports whether err came from ParseQuery
func IsValidationError(err error) bool {
	return errors.IsAny(err,
		ErrMissingParameter,
		ErrInvalidNumericFormat,
		ErrInvalidRadius,
		ErrCoordinateOutOfRange,
	)
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
