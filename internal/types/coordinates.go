package types

import "fmt"

// Coords is a WGS84 coordinate in decimal degrees
type Coords struct {
	Latitude  float64 `json:"latitude" example:"37.7749"`
	Longitude float64 `json:"longitude" example:"-122.4194"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Valid reports whether the coordinate lies within [-90, 90] x [-180, 180]
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

func (c Coords) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Latitude, c.Longitude)
}
