package domain

import "fmt"

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	// Latitude in degrees, valid range [-90, 90].
	Latitude float64 `json:"latitude"`
	// Longitude in degrees, valid range [-180, 180].
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within the geographic ranges.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Latitude, c.Longitude)
}
