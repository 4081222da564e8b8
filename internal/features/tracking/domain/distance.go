package domain

import "github.com/golang/geo/s2"

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the haversine great-circle distance between a and b
// in meters. Inputs are not range checked.
func DistanceMeters(a, b Coordinate) float64 {
	return a.latLng().Distance(b.latLng()).Radians() * EarthRadiusMeters
}

func (c Coordinate) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Latitude, c.Longitude)
}
