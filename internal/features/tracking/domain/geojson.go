package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LineString converts a path to an orb line. GeoJSON orders points as
// longitude, latitude.
func LineString(path []Coordinate) orb.LineString {
	ls := make(orb.LineString, 0, len(path))
	for _, c := range path {
		ls = append(ls, orb.Point{c.Longitude, c.Latitude})
	}
	return ls
}

// PathFeature renders the snapshot's path as a GeoJSON feature for
// polyline rendering.
func PathFeature(s Snapshot) *geojson.Feature {
	f := geojson.NewFeature(LineString(s.Path))
	f.Properties["status"] = s.Status.String()
	f.Properties["elapsed"] = s.Elapsed
	f.Properties["elapsed_seconds"] = s.ElapsedSeconds
	f.Properties["distance_m"] = s.TotalDistanceMeters
	f.Properties["distance_km"] = s.DistanceKm
	return f
}
