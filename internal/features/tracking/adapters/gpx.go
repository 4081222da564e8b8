package adapter

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"gotur/internal/features/tracking/domain"
)

// gpxDocument is the subset of GPX 1.1 needed to replay a route.
type gpxDocument struct {
	XMLName xml.Name   `xml:"gpx"`
	Tracks  []gpxTrack `xml:"trk"`
	Routes  []gpxRoute `xml:"rte"`
}

type gpxTrack struct {
	Name     string       `xml:"name"`
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxRoute struct {
	Name   string     `xml:"name"`
	Points []gpxPoint `xml:"rtept"`
}

type gpxPoint struct {
	Lat float64 `xml:"lat,attr"`
	Lon float64 `xml:"lon,attr"`
}

// LoadGPX reads the route in a GPX file.
func LoadGPX(path string) ([]domain.Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open GPX file %s: %w", path, err)
	}
	defer f.Close()

	route, err := ParseGPX(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return route, nil
}

// ParseGPX decodes track points in document order. Route points are used
// only when the document has no track points.
func ParseGPX(r io.Reader) ([]domain.Coordinate, error) {
	var doc gpxDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode GPX: %w", err)
	}

	var points []gpxPoint
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			points = append(points, seg.Points...)
		}
	}
	if len(points) == 0 {
		for _, rte := range doc.Routes {
			points = append(points, rte.Points...)
		}
	}
	if len(points) == 0 {
		return nil, ErrEmptyRoute
	}

	route := make([]domain.Coordinate, 0, len(points))
	for i, p := range points {
		c := domain.Coordinate{Latitude: p.Lat, Longitude: p.Lon}
		if !c.Valid() {
			return nil, fmt.Errorf("point %d out of range: %s", i, c)
		}
		route = append(route, c)
	}
	return route, nil
}
