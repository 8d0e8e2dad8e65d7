package models

import "github.com/twpayne/go-polyline"

// Bounds is an axis-aligned lon/lat bounding box in EPSG:4326.
type Bounds struct {
	MinLon float64 `json:"minLon"`
	MinLat float64 `json:"minLat"`
	MaxLon float64 `json:"maxLon"`
	MaxLat float64 `json:"maxLat"`
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinLon: min(b.MinLon, o.MinLon),
		MinLat: min(b.MinLat, o.MinLat),
		MaxLon: max(b.MaxLon, o.MaxLon),
		MaxLat: max(b.MaxLat, o.MaxLat),
	}
}

// Intersects reports whether b and o overlap. Boxes that share only an edge
// still intersect.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinLon <= o.MaxLon && o.MinLon <= b.MaxLon &&
		b.MinLat <= o.MaxLat && o.MinLat <= b.MaxLat
}

// Center returns the center point of the bounds.
func (b Bounds) Center() (lat, lon float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}

// Spans returns the lat/lon extent of the bounds.
func (b Bounds) Spans() (latSpan, lonSpan float64) {
	return b.MaxLat - b.MinLat, b.MaxLon - b.MinLon
}

// BoundsAround builds a Bounds from a center point and spans, the way the
// location query parameters describe a search box.
func BoundsAround(lat, lon, latSpan, lonSpan float64) Bounds {
	return Bounds{
		MinLon: lon - lonSpan/2,
		MinLat: lat - latSpan/2,
		MaxLon: lon + lonSpan/2,
		MaxLat: lat + latSpan/2,
	}
}

// EncodedPolygon returns the envelope ring as a Google encoded polyline,
// closed back to the first corner.
func (b Bounds) EncodedPolygon() string {
	coords := [][]float64{
		{b.MinLat, b.MinLon},
		{b.MinLat, b.MaxLon},
		{b.MaxLat, b.MaxLon},
		{b.MaxLat, b.MinLon},
		{b.MinLat, b.MinLon},
	}
	return string(polyline.EncodeCoords(coords))
}
