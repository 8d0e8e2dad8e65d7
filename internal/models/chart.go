package models

import "time"

// ChartEntry is the API representation of a cataloged ice chart bundle.
type ChartEntry struct {
	ID             string  `json:"id"`
	Filename       string  `json:"filename"`
	Date           string  `json:"date"`
	Bounds         Bounds  `json:"bounds"`
	EncodedPolygon string  `json:"encodedPolygon"`
	ZipURL         string  `json:"zipUrl"`
	GeoJSONURL     string  `json:"geojsonUrl"`
	IngestedAt     int64   `json:"ingestedAt"`
}

// ChartReference is the reduced form of a chart used in response references.
type ChartReference struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

// NewChartEntry builds a ChartEntry, deriving the encoded footprint polygon
// from the bounds.
func NewChartEntry(id, filename string, date time.Time, bounds Bounds, zipURL, geojsonURL string, ingestedAt time.Time) ChartEntry {
	return ChartEntry{
		ID:             id,
		Filename:       filename,
		Date:           date.Format("2006-01-02"),
		Bounds:         bounds,
		EncodedPolygon: bounds.EncodedPolygon(),
		ZipURL:         zipURL,
		GeoJSONURL:     geojsonURL,
		IngestedAt:     ingestedAt.UnixMilli(),
	}
}

// NewChartReference builds the reference form of a chart.
func NewChartReference(id string, date time.Time) ChartReference {
	return ChartReference{
		ID:   id,
		Date: date.Format("2006-01-02"),
	}
}
