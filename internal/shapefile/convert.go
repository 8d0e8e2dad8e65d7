// Package shapefile converts downloaded ESRI shapefiles into the web asset
// format and computes bundle footprints.
package shapefile

import (
	"encoding/json"
	"fmt"
	"os"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/models"
)

// Result describes a completed conversion.
type Result struct {
	Bounds       models.Bounds
	FeatureCount int
}

// Convert reads the shapefile at shpPath, writes a GeoJSON FeatureCollection
// (with the DBF attributes as feature properties) to geojsonPath, and returns
// the envelope of all geometries.
func Convert(shpPath, geojsonPath string) (Result, error) {
	fc, bound, err := read(shpPath)
	if err != nil {
		return Result{}, err
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return Result{}, fmt.Errorf("error encoding GeoJSON: %w", err)
	}
	if err := os.WriteFile(geojsonPath, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("error writing %s: %w", geojsonPath, err)
	}

	return Result{
		Bounds:       boundsFromOrb(bound),
		FeatureCount: len(fc.Features),
	}, nil
}

// Bounds returns the envelope of all geometries in the shapefile without
// producing any output file.
func Bounds(shpPath string) (models.Bounds, error) {
	_, bound, err := read(shpPath)
	if err != nil {
		return models.Bounds{}, err
	}
	return boundsFromOrb(bound), nil
}

func read(shpPath string) (*geojson.FeatureCollection, orb.Bound, error) {
	r, err := shp.Open(shpPath)
	if err != nil {
		return nil, orb.Bound{}, fmt.Errorf("error opening shapefile: %w", err)
	}
	defer r.Close() // nolint:errcheck

	fields := r.Fields()
	fc := geojson.NewFeatureCollection()

	var bound orb.Bound
	for r.Next() {
		n, s := r.Shape()

		geom, err := toGeometry(s)
		if err != nil {
			return nil, orb.Bound{}, fmt.Errorf("record %d: %w", n, err)
		}
		if geom == nil {
			// null shape
			continue
		}

		feature := geojson.NewFeature(geom)
		for i, field := range fields {
			feature.Properties[field.String()] = r.ReadAttribute(n, i)
		}
		fc.Append(feature)

		if len(fc.Features) == 1 {
			bound = geom.Bound()
		} else {
			bound = bound.Union(geom.Bound())
		}
	}
	if err := r.Err(); err != nil {
		return nil, orb.Bound{}, fmt.Errorf("error reading shapefile: %w", err)
	}
	if len(fc.Features) == 0 {
		return nil, orb.Bound{}, fmt.Errorf("shapefile %s has no features", shpPath)
	}

	return fc, bound, nil
}

// toGeometry maps a shapefile record to an orb geometry. SIGRID-3 charts are
// polygon layers, but points and polylines are accepted for completeness.
func toGeometry(s shp.Shape) (orb.Geometry, error) {
	switch s := s.(type) {
	case *shp.Null:
		return nil, nil
	case *shp.Point:
		return orb.Point{s.X, s.Y}, nil
	case *shp.MultiPoint:
		mp := make(orb.MultiPoint, 0, len(s.Points))
		for _, p := range s.Points {
			mp = append(mp, orb.Point{p.X, p.Y})
		}
		return mp, nil
	case *shp.PolyLine:
		parts := splitParts(s.Points, s.Parts)
		mls := make(orb.MultiLineString, 0, len(parts))
		for _, part := range parts {
			mls = append(mls, orb.LineString(part))
		}
		return mls, nil
	case *shp.Polygon:
		parts := splitParts(s.Points, s.Parts)
		poly := make(orb.Polygon, 0, len(parts))
		for _, part := range parts {
			poly = append(poly, closeRing(part))
		}
		return poly, nil
	default:
		return nil, fmt.Errorf("unsupported shape type %T", s)
	}
}

// splitParts slices the flat point array into its per-part segments.
func splitParts(points []shp.Point, parts []int32) [][]orb.Point {
	if len(parts) == 0 {
		parts = []int32{0}
	}

	result := make([][]orb.Point, 0, len(parts))
	for i, start := range parts {
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}

		segment := make([]orb.Point, 0, end-int(start))
		for _, p := range points[start:end] {
			segment = append(segment, orb.Point{p.X, p.Y})
		}
		result = append(result, segment)
	}
	return result
}

// closeRing ensures a polygon ring ends where it starts, as GeoJSON requires.
func closeRing(points []orb.Point) orb.Ring {
	if len(points) > 0 && points[0] != points[len(points)-1] {
		points = append(points, points[0])
	}
	return orb.Ring(points)
}

func boundsFromOrb(b orb.Bound) models.Bounds {
	return models.Bounds{
		MinLon: b.Min[0],
		MinLat: b.Min[1],
		MaxLon: b.Max[0],
		MaxLat: b.Max[1],
	}
}
