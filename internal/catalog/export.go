// Package catalog exports the public Parquet indexes from the catalog
// database: one file of zipped bundle assets and one of grouped daily items.
package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/chartdb"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/models"
)

// ZipAssetRow is one row of zipped_assets.parquet: a single bundle with its
// zip download URL. Geometry is the footprint envelope as WKB (EPSG:4326).
type ZipAssetRow struct {
	Filename string `parquet:"filename"`
	ItemID   string `parquet:"item_id"`
	Geometry []byte `parquet:"geometry"`
	Date     int64  `parquet:"date,timestamp"`
	AssetURL string `parquet:"asset_url"`
}

// DailyItemRow is one row of daily_items.parquet: all bundles of a day
// grouped under one item with the combined envelope.
type DailyItemRow struct {
	ItemID   string   `parquet:"item_id"`
	Geometry []byte   `parquet:"geometry"`
	Date     int64    `parquet:"date,timestamp"`
	Assets   []string `parquet:"assets,list"`
}

// ExportZippedAssets writes the per-bundle index to path. The file is
// regenerated in full from the catalog database.
func ExportZippedAssets(ctx context.Context, db *chartdb.Client, path string) (int, error) {
	bundles, err := db.ListBundles(ctx)
	if err != nil {
		return 0, err
	}

	rows := make([]ZipAssetRow, 0, len(bundles))
	for _, b := range bundles {
		geom, err := envelopeWKB(b.Bounds)
		if err != nil {
			return 0, fmt.Errorf("bundle %s: %w", b.Filename, err)
		}
		rows = append(rows, ZipAssetRow{
			Filename: b.Filename,
			ItemID:   b.ItemID,
			Geometry: geom,
			Date:     b.Date.UnixMilli(),
			AssetURL: b.ZipURL,
		})
	}

	return len(rows), writeParquet(path, rows)
}

// ExportDailyItems writes the grouped per-day index to path, one row per
// chart date with the union envelope and all vector asset URLs of that day.
func ExportDailyItems(ctx context.Context, db *chartdb.Client, path string) (int, error) {
	bundles, err := db.ListBundles(ctx)
	if err != nil {
		return 0, err
	}

	var rows []DailyItemRow
	for _, b := range bundles {
		day := b.Date.Format("2006-01-02")
		itemID := "daily_" + day

		// ListBundles is date-ordered, so days arrive contiguously.
		if n := len(rows); n > 0 && rows[n-1].ItemID == itemID {
			last := &rows[n-1]
			last.Assets = append(last.Assets, b.GeoJSONURL)

			combined, err := envelopeBounds(last.Geometry)
			if err != nil {
				return 0, fmt.Errorf("item %s: %w", itemID, err)
			}
			geom, err := envelopeWKB(combined.Union(b.Bounds))
			if err != nil {
				return 0, fmt.Errorf("item %s: %w", itemID, err)
			}
			last.Geometry = geom
			continue
		}

		geom, err := envelopeWKB(b.Bounds)
		if err != nil {
			return 0, fmt.Errorf("bundle %s: %w", b.Filename, err)
		}
		rows = append(rows, DailyItemRow{
			ItemID:   itemID,
			Geometry: geom,
			Date:     b.Date.UnixMilli(),
			Assets:   []string{b.GeoJSONURL},
		})
	}

	return len(rows), writeParquet(path, rows)
}

func writeParquet[T any](path string, rows []T) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := parquet.NewGenericWriter[T](f, parquet.Compression(&parquet.Snappy))
	if _, err := w.Write(rows); err != nil {
		return fmt.Errorf("error writing parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("error finalizing parquet file: %w", err)
	}
	return nil
}

// envelopeWKB encodes a bounds envelope as a WKB polygon.
func envelopeWKB(b models.Bounds) ([]byte, error) {
	bound := orb.Bound{
		Min: orb.Point{b.MinLon, b.MinLat},
		Max: orb.Point{b.MaxLon, b.MaxLat},
	}
	data, err := wkb.Marshal(bound.ToPolygon())
	if err != nil {
		return nil, fmt.Errorf("error encoding envelope: %w", err)
	}
	return data, nil
}

// envelopeBounds decodes a WKB envelope back to bounds.
func envelopeBounds(data []byte) (models.Bounds, error) {
	geom, err := wkb.Unmarshal(data)
	if err != nil {
		return models.Bounds{}, fmt.Errorf("error decoding envelope: %w", err)
	}
	bound := geom.Bound()
	return models.Bounds{
		MinLon: bound.Min[0],
		MinLat: bound.Min[1],
		MaxLon: bound.Max[0],
		MaxLat: bound.Max[1],
	}, nil
}

// ExportAll writes both indexes and returns their row counts.
func ExportAll(ctx context.Context, db *chartdb.Client, zipPath, groupedPath string) (zipRows, dailyRows int, err error) {
	zipRows, err = ExportZippedAssets(ctx, db, zipPath)
	if err != nil {
		return 0, 0, fmt.Errorf("error exporting zipped assets index: %w", err)
	}

	dailyRows, err = ExportDailyItems(ctx, db, groupedPath)
	if err != nil {
		return zipRows, 0, fmt.Errorf("error exporting daily items index: %w", err)
	}
	return zipRows, dailyRows, nil
}
