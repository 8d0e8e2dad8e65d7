package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/appconf"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/chartdb"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/models"
)

func seededCatalog(t *testing.T) *chartdb.Client {
	t.Helper()
	client, err := chartdb.NewClient(chartdb.NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	jan5 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	jan6 := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	require.NoError(t, client.InsertBundleBatch(context.Background(), []chartdb.Bundle{
		{
			Filename:   "20240105_CapeFarewell_RIC",
			ItemID:     "20240105_CapeFarewell_RIC",
			Date:       jan5,
			Bounds:     models.Bounds{MinLon: -48, MinLat: 58, MaxLon: -42, MaxLat: 61},
			ZipURL:     "https://assets.example.com/zips/20240105_CapeFarewell_RIC.zip",
			GeoJSONURL: "https://assets.example.com/daily/20240105_CapeFarewell_RIC.geojson",
			IngestedAt: time.Now(),
		},
		{
			Filename:   "20240105_Greenland_NE",
			ItemID:     "20240105_Greenland_NE",
			Date:       jan5,
			Bounds:     models.Bounds{MinLon: -30, MinLat: 70, MaxLon: -15, MaxLat: 82},
			ZipURL:     "https://assets.example.com/zips/20240105_Greenland_NE.zip",
			GeoJSONURL: "https://assets.example.com/daily/20240105_Greenland_NE.geojson",
			IngestedAt: time.Now(),
		},
		{
			Filename:   "20240106_Greenland_WA",
			ItemID:     "20240106_Greenland_WA",
			Date:       jan6,
			Bounds:     models.Bounds{MinLon: -60, MinLat: 60, MaxLon: -48, MaxLat: 75},
			ZipURL:     "https://assets.example.com/zips/20240106_Greenland_WA.zip",
			GeoJSONURL: "https://assets.example.com/daily/20240106_Greenland_WA.geojson",
			IngestedAt: time.Now(),
		},
	}))
	return client
}

func TestExportZippedAssets(t *testing.T) {
	db := seededCatalog(t)
	path := filepath.Join(t.TempDir(), "zipped_assets.parquet")

	n, err := ExportZippedAssets(context.Background(), db, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	rows, err := parquet.ReadFile[ZipAssetRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, "20240105_CapeFarewell_RIC", first.Filename)
	assert.Equal(t, first.Filename, first.ItemID)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC).UnixMilli(), first.Date)
	assert.Equal(t, "https://assets.example.com/zips/20240105_CapeFarewell_RIC.zip", first.AssetURL)

	geom, err := wkb.Unmarshal(first.Geometry)
	require.NoError(t, err)
	bound := geom.Bound()
	assert.InDelta(t, -48, bound.Min[0], 1e-9)
	assert.InDelta(t, 61, bound.Max[1], 1e-9)
}

func TestExportDailyItemsGroupsByDate(t *testing.T) {
	db := seededCatalog(t)
	path := filepath.Join(t.TempDir(), "daily_items.parquet")

	n, err := ExportDailyItems(context.Background(), db, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := parquet.ReadFile[DailyItemRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	jan5 := rows[0]
	assert.Equal(t, "daily_2024-01-05", jan5.ItemID)
	assert.Equal(t, []string{
		"https://assets.example.com/daily/20240105_CapeFarewell_RIC.geojson",
		"https://assets.example.com/daily/20240105_Greenland_NE.geojson",
	}, jan5.Assets)

	// Combined envelope spans both bundles of the day.
	geom, err := wkb.Unmarshal(jan5.Geometry)
	require.NoError(t, err)
	bound := geom.Bound()
	assert.InDelta(t, -48, bound.Min[0], 1e-9)
	assert.InDelta(t, 58, bound.Min[1], 1e-9)
	assert.InDelta(t, -15, bound.Max[0], 1e-9)
	assert.InDelta(t, 82, bound.Max[1], 1e-9)

	jan6 := rows[1]
	assert.Equal(t, "daily_2024-01-06", jan6.ItemID)
	assert.Len(t, jan6.Assets, 1)
}

func TestExportAll(t *testing.T) {
	db := seededCatalog(t)
	dir := t.TempDir()

	zipRows, dailyRows, err := ExportAll(context.Background(), db,
		filepath.Join(dir, "zipped_assets.parquet"),
		filepath.Join(dir, "daily_items.parquet"))
	require.NoError(t, err)
	assert.Equal(t, 3, zipRows)
	assert.Equal(t, 2, dailyRows)
}

func TestExportEmptyCatalog(t *testing.T) {
	client, err := chartdb.NewClient(chartdb.NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	path := filepath.Join(t.TempDir(), "zipped_assets.parquet")
	n, err := ExportZippedAssets(context.Background(), client, path)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.FileExists(t, path)
}
