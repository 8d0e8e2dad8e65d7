package appconf

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// IngestConfig holds the configuration for the ingestion pipeline. Values are
// read from environment variables, matching what the deployment container
// sets, with defaults suitable for local runs.
type IngestConfig struct {
	// ShapefileBaseURL is the remote root the SIGRID-3 bundles are fetched
	// from. The current year is appended because DMI files charts per year.
	ShapefileBaseURL string

	// Output directories for produced assets.
	GeoJSONDir string
	ZippedDir  string

	// Exported Parquet index paths.
	GroupedParquetPath string
	ZipParquetPath     string

	// Public base URLs recorded in the exported indexes.
	AssetBaseURLGeoJSON string
	AssetBaseURLZip     string

	CatalogDBPath string

	Env     Environment
	Verbose bool
}

const defaultShapefileBaseURL = "https://download.dmi.dk/public/ICESERVICE/SIGRID3/"

// LoadIngestConfig reads the ingest configuration from the environment.
func LoadIngestConfig() IngestConfig {
	cfg := IngestConfig{
		ShapefileBaseURL:    getenv("SHAPEFILE_BASE_URL", defaultShapefileBaseURL),
		GeoJSONDir:          getenv("GEOJSON_DIR", "geojson"),
		ZippedDir:           getenv("ZIPPED_DIR", "zips"),
		GroupedParquetPath:  getenv("GROUPED_PARQUET_PATH", "daily_items.parquet"),
		ZipParquetPath:      getenv("ZIP_PARQUET_PATH", "zipped_assets.parquet"),
		AssetBaseURLGeoJSON: getenv("ASSET_BASE_URL_GEOJSON", "https://your-bucket.example.com/daily"),
		AssetBaseURLZip:     getenv("ASSET_BASE_URL_ZIP", "https://your-bucket.example.com/zips"),
		CatalogDBPath:       getenv("CATALOG_DB_PATH", "catalog.db"),
		Env:                 EnvFlagToEnvironment(os.Getenv("ENV")),
	}
	cfg.ShapefileBaseURL = YearURL(cfg.ShapefileBaseURL, time.Now().Year())
	return cfg
}

// YearURL appends the given year to the shapefile base URL.
func YearURL(baseURL string, year int) string {
	return fmt.Sprintf("%s/%d/", strings.TrimRight(baseURL, "/"), year)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
