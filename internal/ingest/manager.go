// Package ingest orchestrates the chart ingestion pipeline: manifest in,
// downloaded/zipped/converted assets and catalog rows out.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/appconf"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/archive"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/catalog"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/chartdb"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/shapefile"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/sigrid"
)

// workerCount bounds how many bundles are processed concurrently.
const workerCount = 4

// Stats summarizes one pipeline run.
type Stats struct {
	Processed int // bundles newly ingested
	Skipped   int // bundles already in the catalog
	Failed    int // bundles that errored (logged, not fatal)
}

// Manager owns the catalog database and the download/convert machinery and
// provides methods to run the pipeline.
type Manager struct {
	config       appconf.IngestConfig
	db           *chartdb.Client
	downloader   *sigrid.Downloader
	logger       *slog.Logger
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// NewManager prepares the output directories, opens the catalog database and
// returns a ready Manager.
func NewManager(config appconf.IngestConfig, logger *slog.Logger) (*Manager, error) {
	for _, dir := range []string{config.GeoJSONDir, config.ZippedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating output directory %s: %w", dir, err)
		}
	}

	db, err := chartdb.NewClient(chartdb.NewConfig(config.CatalogDBPath, config.Env, config.Verbose))
	if err != nil {
		return nil, err
	}

	return &Manager{
		config:       config,
		db:           db,
		downloader:   sigrid.NewDownloader(config.ShapefileBaseURL, logger),
		logger:       logger,
		shutdownChan: make(chan struct{}),
	}, nil
}

// DB exposes the catalog client, mainly for the API server and tests.
func (m *Manager) DB() *chartdb.Client {
	return m.db
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (m *Manager) Shutdown() {
	m.shutdownOnce.Do(func() {
		close(m.shutdownChan)
		m.wg.Wait()
		if m.db != nil {
			_ = m.db.Close()
		}
	})
}

// Run executes one pipeline pass over the manifest at manifestPath and
// re-exports the Parquet indexes when the catalog changed.
func (m *Manager) Run(ctx context.Context, manifestPath string) (Stats, error) {
	bundles, err := sigrid.LoadManifest(manifestPath)
	if err != nil {
		return Stats{}, err
	}

	start := time.Now()
	stats := m.ingestAll(ctx, bundles)

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	if stats.Processed > 0 {
		if err := m.Export(ctx); err != nil {
			return stats, err
		}
	}

	m.logger.Info("ingest_run_complete",
		slog.Int("processed", stats.Processed),
		slog.Int("skipped", stats.Skipped),
		slog.Int("failed", stats.Failed),
		slog.Duration("duration", time.Since(start)))

	return stats, nil
}

// RunPeriodically re-runs the pipeline at the given interval until the
// context is canceled or the manager is shut down. The first run happens
// immediately.
func (m *Manager) RunPeriodically(ctx context.Context, manifestPath string, interval time.Duration) error {
	if _, err := m.Run(ctx, manifestPath); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := m.Run(ctx, manifestPath); err != nil {
				// Log and keep the schedule; transient failures should not
				// kill a long-running ingest.
				m.logger.Error("scheduled ingest run failed", "error", err)
			}
		case <-ctx.Done():
			return ctx.Err()
		case <-m.shutdownChan:
			return nil
		}
	}
}

// Export regenerates both Parquet indexes from the catalog database.
func (m *Manager) Export(ctx context.Context) error {
	zipRows, dailyRows, err := catalog.ExportAll(ctx, m.db,
		m.config.ZipParquetPath, m.config.GroupedParquetPath)
	if err != nil {
		return err
	}

	m.logger.Info("indexes_exported",
		slog.String("zip_index", m.config.ZipParquetPath),
		slog.Int("zip_rows", zipRows),
		slog.String("daily_index", m.config.GroupedParquetPath),
		slog.Int("daily_rows", dailyRows))
	return nil
}

// ingestAll fans the manifest out to a bounded worker pool and serializes
// the resulting catalog rows into the database.
func (m *Manager) ingestAll(ctx context.Context, bundles []string) Stats {
	type outcome struct {
		bundle  *chartdb.Bundle
		skipped bool
		err     error
	}

	names := make(chan string)
	outcomes := make(chan outcome)

	workers := workerCount
	if len(bundles) < workers {
		workers = len(bundles)
	}

	var workerWg sync.WaitGroup
	for i := 0; i < workers; i++ {
		workerWg.Add(1)
		go func() {
			defer workerWg.Done()
			for name := range names {
				b, skipped, err := m.processBundle(ctx, name)
				select {
				case outcomes <- outcome{bundle: b, skipped: skipped, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(names)
		for _, name := range bundles {
			select {
			case names <- name:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		workerWg.Wait()
		close(outcomes)
	}()

	var stats Stats
	for o := range outcomes {
		switch {
		case o.err != nil:
			stats.Failed++
		case o.skipped:
			stats.Skipped++
		default:
			if err := m.db.InsertBundle(ctx, *o.bundle); err != nil {
				m.logger.Error("failed to record bundle", "bundle", o.bundle.Filename, "error", err)
				stats.Failed++
				continue
			}
			stats.Processed++
		}
	}
	return stats
}

// processBundle runs the full per-bundle pipeline: dedupe check, download,
// zip, convert, envelope. Returns skipped=true when the bundle is already
// cataloged.
func (m *Manager) processBundle(ctx context.Context, name string) (*chartdb.Bundle, bool, error) {
	exists, err := m.db.HasBundle(ctx, name)
	if err != nil {
		m.logger.Error("catalog lookup failed", "bundle", name, "error", err)
		return nil, false, err
	}
	if exists {
		return nil, true, nil
	}

	date, err := sigrid.ExtractDate(name)
	if err != nil {
		m.logger.Warn("skipping bundle with invalid name", "bundle", name, "error", err.Error())
		return nil, false, err
	}

	tmpDir, err := os.MkdirTemp("", "sigrid-"+name)
	if err != nil {
		return nil, false, fmt.Errorf("error creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir) // nolint:errcheck

	if err := m.downloader.FetchBundle(ctx, name, tmpDir); err != nil {
		m.logger.Warn("skipping bundle, download failed", "bundle", name, "error", err.Error())
		return nil, false, err
	}

	zipPath := filepath.Join(m.config.ZippedDir, name+".zip")
	if err := archive.ZipDirectory(tmpDir, zipPath); err != nil {
		m.logger.Error("failed to archive bundle", "bundle", name, "error", err)
		return nil, false, err
	}

	geojsonPath := filepath.Join(m.config.GeoJSONDir, name+".geojson")
	result, err := shapefile.Convert(filepath.Join(tmpDir, name+".shp"), geojsonPath)
	if err != nil {
		m.logger.Warn("skipping bundle, conversion failed", "bundle", name, "error", err.Error())
		return nil, false, err
	}

	m.logger.Info("bundle_ingested",
		slog.String("bundle", name),
		slog.String("date", date.Format("2006-01-02")),
		slog.Int("features", result.FeatureCount))

	return &chartdb.Bundle{
		Filename:   name,
		ItemID:     name,
		Date:       date,
		Bounds:     result.Bounds,
		ZipURL:     fmt.Sprintf("%s/%s.zip", m.config.AssetBaseURLZip, name),
		GeoJSONURL: fmt.Sprintf("%s/%s.geojson", m.config.AssetBaseURLGeoJSON, name),
		IngestedAt: time.Now().UTC(),
	}, false, nil
}
