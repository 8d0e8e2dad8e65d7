// Package chartdb is the SQLite catalog of ingested ice chart bundles.
package chartdb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/gtif-cerulean/dmi-ice-charts/internal/appconf"
)

// Client is the main entry point for the catalog database
type Client struct {
	config Config
	DB     *sql.DB
}

// NewClient opens (or creates) the catalog database described by config.
func NewClient(config Config) (*Client, error) {
	db, err := initDB(config)
	if err != nil {
		return nil, fmt.Errorf("error initializing catalog database: %w", err)
	}

	return &Client{
		config: config,
		DB:     db,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// initDB creates a new SQLite database with the chart bundle table
func initDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("test environment must use an in-memory database, got %s", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// An in-memory SQLite database exists per connection; keep the pool at
	// one connection so every query sees the same data.
	if config.DBPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS chart_bundles (
			filename    TEXT PRIMARY KEY,
			item_id     TEXT NOT NULL,
			date        TEXT NOT NULL,
			min_lon     REAL NOT NULL,
			min_lat     REAL NOT NULL,
			max_lon     REAL NOT NULL,
			max_lat     REAL NOT NULL,
			zip_url     TEXT NOT NULL,
			geojson_url TEXT NOT NULL,
			ingested_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating chart_bundles table: %w", err)
	}

	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_chart_bundles_date ON chart_bundles(date);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}
