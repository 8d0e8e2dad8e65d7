package chartdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/models"
)

const dateLayout = "2006-01-02"

// ErrBundleNotFound is returned when a lookup misses.
var ErrBundleNotFound = errors.New("bundle not found")

const bundleColumns = `filename, item_id, date, min_lon, min_lat, max_lon, max_lat, zip_url, geojson_url, ingested_at`

// HasBundle reports whether the named bundle has already been ingested.
func (c *Client) HasBundle(ctx context.Context, filename string) (bool, error) {
	var n int
	err := c.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM chart_bundles WHERE filename = ?`, filename).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("error checking bundle %s: %w", filename, err)
	}
	return n > 0, nil
}

// InsertBundle records a single ingested bundle.
func (c *Client) InsertBundle(ctx context.Context, b Bundle) error {
	_, err := c.DB.ExecContext(ctx, `
		INSERT OR REPLACE INTO chart_bundles (
			filename, item_id, date, min_lon, min_lat, max_lon, max_lat,
			zip_url, geojson_url, ingested_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		b.Filename, b.ItemID, b.Date.Format(dateLayout),
		b.Bounds.MinLon, b.Bounds.MinLat, b.Bounds.MaxLon, b.Bounds.MaxLat,
		b.ZipURL, b.GeoJSONURL, b.IngestedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("error inserting bundle %s: %w", b.Filename, err)
	}
	return nil
}

// InsertBundleBatch records multiple bundles in one transaction.
func (c *Client) InsertBundleBatch(ctx context.Context, bundles []Bundle) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO chart_bundles (
			filename, item_id, date, min_lon, min_lat, max_lon, max_lat,
			zip_url, geojson_url, ingested_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, b := range bundles {
		_, err := stmt.Exec(
			b.Filename, b.ItemID, b.Date.Format(dateLayout),
			b.Bounds.MinLon, b.Bounds.MinLat, b.Bounds.MaxLon, b.Bounds.MaxLat,
			b.ZipURL, b.GeoJSONURL, b.IngestedAt.UnixMilli(),
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting bundle %s: %w", b.Filename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// GetBundle returns the named bundle, or ErrBundleNotFound.
func (c *Client) GetBundle(ctx context.Context, filename string) (Bundle, error) {
	row := c.DB.QueryRowContext(ctx,
		`SELECT `+bundleColumns+` FROM chart_bundles WHERE filename = ?`, filename)

	b, err := scanBundle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Bundle{}, ErrBundleNotFound
	}
	if err != nil {
		return Bundle{}, fmt.Errorf("error loading bundle %s: %w", filename, err)
	}
	return b, nil
}

// ListBundles returns all bundles ordered by date, then filename.
func (c *Client) ListBundles(ctx context.Context) ([]Bundle, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT `+bundleColumns+` FROM chart_bundles ORDER BY date, filename`)
	if err != nil {
		return nil, fmt.Errorf("error listing bundles: %w", err)
	}
	return collectBundles(rows)
}

// ListBundlesForDate returns the bundles charted on the given day.
func (c *Client) ListBundlesForDate(ctx context.Context, date time.Time) ([]Bundle, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT `+bundleColumns+` FROM chart_bundles WHERE date = ? ORDER BY filename`,
		date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("error listing bundles for date: %w", err)
	}
	return collectBundles(rows)
}

// ListBundlesIntersecting returns the bundles whose footprint overlaps the
// given box, ordered by date then filename.
func (c *Client) ListBundlesIntersecting(ctx context.Context, box models.Bounds) ([]Bundle, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT `+bundleColumns+` FROM chart_bundles
		WHERE min_lon <= ? AND ? <= max_lon AND min_lat <= ? AND ? <= max_lat
		ORDER BY date, filename`,
		box.MaxLon, box.MinLon, box.MaxLat, box.MinLat)
	if err != nil {
		return nil, fmt.Errorf("error querying bundles by location: %w", err)
	}
	return collectBundles(rows)
}

// ListDates returns the distinct chart dates present in the catalog, ascending.
func (c *Client) ListDates(ctx context.Context) ([]time.Time, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT DISTINCT date FROM chart_bundles ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("error listing dates: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var dates []time.Time
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("error scanning date: %w", err)
		}
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("error parsing stored date %q: %w", s, err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// CountBundles returns the number of cataloged bundles.
func (c *Client) CountBundles(ctx context.Context) (int, error) {
	var n int
	if err := c.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM chart_bundles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting bundles: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBundle(row rowScanner) (Bundle, error) {
	var b Bundle
	var date string
	var ingestedAt int64

	err := row.Scan(
		&b.Filename, &b.ItemID, &date,
		&b.Bounds.MinLon, &b.Bounds.MinLat, &b.Bounds.MaxLon, &b.Bounds.MaxLat,
		&b.ZipURL, &b.GeoJSONURL, &ingestedAt,
	)
	if err != nil {
		return Bundle{}, err
	}

	b.Date, err = time.Parse(dateLayout, date)
	if err != nil {
		return Bundle{}, fmt.Errorf("error parsing stored date %q: %w", date, err)
	}
	b.IngestedAt = time.UnixMilli(ingestedAt).UTC()
	return b, nil
}

func collectBundles(rows *sql.Rows) ([]Bundle, error) {
	defer rows.Close() // nolint:errcheck

	var bundles []Bundle
	for rows.Next() {
		b, err := scanBundle(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning bundle: %w", err)
		}
		bundles = append(bundles, b)
	}
	return bundles, rows.Err()
}
