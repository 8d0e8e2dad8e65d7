package sigrid

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/logging"
)

// Downloader fetches shapefile bundles from the SIGRID-3 archive. Requests
// are throttled with a token bucket so bulk backfills stay polite to the DMI
// download server.
type Downloader struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewDownloader creates a Downloader rooted at baseURL (the year-qualified
// archive root).
func NewDownloader(baseURL string, logger *slog.Logger) *Downloader {
	return &Downloader{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
		// 5 requests per second with a burst matching one sidecar set.
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), len(SidecarExtensions)),
		logger:  logger,
	}
}

// FetchBundle downloads the sidecar set for the named bundle into dest.
// Missing sidecars are logged as warnings; the fetch fails only when the .shp
// itself cannot be retrieved, since nothing downstream can work without it.
func (d *Downloader) FetchBundle(ctx context.Context, bundle string, dest string) error {
	gotShp := false

	for _, ext := range SidecarExtensions {
		url := fmt.Sprintf("%s/%s/%s%s", d.baseURL, bundle, bundle, ext)
		local := filepath.Join(dest, bundle+ext)

		err := d.fetchFile(ctx, url, local)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			d.logger.Warn("missing sidecar", "bundle", bundle, "url", url, "error", err.Error())
			continue
		}
		if ext == ".shp" {
			gotShp = true
		}
	}

	if !gotShp {
		return fmt.Errorf("bundle %s: no .shp retrieved", bundle)
	}
	return nil
}

func (d *Downloader) fetchFile(ctx context.Context, url, local string) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("error downloading %s: %w", url, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, d.logger, "sidecar_response_body")

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	f, err := os.Create(local)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", local, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return fmt.Errorf("error writing %s: %w", local, err)
	}
	return f.Close()
}
