// Package sigrid handles access to the DMI SIGRID-3 ice chart archive:
// bundle naming conventions, the ingest manifest, and downloading the
// shapefile sidecar sets.
package sigrid

import (
	"fmt"
	"time"
)

// SidecarExtensions lists the files that make up a published shapefile
// bundle. Only the .shp itself is mandatory for conversion.
var SidecarExtensions = []string{".shp", ".shx", ".dbf", ".prj", ".cpg"}

// ExtractDate parses the leading YYYYMMDD of a bundle folder name, e.g.
// "20240105_CapeFarewell_RIC".
func ExtractDate(bundle string) (time.Time, error) {
	if len(bundle) < 8 {
		return time.Time{}, fmt.Errorf("bundle name %q too short for a date prefix", bundle)
	}

	t, err := time.Parse("20060102", bundle[:8])
	if err != nil {
		return time.Time{}, fmt.Errorf("bundle name %q has no valid date prefix: %w", bundle, err)
	}
	return t, nil
}
