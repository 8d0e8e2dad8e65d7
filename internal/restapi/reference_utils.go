package restapi

import (
	"github.com/gtif-cerulean/dmi-ice-charts/internal/chartdb"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/models"
)

func chartEntry(b chartdb.Bundle) models.ChartEntry {
	return models.NewChartEntry(b.ItemID, b.Filename, b.Date, b.Bounds, b.ZipURL, b.GeoJSONURL, b.IngestedAt)
}

// chartEntries maps catalog rows to API entries, always returning a non-nil
// slice so empty results encode as [] rather than null.
func chartEntries(bundles []chartdb.Bundle) []models.ChartEntry {
	entries := make([]models.ChartEntry, 0, len(bundles))
	for _, b := range bundles {
		entries = append(entries, chartEntry(b))
	}
	return entries
}

func chartReferences(bundles []chartdb.Bundle) models.ReferencesModel {
	refs := models.NewEmptyReferences()
	for _, b := range bundles {
		refs.Charts = append(refs.Charts, models.NewChartReference(b.ItemID, b.Date))
	}
	return refs
}
