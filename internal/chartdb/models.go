package chartdb

import (
	"time"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/models"
)

// Bundle represents one ingested ice chart bundle
type Bundle struct {
	Filename   string        // bundle folder name, primary key
	ItemID     string        // catalog item id (same as filename for zip items)
	Date       time.Time     // chart date from the bundle name prefix
	Bounds     models.Bounds // footprint envelope, EPSG:4326
	ZipURL     string        // public URL of the zipped bundle
	GeoJSONURL string        // public URL of the converted vector asset
	IngestedAt time.Time
}
