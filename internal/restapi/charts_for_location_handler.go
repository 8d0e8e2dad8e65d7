package restapi

import (
	"net/http"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/models"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/utils"
)

// chartsForLocationHandler returns the charts whose footprint intersects the
// query box given by lat/lon center and latSpan/lonSpan extents.
func (api *RestAPI) chartsForLocationHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	lat, fieldErrors := utils.ParseFloatParam(queryParams, "lat", nil)
	lon, fieldErrors := utils.ParseFloatParam(queryParams, "lon", fieldErrors)
	latSpan, fieldErrors := utils.ParseFloatParam(queryParams, "latSpan", fieldErrors)
	lonSpan, fieldErrors := utils.ParseFloatParam(queryParams, "lonSpan", fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	box := models.BoundsAround(lat, lon, latSpan, lonSpan)
	bundles, err := api.CatalogDB.ListBundlesIntersecting(r.Context(), box)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(chartEntries(bundles), chartReferences(bundles))
	api.sendResponse(w, r, response)
}
