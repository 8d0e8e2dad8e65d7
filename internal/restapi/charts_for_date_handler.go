package restapi

import (
	"net/http"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/models"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/utils"
)

func (api *RestAPI) chartsForDateHandler(w http.ResponseWriter, r *http.Request) {
	raw := utils.ExtractParam(r, "date")

	date, err := utils.ParseDateParam(raw)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"date": {"Invalid field value for field \"date\", want YYYY-MM-DD."},
		})
		return
	}

	bundles, err := api.CatalogDB.ListBundlesForDate(r.Context(), date)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(chartEntries(bundles), chartReferences(bundles))
	api.sendResponse(w, r, response)
}
