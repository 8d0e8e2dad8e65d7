package restapi

import (
	"net/http"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/models"
)

func (api *RestAPI) chartsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	bundles, err := api.CatalogDB.ListBundles(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(chartEntries(bundles), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
