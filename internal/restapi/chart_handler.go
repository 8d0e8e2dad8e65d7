package restapi

import (
	"errors"
	"net/http"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/chartdb"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/models"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/utils"
)

func (api *RestAPI) chartHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)

	bundle, err := api.CatalogDB.GetBundle(r.Context(), id)
	if errors.Is(err, chartdb.ErrBundleNotFound) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(chartEntry(bundle), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
