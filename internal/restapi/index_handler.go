package restapi

import (
	"fmt"
	"net/http"
)

// indexHandler serves a plain text service index at the root.
func (api *RestAPI) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "DMI ice charts catalog API")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "GET /api/ice/current-time.json")
	fmt.Fprintln(w, "GET /api/ice/charts.json")
	fmt.Fprintln(w, "GET /api/ice/chart/{id}")
	fmt.Fprintln(w, "GET /api/ice/charts-for-date/{YYYY-MM-DD}")
	fmt.Fprintln(w, "GET /api/ice/charts-for-location.json?lat=&lon=&latSpan=&lonSpan=")
}
