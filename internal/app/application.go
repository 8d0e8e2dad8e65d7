package app

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/appconf"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/chartdb"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config    appconf.Config
	Logger    *slog.Logger
	CatalogDB *chartdb.Client
}

// RequestHasInvalidAPIKey reports whether the request is missing a valid
// API key. With no keys configured, all requests pass.
func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	if len(app.Config.ApiKeys) == 0 {
		return false
	}

	key := strings.TrimSpace(r.URL.Query().Get("key"))
	if key == "" {
		return true
	}

	for _, allowed := range app.Config.ApiKeys {
		if key == allowed {
			return false
		}
	}
	return true
}
