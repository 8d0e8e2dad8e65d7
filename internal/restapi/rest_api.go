// Package restapi serves the ice chart catalog as a JSON HTTP API.
package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{
		Application: application,
		rateLimiter: NewRateLimitMiddleware(application.Config.RateLimit, time.Second),
	}
}

// Router builds the httprouter with all catalog routes registered.
func (api *RestAPI) Router() *httprouter.Router {
	router := httprouter.New()

	router.Handler(http.MethodGet, "/", http.HandlerFunc(api.indexHandler))
	router.Handler(http.MethodGet, "/api/ice/current-time.json", api.withAPIKey(api.currentTimeHandler))
	router.Handler(http.MethodGet, "/api/ice/charts.json", api.withAPIKey(api.chartsHandler))
	router.Handler(http.MethodGet, "/api/ice/chart/:id", api.withAPIKey(api.chartHandler))
	router.Handler(http.MethodGet, "/api/ice/charts-for-date/:date", api.withAPIKey(api.chartsForDateHandler))
	router.Handler(http.MethodGet, "/api/ice/charts-for-location.json", api.withAPIKey(api.chartsForLocationHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)

	return router
}

// Handler wraps the router with the full middleware chain: security headers,
// compression, request logging, and rate limiting.
func (api *RestAPI) Handler() http.Handler {
	var h http.Handler = api.Router()
	if api.rateLimiter != nil {
		h = api.rateLimiter(h)
	}
	h = NewRequestLoggingMiddleware(api.Logger)(h)
	h = CompressionMiddleware(h)
	h = securityHeaders(h)
	return h
}

// withAPIKey guards a handler behind the API key check.
func (api *RestAPI) withAPIKey(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		next(w, r)
	})
}
