package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/app"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/appconf"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/chartdb"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/logging"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/models"
)

// createTestApi creates a RestAPI backed by an in-memory catalog seeded with
// three bundles across two days.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	db, err := chartdb.NewClient(chartdb.NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	jan5 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	jan6 := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.InsertBundleBatch(context.Background(), []chartdb.Bundle{
		{
			Filename:   "20240105_CapeFarewell_RIC",
			ItemID:     "20240105_CapeFarewell_RIC",
			Date:       jan5,
			Bounds:     models.Bounds{MinLon: -48, MinLat: 58, MaxLon: -42, MaxLat: 61},
			ZipURL:     "https://assets.example.com/zips/20240105_CapeFarewell_RIC.zip",
			GeoJSONURL: "https://assets.example.com/daily/20240105_CapeFarewell_RIC.geojson",
			IngestedAt: time.Now(),
		},
		{
			Filename:   "20240105_Greenland_NE",
			ItemID:     "20240105_Greenland_NE",
			Date:       jan5,
			Bounds:     models.Bounds{MinLon: -30, MinLat: 70, MaxLon: -15, MaxLat: 82},
			ZipURL:     "https://assets.example.com/zips/20240105_Greenland_NE.zip",
			GeoJSONURL: "https://assets.example.com/daily/20240105_Greenland_NE.geojson",
			IngestedAt: time.Now(),
		},
		{
			Filename:   "20240106_Baltic",
			ItemID:     "20240106_Baltic",
			Date:       jan6,
			Bounds:     models.Bounds{MinLon: 9, MinLat: 53, MaxLon: 31, MaxLat: 66},
			ZipURL:     "https://assets.example.com/zips/20240106_Baltic.zip",
			GeoJSONURL: "https://assets.example.com/daily/20240106_Baltic.geojson",
			IngestedAt: time.Now(),
		},
	}))

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.Test,
			ApiKeys:   []string{"TEST"},
			RateLimit: 100,
		},
		Logger:    logging.NewStructuredLogger(io.Discard, slog.LevelError),
		CatalogDB: db,
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// dataMap pulls the data object out of a decoded envelope.
func dataMap(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func listFromData(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	list, ok := dataMap(t, model)["list"].([]interface{})
	require.True(t, ok)
	return list
}

func entryFromData(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	entry, ok := dataMap(t, model)["entry"].(map[string]interface{})
	require.True(t, ok)
	return entry
}
