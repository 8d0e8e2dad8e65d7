package restapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexHandler(t *testing.T) {
	api := createTestApi(t)
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	assert.Contains(t, string(body), "/api/ice/charts.json")
}

func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/ice/nope.json?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
	assert.Equal(t, "resource not found", model.Text)
}

func TestRateLimitExceeded(t *testing.T) {
	api := createTestApi(t)
	api.rateLimiter = NewRateLimitMiddleware(1, time.Minute)

	server := httptest.NewServer(api.Handler())
	defer server.Close()

	first, err := http.Get(server.URL + "/api/ice/current-time.json?key=TEST")
	require.NoError(t, err)
	first.Body.Close() // nolint:errcheck
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second, err := http.Get(server.URL + "/api/ice/current-time.json?key=TEST")
	require.NoError(t, err)
	second.Body.Close() // nolint:errcheck
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
	assert.Equal(t, "0", second.Header.Get("X-RateLimit-Remaining"))
}

func TestResponsesAreCompressedWhenAccepted(t *testing.T) {
	api := createTestApi(t)
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/ice/charts.json?key=TEST", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := http.DefaultTransport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
