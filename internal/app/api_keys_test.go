package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/appconf"
)

func TestRequestHasInvalidAPIKey(t *testing.T) {
	application := &Application{
		Config: appconf.Config{ApiKeys: []string{"TEST", "prod-key"}},
	}

	tests := []struct {
		name    string
		target  string
		invalid bool
	}{
		{"valid key", "/api/ice/charts.json?key=TEST", false},
		{"second valid key", "/api/ice/charts.json?key=prod-key", false},
		{"wrong key", "/api/ice/charts.json?key=nope", true},
		{"missing key", "/api/ice/charts.json", true},
		{"blank key", "/api/ice/charts.json?key=", true},
		{"padded key", "/api/ice/charts.json?key=%20TEST%20", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.target, nil)
			assert.Equal(t, tc.invalid, application.RequestHasInvalidAPIKey(r))
		})
	}
}

func TestRequestHasInvalidAPIKeyNoKeysConfigured(t *testing.T) {
	application := &Application{}

	r := httptest.NewRequest("GET", "/api/ice/charts.json", nil)
	assert.False(t, application.RequestHasInvalidAPIKey(r))
}
