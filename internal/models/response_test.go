package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOKResponse(t *testing.T) {
	response := NewOKResponse("payload")

	assert.Equal(t, 200, response.Code)
	assert.Equal(t, "OK", response.Text)
	assert.Equal(t, 2, response.Version)
	assert.Equal(t, "payload", response.Data)

	now := time.Now().UnixMilli()
	assert.InDelta(t, now, response.CurrentTime, 5000)
}

func TestNewEntryResponse(t *testing.T) {
	entry := NewChartEntry(
		"20240105_CapeFarewell_RIC",
		"20240105_CapeFarewell_RIC",
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Bounds{MinLon: -48, MinLat: 58, MaxLon: -42, MaxLat: 61},
		"https://assets.example.com/zips/20240105_CapeFarewell_RIC.zip",
		"https://assets.example.com/daily/20240105_CapeFarewell_RIC.geojson",
		time.Now(),
	)

	response := NewEntryResponse(entry, NewEmptyReferences())
	data, ok := response.Data.(EntryData)
	require.True(t, ok)

	got, ok := data.Entry.(ChartEntry)
	require.True(t, ok)
	assert.Equal(t, "20240105_CapeFarewell_RIC", got.ID)
	assert.Equal(t, "2024-01-05", got.Date)
	assert.NotEmpty(t, got.EncodedPolygon)
	assert.Empty(t, data.References.Charts)
}

func TestNewListResponse(t *testing.T) {
	refs := NewEmptyReferences()
	refs.Charts = append(refs.Charts, NewChartReference("20240105_CapeFarewell_RIC", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))

	response := NewListResponse([]string{"a", "b"}, refs)
	data, ok := response.Data.(ListData)
	require.True(t, ok)

	assert.Equal(t, []string{"a", "b"}, data.List)
	require.Len(t, data.References.Charts, 1)
	assert.Equal(t, "2024-01-05", data.References.Charts[0].Date)
}

func TestNewCurrentTimeData(t *testing.T) {
	at := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)
	data := NewCurrentTimeData(at)

	assert.Equal(t, "2024-03-10T12:30:00Z", data.Entry.ReadableTime)
	assert.Equal(t, at.UnixMilli(), data.Entry.Time)
	assert.Empty(t, data.References.Charts)
}
