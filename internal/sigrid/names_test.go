package sigrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	date, err := ExtractDate("20240105_CapeFarewell_RIC")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), date)
}

func TestExtractDateBareDate(t *testing.T) {
	date, err := ExtractDate("20231231")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), date)
}

func TestExtractDateInvalid(t *testing.T) {
	cases := []string{
		"",
		"short",
		"notadate_CapeFarewell",
		"2024-01-05_CapeFarewell", // dashes are not part of the prefix format
		"20241399_BadMonth",
	}
	for _, name := range cases {
		_, err := ExtractDate(name)
		assert.Error(t, err, "expected %q to be rejected", name)
	}
}
