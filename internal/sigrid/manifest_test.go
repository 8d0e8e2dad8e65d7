package sigrid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"list": ["20240105_CapeFarewell_RIC", "20240106_Greenland_WA"]}`), 0o644))

	bundles, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"20240105_CapeFarewell_RIC", "20240106_Greenland_WA"}, bundles)
}

func TestLoadManifestEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"list": []}`), 0o644))

	bundles, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Empty(t, bundles)
}

func TestLoadManifestErrors(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"list": `), 0o644))
	_, err = LoadManifest(path)
	assert.Error(t, err)
}
