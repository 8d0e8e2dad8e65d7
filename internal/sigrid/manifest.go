package sigrid

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest names the bundles the pipeline should consider for ingestion.
type Manifest struct {
	List []string `json:"list"`
}

// LoadManifest reads a manifest JSON document from path.
func LoadManifest(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("error parsing manifest: %w", err)
	}
	return m.List, nil
}
