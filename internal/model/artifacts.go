package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadLabels reads the label-encoder export: a JSON array of class names
// where index i names the disease behind probability i.
func LoadLabels(path string) ([]string, error) {
	labels, err := loadStringArray(path)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: %s holds no labels", ErrMalformedArtifact, path)
	}
	return labels, nil
}

// LoadColumns reads the ordered feature-column list the classifier was
// trained on. Column order is a contract with the encoder and must not be
// re-sorted.
func LoadColumns(path string) ([]string, error) {
	columns, err := loadStringArray(path)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s holds no columns", ErrMalformedArtifact, path)
	}
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if seen[c] {
			return nil, fmt.Errorf("%w: duplicate column %q in %s", ErrMalformedArtifact, c, path)
		}
		seen[c] = true
	}
	return columns, nil
}

func loadStringArray(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedArtifact, path, err)
	}
	return out, nil
}
