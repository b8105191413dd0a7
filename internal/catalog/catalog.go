// Package catalog loads the operator-edited intent and device catalogs.
// Both files are read once at startup and are immutable afterwards.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// IntentSpec is one named intent with its example phrases.
type IntentSpec struct {
	Name     string   `json:"name"`
	Examples []string `json:"examples"`
}

type intentsFile struct {
	Intents []IntentSpec `json:"intents"`
}

type devicesFile struct {
	Devices []string `json:"devices"`
}

// Catalog bundles both catalogs after load.
type Catalog struct {
	Intents []IntentSpec
	Devices []string
}

// LoadIntents reads the intent catalog. Intent names must be unique.
func LoadIntents(path string) ([]IntentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading intents file: %w", err)
	}

	var f intentsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing intents file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(f.Intents))
	for _, in := range f.Intents {
		if in.Name == "" {
			return nil, fmt.Errorf("intents file %s: intent with empty name", path)
		}
		if seen[in.Name] {
			return nil, fmt.Errorf("intents file %s: duplicate intent name %q", path, in.Name)
		}
		seen[in.Name] = true
	}

	return f.Intents, nil
}

// LoadDevices reads the device catalog.
func LoadDevices(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading devices file: %w", err)
	}

	var f devicesFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing devices file %s: %w", path, err)
	}

	return f.Devices, nil
}

// Load reads both catalogs.
func Load(intentsPath, devicesPath string) (*Catalog, error) {
	intents, err := LoadIntents(intentsPath)
	if err != nil {
		return nil, err
	}

	devices, err := LoadDevices(devicesPath)
	if err != nil {
		return nil, err
	}

	return &Catalog{Intents: intents, Devices: devices}, nil
}
