package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed plants.json
var defaultPlants []byte

var ErrEmptyCatalog = errors.New("plant catalog has no plants")

type plantFile struct {
	Plants []Plant `json:"plants" yaml:"plants"`
}

// LoadPlants reads a catalog file. YAML is chosen by a .yaml/.yml extension,
// everything else is parsed as JSON. An empty path loads the built-in catalog.
func LoadPlants(path string) ([]Plant, error) {
	if path == "" {
		return ParsePlants(defaultPlants, false)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plant catalog: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	return ParsePlants(data, ext == ".yaml" || ext == ".yml")
}

func ParsePlants(data []byte, isYAML bool) ([]Plant, error) {
	var file plantFile

	var err error
	if isYAML {
		err = yaml.Unmarshal(data, &file)
	} else {
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("parse plant catalog: %w", err)
	}

	if len(file.Plants) == 0 {
		return nil, ErrEmptyCatalog
	}

	for i, p := range file.Plants {
		if p.Name == "" {
			return nil, fmt.Errorf("plant %d: missing name", i)
		}
	}

	return file.Plants, nil
}
