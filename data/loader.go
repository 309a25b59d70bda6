// Package data loads the users, categories and products record sets
// the catalog is built from. Sources are read once at startup; nothing
// is ever written back.
package data

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mytheresa/product-categories/models"
)

// Format is the on-disk encoding of a dataset.
type Format int

const (
	// FormatJSON accepts plain JSON and JSONC (comments and trailing
	// commas).
	FormatJSON Format = iota
	FormatYAML
)

// ErrUnsupportedFormat is returned for file extensions with no parser.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

//go:embed fixtures/dataset.jsonc
var defaultDataset []byte

// Parse decodes a dataset. It does not check referential integrity;
// that happens when the records are joined.
func Parse(data []byte, format Format) (models.Dataset, error) {
	var dataset models.Dataset

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &dataset); err != nil {
			return models.Dataset{}, fmt.Errorf("parsing dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &dataset); err != nil {
			return models.Dataset{}, fmt.Errorf("parsing dataset: %w", err)
		}
	default:
		return models.Dataset{}, ErrUnsupportedFormat
	}

	return dataset, nil
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// ReadFile reads and parses the dataset at path.
func ReadFile(path string) (models.Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return models.Dataset{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("reading %s: %w", path, err)
	}

	dataset, err := Parse(content, format)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return dataset, nil
}

// Default returns the dataset embedded in the binary.
func Default() (models.Dataset, error) {
	return Parse(defaultDataset, FormatJSON)
}
