package notion

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a serialization of wire blocks on disk or stdout
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format '%s': must be json or yaml", s)
}

// FormatFromPath picks a format from a file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Marshal encodes v in the given format
func Marshal(v any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return data, nil
	case FormatJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json: %w", err)
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported format '%s'", format)
}

// Unmarshal decodes data in the given format into v
func Unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse yaml: %w", err)
		}
		return nil
	case FormatJSON, "":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported format '%s'", format)
}

// DecodeBlocks reads either a bare block list or a page with children.
// JSON input is checked with ValidateJSON first.
func DecodeBlocks(data []byte, format Format) ([]Block, error) {
	if format == FormatJSON || format == "" {
		if err := ValidateJSON(data); err != nil {
			return nil, err
		}
	}

	var list []Block
	if err := Unmarshal(data, format, &list); err == nil {
		return list, nil
	}

	var page Page
	if err := Unmarshal(data, format, &page); err != nil {
		return nil, err
	}
	return page.Children, nil
}
