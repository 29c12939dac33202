package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a property document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension. Unknown extensions
// are treated as TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// ParseSection decodes a property document and returns the named section.
// An empty section name selects the top level. Keys are kept verbatim, so
// case-sensitive alias names survive. A missing section yields an empty map.
func ParseSection(data []byte, format Format, section string) (map[string]any, error) {
	doc := make(map[string]any)

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if section == "" {
		return doc, nil
	}

	raw, ok := doc[section]
	if !ok || raw == nil {
		return map[string]any{}, nil
	}

	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("section %q is a %T, not a table", section, raw)
	}
	return entries, nil
}

// EncodeSections renders sections as a TOML document.
func EncodeSections(sections map[string]map[string]any) ([]byte, error) {
	out, err := toml.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("failed to encode toml: %w", err)
	}
	return out, nil
}
