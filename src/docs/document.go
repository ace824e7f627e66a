package docs

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	// FormatAuto tries JSON first and falls back to YAML.
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatYAML:
		return "YAML"
	default:
		return "JSON/YAML"
	}
}

// FormatFromPath selects JSON for ".json" files and YAML for anything else.
func FormatFromPath(name string) Format {
	if strings.ToLower(filepath.Ext(name)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes text into a raw document tree. Mappings become
// *ordered.Map[any] in document order, sequences []any, numbers int64 or
// float64.
func Parse(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		value, err := parseJSON(data)
		if err != nil {
			return nil, &ParseError{Format: FormatJSON, Err: err}
		}
		return value, nil
	case FormatYAML:
		value, err := parseYAML(data)
		if err != nil {
			return nil, &ParseError{Format: FormatYAML, Err: err}
		}
		return value, nil
	case FormatAuto:
		if value, err := parseJSON(data); err == nil {
			return value, nil
		}

		value, err := parseYAML(data)
		if err != nil {
			return nil, &ParseError{Format: FormatAuto, Err: err}
		}
		return value, nil
	default:
		return nil, fmt.Errorf("unknown document format: %d", format)
	}
}

// ParseString is Parse for text bodies.
func ParseString(text string, format Format) (any, error) {
	return Parse([]byte(text), format)
}
