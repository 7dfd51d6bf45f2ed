package loader

import (
	"path/filepath"
	"strings"
)

// Format represents a config document encoding
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatJSON
	FormatTOML
)

// String returns the string representation of Format
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name as given on the command line
func ParseFormat(name string) Format {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	case "toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

// DetectFormat determines the document format from the file extension.
// A trailing .gz is ignored, compressed files are detected by content.
func DetectFormat(path string) Format {
	base := strings.TrimSuffix(filepath.Base(path), ".gz")
	return ParseFormat(strings.TrimPrefix(filepath.Ext(base), "."))
}
