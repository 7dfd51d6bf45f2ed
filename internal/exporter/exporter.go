package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/ralt/ubiconfig/internal/configtypes"
	"github.com/ralt/ubiconfig/internal/loader"
	"github.com/ralt/ubiconfig/internal/models"
	"github.com/ralt/ubiconfig/internal/utils"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Marshal serializes the exported document of cfg in the given format
func Marshal(cfg *configtypes.Config, format loader.Format) ([]byte, error) {
	doc := cfg.ExportMap()

	switch format {
	case loader.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case loader.FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case loader.FormatTOML:
		data, err := toml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
		return data, nil
	default:
		return nil, &models.ConfigError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("unsupported export format: %s", format),
		}
	}
}

// Write stores data at path, gzip-compressed when compress is set
func Write(path string, data []byte, compress bool) error {
	if compress {
		compressed, err := utils.GzipCompress(data)
		if err != nil {
			return fmt.Errorf("failed to compress %s: %w", path, err)
		}
		data = compressed
	}

	if err := utils.WriteFile(path, data, 0644); err != nil {
		return &models.ConfigError{
			Type:    models.ErrFileOp,
			Subject: path,
			Err:     err,
		}
	}

	logrus.Debugf("Wrote %s (%d bytes, sha256 %s)", path, len(data), utils.CalculateChecksum(data))
	return nil
}
