package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/ralt/ubiconfig/internal/configtypes"
	"github.com/ralt/ubiconfig/internal/models"
	"github.com/ralt/ubiconfig/internal/utils"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultVersion is recorded on configs loaded without an explicit version
const DefaultVersion = "default"

// Loader reads config documents from the filesystem
type Loader struct {
	version string
}

// NewLoader creates a loader that tags every config with version
func NewLoader(version string) *Loader {
	if version == "" {
		version = DefaultVersion
	}
	return &Loader{version: version}
}

// Load loads a single file, or every config document below a directory
func (l *Loader) Load(ctx context.Context, path string) ([]*configtypes.Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &models.ConfigError{Type: models.ErrFileOp, Subject: path, Err: err}
	}

	if info.IsDir() {
		return l.LoadDir(ctx, path)
	}

	cfg, err := l.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return []*configtypes.Config{cfg}, nil
}

// LoadFile reads, decodes and parses one config document
func (l *Loader) LoadFile(ctx context.Context, path string) (*configtypes.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, &models.ConfigError{
			Type:    models.ErrFileOp,
			Subject: path,
			Err:     fmt.Errorf("unsupported config file extension"),
		}
	}

	logrus.Debugf("Loading %s config: %s", format, path)

	data, err := utils.ReadFile(path)
	if err != nil {
		return nil, &models.ConfigError{
			Type:    models.ErrFileOp,
			Subject: path,
			Err:     fmt.Errorf("failed to read config: %w", err),
		}
	}

	return l.LoadBytes(data, format, filepath.Base(path))
}

// LoadBytes decodes and parses an in-memory config document
func (l *Loader) LoadBytes(data []byte, format Format, fileName string) (*configtypes.Config, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, &models.ConfigError{Type: models.ErrDecode, Subject: fileName, Err: err}
	}

	cfg, err := configtypes.LoadConfig(doc, fileName, l.version)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return cfg, nil
}

// LoadDir recursively loads every config document below dir. Files that fail
// to load are skipped and their errors joined into the returned error.
func (l *Loader) LoadDir(ctx context.Context, dir string) ([]*configtypes.Config, error) {
	var (
		configs []*configtypes.Config
		errs    []error
	)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if DetectFormat(path) == FormatUnknown {
			logrus.Debugf("Skipping %s", path)
			return nil
		}

		cfg, err := l.LoadFile(ctx, path)
		if err != nil {
			logrus.Warnf("Failed to load %s: %v", path, err)
			errs = append(errs, err)
			return nil
		}

		configs = append(configs, cfg)
		return nil
	})

	if err != nil {
		return nil, &models.ConfigError{
			Type:    models.ErrFileOp,
			Subject: dir,
			Err:     fmt.Errorf("failed to scan directory: %w", err),
		}
	}

	slices.SortFunc(configs, func(a, b *configtypes.Config) int {
		return strings.Compare(a.FileName, b.FileName)
	})

	logrus.Infof("Loaded %d configs from %s", len(configs), dir)
	return configs, errors.Join(errs...)
}

// Decode converts a serialized document into nested maps and slices
func Decode(data []byte, format Format) (map[string]any, error) {
	var doc map[string]any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return doc, nil
}
