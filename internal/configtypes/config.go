package configtypes

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/ralt/ubiconfig/internal/models"
)

var validate = validator.New()

// Config is one loaded population config document
type Config struct {
	FileName string
	Version  string

	ContentSets *ContentSetMapping
	Arches      []string
	Packages    *PackageList
	Modules     *ModuleList
	Flags       FlagSet
}

type document struct {
	ContentSets map[string]any `mapstructure:"content_sets"`
	Arches      []string       `mapstructure:"arches" validate:"required,min=1,dive,required"`
	Packages    struct {
		Include []string `mapstructure:"include"`
		Exclude []string `mapstructure:"exclude"`
	} `mapstructure:"packages"`
	Modules map[string]any `mapstructure:"modules"`
	Flags   map[string]any `mapstructure:"flags"`
}

// LoadConfig builds a Config from a decoded document. content_sets and arches
// are required; packages, modules and flags default to empty.
func LoadConfig(data map[string]any, fileName, version string) (*Config, error) {
	var doc document
	if err := decodeFields(data, &doc, "", "content_sets", "arches"); err != nil {
		return nil, err
	}

	if err := validate.Struct(doc); err != nil {
		return nil, &models.ConfigError{
			Type:    models.ErrInvalidConfig,
			Subject: "arches",
			Err:     err,
		}
	}

	contentSets, err := LoadContentSetMapping(doc.ContentSets)
	if err != nil {
		return nil, err
	}

	packages, err := NewPackageList(doc.Packages.Include, doc.Packages.Exclude, doc.Arches)
	if err != nil {
		return nil, err
	}

	modules := &ModuleList{Whitelist: []Module{}}
	if doc.Modules != nil {
		modules, err = LoadModuleList(doc.Modules)
		if err != nil {
			return nil, err
		}
	}

	return &Config{
		FileName:    fileName,
		Version:     version,
		ContentSets: contentSets,
		Arches:      doc.Arches,
		Packages:    packages,
		Modules:     modules,
		Flags:       LoadFlagSet(doc.Flags),
	}, nil
}

// ExportMap returns the config in the document shape LoadConfig reads
func (c *Config) ExportMap() map[string]any {
	modules := make([]any, 0, c.Modules.Len())
	for _, m := range c.Modules.Whitelist {
		entry := map[string]any{"name": m.Name, "stream": m.Stream}
		if len(m.Profiles) > 0 {
			entry["profiles"] = slices.Clone(m.Profiles)
		}
		modules = append(modules, entry)
	}

	return map[string]any{
		"content_sets": c.ContentSets.documentMap(),
		"arches":       slices.Clone(c.Arches),
		"packages": map[string]any{
			"include": c.Packages.IncludeSpecs(),
			"exclude": c.Packages.ExcludeSpecs(),
		},
		"modules": map[string]any{"include": modules},
		"flags":   c.Flags.AsMap(),
	}
}

// String returns a short description of the config
func (c *Config) String() string {
	return fmt.Sprintf("%s (%s): %d included, %d excluded, %d modules, %d flags",
		c.FileName, c.Version, len(c.Packages.Whitelist), len(c.Packages.Blacklist),
		c.Modules.Len(), len(c.Flags))
}
