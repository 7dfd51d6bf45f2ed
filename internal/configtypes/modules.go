package configtypes

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIndexOutOfRange is returned by ModuleList.At for an index outside the list
var ErrIndexOutOfRange = errors.New("module index out of range")

// Module is one modular stream entry of a config
type Module struct {
	Name     string
	Stream   string
	Profiles []string
}

// NewModule creates a module. The stream is converted to its string form, so
// a stream given as 8 is stored as "8". profiles is copied.
func NewModule(name string, stream any, profiles ...string) Module {
	owned := slices.Clone(profiles)
	if owned == nil {
		owned = []string{}
	}
	return Module{
		Name:     name,
		Stream:   fmt.Sprint(stream),
		Profiles: owned,
	}
}

// String returns the diagnostic form of the module
func (m Module) String() string {
	return fmt.Sprintf("<Module: %s>", m.Name)
}

type moduleEntry struct {
	Name     string   `mapstructure:"name"`
	Stream   string   `mapstructure:"stream"`
	Profiles []string `mapstructure:"profiles"`
}

// ModuleList is the ordered module whitelist of a config
type ModuleList struct {
	Whitelist []Module
}

// LoadModuleList reads data["include"], a list of {name, stream, profiles}
// mappings. name and stream are required.
func LoadModuleList(data map[string]any) (*ModuleList, error) {
	var raw struct {
		Include []any `mapstructure:"include"`
	}
	if err := decodeFields(data, &raw, "modules", "include"); err != nil {
		return nil, err
	}

	list := &ModuleList{Whitelist: make([]Module, 0, len(raw.Include))}
	for i, item := range raw.Include {
		var entry moduleEntry
		path := fmt.Sprintf("modules.include[%d]", i)
		if err := decodeFields(item, &entry, path, "name", "stream"); err != nil {
			return nil, err
		}
		list.Whitelist = append(list.Whitelist, NewModule(entry.Name, entry.Stream, entry.Profiles...))
	}

	return list, nil
}

// Len returns the number of modules
func (l *ModuleList) Len() int {
	return len(l.Whitelist)
}

// At returns the module at index i. Negative indices count from the end.
func (l *ModuleList) At(i int) (Module, error) {
	n := len(l.Whitelist)
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return Module{}, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
	}
	return l.Whitelist[idx], nil
}
