package configtypes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ralt/ubiconfig/internal/models"
	"github.com/samber/lo"
)

// Flag is a named config toggle. Value is a bool when the raw value was a
// bool or the string "true"/"false" in any case, otherwise the raw value.
type Flag struct {
	Name  string
	Value any
}

// NewFlag creates a flag from its raw value
func NewFlag(name string, raw any) Flag {
	return Flag{Name: name, Value: coerceFlagValue(raw)}
}

func coerceFlagValue(raw any) any {
	s, ok := raw.(string)
	if !ok {
		return raw
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		return raw
	}
}

// Bool returns the flag value and whether it is a boolean
func (f Flag) Bool() (value bool, ok bool) {
	value, ok = f.Value.(bool)
	return value, ok
}

// Enabled reports whether the flag is the boolean true
func (f Flag) Enabled() bool {
	v, _ := f.Bool()
	return v
}

// FlagSet maps flag names to flags
type FlagSet map[string]Flag

// LoadFlagSet creates one flag per key of data
func LoadFlagSet(data map[string]any) FlagSet {
	set := make(FlagSet, len(data))
	for name, raw := range data {
		set[name] = NewFlag(name, raw)
	}
	return set
}

// Get returns the flag called name
func (s FlagSet) Get(name string) (Flag, error) {
	flag, ok := s[name]
	if !ok {
		return Flag{}, &models.ConfigError{
			Type:    models.ErrAttributeNotFound,
			Subject: name,
			Err:     fmt.Errorf("flag %q is not defined", name),
		}
	}
	return flag, nil
}

// Names returns the flag names in sorted order
func (s FlagSet) Names() []string {
	names := lo.Keys(s)
	slices.Sort(names)
	return names
}

// AsMap returns {name: value} with the stored, coerced values
func (s FlagSet) AsMap() map[string]any {
	return lo.MapValues(s, func(flag Flag, _ string) any {
		return flag.Value
	})
}
