package configtypes

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/ralt/ubiconfig/internal/models"
)

// decodeFields decodes a mapping into out. Numbers are converted to strings
// for string fields, so a numeric stream becomes "8"; every other type
// mismatch is a decode error. Each dotted path in required must be present
// and non-null in input, otherwise a missing-field error prefixed by path is
// returned.
func decodeFields(input any, out any, path string, required ...string) error {
	if isNil(input) {
		if len(required) > 0 {
			return models.NewMissingFieldError(joinPath(path, required[0]))
		}
		return nil
	}

	for _, field := range required {
		if missing(input, field) {
			return models.NewMissingFieldError(joinPath(path, field))
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(numberToString),
		Result:     out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := dec.Decode(input); err != nil {
		return &models.ConfigError{
			Type:    models.ErrDecode,
			Subject: path,
			Err:     err,
		}
	}

	return nil
}

// numberToString renders integers and floats given for a string field
func numberToString(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}

	v := reflect.ValueOf(data)
	switch from.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	default:
		return data, nil
	}
}

// missing reports whether the dotted field path is absent or null in input.
// A path that runs through a non-mapping value is left for the decoder to
// reject.
func missing(input any, field string) bool {
	v := reflect.ValueOf(input)
	for _, key := range strings.Split(field, ".") {
		for v.Kind() == reflect.Interface && !v.IsNil() {
			v = v.Elem()
		}
		if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
			return false
		}
		v = v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !v.IsValid() || isNil(v.Interface()) {
			return true
		}
	}
	return false
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func joinPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
