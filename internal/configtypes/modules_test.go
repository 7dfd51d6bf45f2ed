package configtypes

import (
	"errors"
	"testing"

	"github.com/ralt/ubiconfig/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadModuleList(t *testing.T) {
	data := map[string]any{
		"include": []any{
			map[string]any{"name": "nodejs", "stream": 8, "profiles": []any{"interpreter"}},
			map[string]any{"name": "nodejs", "stream": 10},
		},
	}

	md, err := LoadModuleList(data)
	require.NoError(t, err)
	require.Equal(t, 2, md.Len())

	first, err := md.At(0)
	require.NoError(t, err)
	assert.Equal(t, "nodejs", first.Name)
	assert.Equal(t, "8", first.Stream)
	assert.Equal(t, []string{"interpreter"}, first.Profiles)

	second, err := md.At(1)
	require.NoError(t, err)
	assert.Equal(t, "10", second.Stream)
	assert.Empty(t, second.Profiles)
	assert.Equal(t, "<Module: nodejs>", second.String())
}

func TestLoadModuleListFloatStream(t *testing.T) {
	// JSON documents decode numbers as float64
	md, err := LoadModuleList(map[string]any{
		"include": []any{map[string]any{"name": "perl", "stream": float64(5)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "5", md.Whitelist[0].Stream)
}

func TestLoadModuleListMissingInclude(t *testing.T) {
	_, err := LoadModuleList(map[string]any{})
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrMissingField))
	assert.Contains(t, err.Error(), "modules.include")

	_, err = LoadModuleList(nil)
	assert.True(t, models.IsErrorType(err, models.ErrMissingField))
}

func TestLoadModuleListMissingEntryField(t *testing.T) {
	data := map[string]any{
		"include": []any{
			map[string]any{"name": "nodejs", "stream": "10"},
			map[string]any{"name": "ruby"},
		},
	}

	_, err := LoadModuleList(data)
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrMissingField))
	assert.Contains(t, err.Error(), "modules.include[1].stream")
}

func TestLoadModuleListMalformedEntry(t *testing.T) {
	_, err := LoadModuleList(map[string]any{"include": []any{"nodejs"}})
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrDecode))
}

func TestModuleListAt(t *testing.T) {
	md := &ModuleList{Whitelist: []Module{
		NewModule("nodejs", 8),
		NewModule("ruby", "2.5", "common"),
	}}

	last, err := md.At(-1)
	require.NoError(t, err)
	assert.Equal(t, "ruby", last.Name)

	firstFromEnd, err := md.At(-2)
	require.NoError(t, err)
	assert.Equal(t, "nodejs", firstFromEnd.Name)

	for _, i := range []int{2, -3, 100} {
		_, err := md.At(i)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "index %d", i)
	}
}

func TestNewModuleDefaults(t *testing.T) {
	m := NewModule("nodejs", 10)
	assert.Equal(t, "10", m.Stream)
	assert.NotNil(t, m.Profiles)
	assert.Empty(t, m.Profiles)
}

func TestLoadModuleListIncludeNotAList(t *testing.T) {
	_, err := LoadModuleList(map[string]any{
		"include": map[string]any{"name": "nodejs", "stream": 1},
	})
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrDecode))
}

func TestLoadModuleListNullInclude(t *testing.T) {
	_, err := LoadModuleList(map[string]any{"include": nil})
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrMissingField))
	assert.Contains(t, err.Error(), "modules.include")
}

func TestLoadModuleListNullEntryFields(t *testing.T) {
	_, err := LoadModuleList(map[string]any{
		"include": []any{map[string]any{"name": nil, "stream": nil}},
	})
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrMissingField))
	assert.Contains(t, err.Error(), "modules.include[0].name")

	_, err = LoadModuleList(map[string]any{
		"include": []any{map[string]any{"name": "nodejs", "stream": nil}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modules.include[0].stream")
}

func TestLoadModuleListRejectsBoolStream(t *testing.T) {
	_, err := LoadModuleList(map[string]any{
		"include": []any{map[string]any{"name": "nodejs", "stream": true}},
	})
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrDecode))
}

func TestNewModuleCopiesProfiles(t *testing.T) {
	profiles := []string{"common", "devel"}
	m := NewModule("nodejs", 10, profiles...)

	profiles[0] = "minimal"
	assert.Equal(t, []string{"common", "devel"}, m.Profiles)
}
