package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/namelint/pkg/core"
)

func TestGetIntOption(t *testing.T) {
	opts := map[string]any{"int": 3, "float": 4.0, "int64": int64(5), "string": "6"}

	assert.Equal(t, 3, GetIntOption(opts, "int", 0))
	assert.Equal(t, 4, GetIntOption(opts, "float", 0))
	assert.Equal(t, 5, GetIntOption(opts, "int64", 0))
	assert.Equal(t, 9, GetIntOption(opts, "string", 9))
	assert.Equal(t, 9, GetIntOption(nil, "int", 9))
}

func TestGetBoolOption(t *testing.T) {
	opts := map[string]any{"on": true, "text": "false", "junk": "maybe"}

	assert.True(t, GetBoolOption(opts, "on", false))
	assert.False(t, GetBoolOption(opts, "text", true))
	assert.True(t, GetBoolOption(opts, "junk", true))
	assert.True(t, GetBoolOption(nil, "on", true))
}

func TestGetStringSliceOption(t *testing.T) {
	opts := map[string]any{
		"slice":  []string{"a", "b"},
		"any":    []any{"c", 1, "d"},
		"csv":    "e, f,,g",
		"number": 7,
	}

	assert.Equal(t, []string{"a", "b"}, GetStringSliceOption(opts, "slice", nil))
	assert.Equal(t, []string{"c", "d"}, GetStringSliceOption(opts, "any", nil))
	assert.Equal(t, []string{"e", "f", "g"}, GetStringSliceOption(opts, "csv", nil))
	assert.Equal(t, []string{"x"}, GetStringSliceOption(opts, "number", []string{"x"}))
}

func TestGetCategoriesOption(t *testing.T) {
	opts := map[string]any{"cats": []any{"component", "type", "widget"}}

	assert.Equal(t,
		[]core.Category{core.CategoryComponent, core.CategoryTypeOrInterface},
		GetCategoriesOption(opts, "cats"))
	assert.Empty(t, GetCategoriesOption(nil, "cats"))
}

func TestGetOption(t *testing.T) {
	opts := map[string]any{"name": "value", "count": 2}

	assert.Equal(t, "value", GetOption(opts, "name", "default"))
	assert.Equal(t, "default", GetOption(opts, "count", "default"))
	assert.Equal(t, "default", GetStringOption(nil, "name", "default"))
}
