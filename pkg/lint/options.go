package lint

import (
	"strings"

	"github.com/leapstack-labs/namelint/pkg/core"
)

// GetOption extracts a typed option with a default value.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetIntOption extracts an int option, handling float64 from JSON.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	switch n := opts[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return defaultVal
	}
}

// GetStringOption extracts a string option.
func GetStringOption(opts map[string]any, key string, defaultVal string) string {
	return GetOption(opts, key, defaultVal)
}

// GetBoolOption extracts a bool option. The strings "true" and "false" are
// accepted since env and flag values arrive as text.
func GetBoolOption(opts map[string]any, key string, defaultVal bool) bool {
	switch b := opts[key].(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "1":
			return true
		case "false", "no", "0":
			return false
		}
	}
	return defaultVal
}

// GetStringSliceOption extracts a string slice option. A single string is
// split on commas.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	switch s := opts[key].(type) {
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	case string:
		var result []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
		return result
	default:
		return defaultVal
	}
}

// GetCategoriesOption extracts a list of categories. Unknown names are dropped.
func GetCategoriesOption(opts map[string]any, key string) []core.Category {
	var cats []core.Category
	for _, name := range GetStringSliceOption(opts, key, nil) {
		if c, ok := core.ParseCategory(name); ok {
			cats = append(cats, c)
		}
	}
	return cats
}
