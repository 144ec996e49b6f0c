package widget

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/glance"
)

// Options holds the kind specific settings of a widget. Values come from
// YAML or TOML decoding, so numbers may be any integer or float type and
// booleans may be strings.
type Options map[string]any

// String returns the option as a string, or def when it is absent.
func (o Options) String(key, def string) string {
	v, ok := o[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Float returns the option as a float64, or def when it is absent or not
// numeric.
func (o Options) Float(key string, def float64) float64 {
	switch v := o[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

// Int returns the option as an int, truncating floats.
func (o Options) Int(key string, def int) int {
	if _, ok := o[key]; !ok {
		return def
	}
	return int(o.Float(key, float64(def)))
}

// Bool returns the option as a bool, or def when it is absent.
func (o Options) Bool(key string, def bool) bool {
	switch v := o[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}

// Color returns the option parsed as a hex color, or def.
func (o Options) Color(key string, def glance.Color) glance.Color {
	switch v := o[key].(type) {
	case glance.Color:
		return v
	case string:
		if c, err := glance.ParseHex(v); err == nil {
			return c
		}
	}
	return def
}

// List returns the option as a list, or nil when it is absent or not a
// list.
func (o Options) List(key string) []any {
	switch v := o[key].(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	}
	return nil
}

// asOptions converts a nested YAML or TOML table to Options.
func asOptions(v any) (Options, bool) {
	switch m := v.(type) {
	case Options:
		return m, true
	case map[string]any:
		return Options(m), true
	}
	return nil, false
}
