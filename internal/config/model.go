package config

import (
	"encoding/json"
	"fmt"
	"math"
)

// Model is the unified, format-agnostic representation of a run
// configuration file. Empty strings mean "not set".
type Model struct {
	Input       string
	Output      string
	Format      string
	GraphName   string
	Diagnostics bool
	Color       string
	Style       string
	LogLevel    string
	LogFormat   string

	// Globals seeds the evaluator's global store. Values are string, bool,
	// int64 or []any of those.
	Globals map[string]any
}

// NormalizeGlobal converts a decoded configuration value into one of the
// types Model.Globals allows.
func NormalizeGlobal(v any) (any, error) {
	switch v := v.(type) {
	case string, bool, int64:
		return v, nil
	case int:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d out of range", v)
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
			return nil, fmt.Errorf("number %v is not an integer", v)
		}
		return int64(v), nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("number %s is not an integer", v)
		}
		return i, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			n, err := NormalizeGlobal(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("null is not a valid global value")
	}
	return nil, fmt.Errorf("unsupported global value of type %T", v)
}

// NormalizeGlobals applies NormalizeGlobal to every entry of m.
func NormalizeGlobals(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for name, v := range m {
		n, err := NormalizeGlobal(v)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", name, err)
		}
		out[name] = n
	}
	return out, nil
}
