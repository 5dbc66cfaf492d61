package app

import (
	"fmt"

	"github.com/vk/lantern/internal/eval"
)

// toValue converts a configured global into an evaluator value. Strings
// become string literals and true becomes 1, the way a set flag reads in
// MDL. False becomes the empty form.
func toValue(v any) (eval.Value, error) {
	switch v := v.(type) {
	case string:
		return eval.Str(v), nil
	case int64:
		return eval.Int(v), nil
	case int:
		return eval.Int(v), nil
	case bool:
		if v {
			return eval.Int(1), nil
		}
		return eval.False{}, nil
	case []any:
		list := make(eval.List, len(v))
		for i, item := range v {
			iv, err := toValue(item)
			if err != nil {
				return nil, err
			}
			list[i] = iv
		}
		return list, nil
	}
	return nil, fmt.Errorf("unsupported global value of type %T", v)
}

func toValues(m map[string]any) (map[string]eval.Value, error) {
	out := make(map[string]eval.Value, len(m))
	for name, v := range m {
		ev, err := toValue(v)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", name, err)
		}
		out[name] = ev
	}
	return out, nil
}
