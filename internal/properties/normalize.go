package properties

import (
	"encoding/json"
	"fmt"
	"math"
)

// Normalize converts v into the supported value set. Sized and unsigned
// integers become int, float32 becomes float64, json.Number becomes int when integral and
// float64 otherwise, and nested maps and slices are normalized recursively.
//
// Any other type fails with an error matching [ErrTypeMismatch].
func Normalize(v any) (any, error) {
	switch t := v.(type) {
	case string, bool, int, float64:
		return t, nil
	case int8:
		return int(t), nil
	case int16:
		return int(t), nil
	case int32:
		return int(t), nil
	case int64:
		if t > math.MaxInt || t < math.MinInt {
			return nil, NewError(CodeTypeMismatch, "integer %d overflows int", t)
		}
		return int(t), nil
	case uint8:
		return int(t), nil
	case uint16:
		return int(t), nil
	case uint32:
		return int(t), nil
	case uint:
		if t > math.MaxInt {
			return nil, NewError(CodeTypeMismatch, "integer %d overflows int", t)
		}
		return int(t), nil
	case uint64:
		if t > math.MaxInt {
			return nil, NewError(CodeTypeMismatch, "integer %d overflows int", t)
		}
		return int(t), nil
	case float32:
		return float64(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Normalize(i)
		}
		f, err := t.Float64()
		if err != nil {
			return nil, WrapError(CodeTypeMismatch, err, "invalid number %q", t.String())
		}
		return f, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, nested := range t {
			nv, err := Normalize(nested)
			if err != nil {
				return nil, fmt.Errorf("key [%s]: %w", k, err)
			}
			out[k] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, nested := range t {
			nv, err := Normalize(nested)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = nv
		}
		return out, nil
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, nil
	default:
		return nil, NewError(CodeTypeMismatch, "unsupported property value type %T", v)
	}
}
