package lifecore

import (
	"math"
	"strconv"
)

// The three coercers below are the only boundary where untrusted payload
// values are sanitized. Mappers must route every field access through them
// and never touch raw data directly.

// toString keeps strings as-is, stringifies numbers and booleans and
// returns "" for everything else (null, objects, arrays).
func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// toNumber returns finite numbers as-is, parses numeric strings and falls
// back to 0 for anything else. NaN and Infinity never escape.
func toNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ensureArray returns the slice with falsy entries removed, or an empty
// slice for non-array input.
func ensureArray(value any) []any {
	arr, ok := value.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(arr))
	for _, item := range arr {
		if !isFalsy(item) {
			out = append(out, item)
		}
	}
	return out
}

func isFalsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case float64:
		return v == 0 || math.IsNaN(v)
	default:
		return false
	}
}

// field looks a key up in an object-shaped value, nil for anything else.
func field(value any, key string) any {
	if m, ok := value.(map[string]any); ok {
		return m[key]
	}
	return nil
}
