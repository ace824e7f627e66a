package docs

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/masnyjimmy/specdoc/src/ordered"
)

// Canonical converts decoded JSON/YAML values into the raw tree shape used by
// the rest of the pipeline. Integral numbers become int64, other numbers
// float64, so equal documents compare equal whatever text format they came
// from. Unordered Go maps are walked in sorted key order.
func Canonical(v any) any {
	switch t := v.(type) {
	case nil, string, bool, int64:
		return t
	case *ordered.Map[any]:
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return canonicalFloat(f)
	case float64:
		return canonicalFloat(t)
	case float32:
		return canonicalFloat(float64(t))
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case uint:
		return canonicalUint(uint64(t))
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		return canonicalUint(t)
	case yaml.MapSlice:
		out := ordered.New[any]()
		for _, item := range t {
			out.Set(String(Canonical(item.Key)), Canonical(item.Value))
		}
		return out
	case map[string]any:
		out := ordered.New[any]()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			out.Set(k, Canonical(t[k]))
		}
		return out
	case []any:
		out := make([]any, len(t))
		for idx, item := range t {
			out[idx] = Canonical(item)
		}
		return out
	default:
		return fmt.Sprint(t)
	}
}

func canonicalFloat(f float64) any {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}

func canonicalUint(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

// Truthy reports whether v counts as present: null, "", false and 0 do not.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int64:
		return t != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}

// String renders a scalar the way it reads in the document. Mappings and
// sequences have no text form and yield "".
func String(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func AsMap(v any) (*ordered.Map[any], bool) {
	m, ok := v.(*ordered.Map[any])
	return m, ok && m != nil
}

func AsSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// Field returns the value stored under key when v is a mapping.
func Field(v any, key string) any {
	m, ok := AsMap(v)
	if !ok {
		return nil
	}
	value, _ := m.Get(key)
	return value
}

// Plain converts the raw tree into map[string]any / []any values, the
// shape JSON Schema validators expect.
func Plain(v any) any {
	switch t := v.(type) {
	case *ordered.Map[any]:
		if t == nil {
			return nil
		}
		out := make(map[string]any, t.Len())
		for k, item := range t.All() {
			out[k] = Plain(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for idx, item := range t {
			out[idx] = Plain(item)
		}
		return out
	default:
		return t
	}
}
