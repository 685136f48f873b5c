package main

import (
	"fmt"

	"github.com/yajbe-format/yajbe-go"
)

// fromJSON converts a value produced by encoding/json.Unmarshal(data,
// &v) (with v declared as `any`) into a yajbe.Value tree. JSON's number
// type is ambiguous (int vs float); this picks Int when the value has
// no fractional part and fits an int64, Float64 otherwise.
func fromJSON(v any) yajbe.Value {
	switch vt := v.(type) {
	case nil:
		return yajbe.Null{}
	case bool:
		return yajbe.Bool(vt)
	case float64:
		if i := int64(vt); float64(i) == vt {
			return yajbe.Int(i)
		}
		return yajbe.Float64(vt)
	case string:
		return yajbe.String(vt)
	case []any:
		arr := make(yajbe.Array, len(vt))
		for i, e := range vt {
			arr[i] = fromJSON(e)
		}
		return arr
	case map[string]any:
		m := yajbe.Map{}
		for k, e := range vt {
			m[k] = fromJSON(e)
		}
		return m
	default:
		return yajbe.String(fmt.Sprintf("%v", vt))
	}
}

// toJSON is fromJSON's inverse, producing a tree encoding/json.Marshal
// can serialize directly.
func toJSON(v yajbe.Value) any {
	switch vt := v.(type) {
	case nil, yajbe.Null:
		return nil
	case yajbe.Bool:
		return bool(vt)
	case yajbe.Int:
		return int64(vt)
	case yajbe.Float32:
		return float32(vt)
	case yajbe.Float64:
		return float64(vt)
	case yajbe.String:
		return string(vt)
	case yajbe.Bytes:
		return []byte(vt)
	case yajbe.Array:
		out := make([]any, len(vt))
		for i, e := range vt {
			out[i] = toJSON(e)
		}
		return out
	case yajbe.Map:
		out := make(map[string]any, len(vt))
		for k, e := range vt {
			out[k] = toJSON(e)
		}
		return out
	case yajbe.OrderedMap:
		out := make(map[string]any, len(vt))
		for _, p := range vt {
			out[p.Key] = toJSON(p.Val)
		}
		return out
	default:
		return fmt.Sprintf("%v", v)
	}
}
