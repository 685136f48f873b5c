// Package structmap converts between Go structs and yajbe.Value trees
// via reflection, the way the teacher library's encode.go walks a
// struct with encodeStruct/encodeVal and misc.go's indirect/isEmptyValue
// helpers, generalized here from BSON's fixed element set to YAJBE's
// Value union and renamed to a "yajbe" struct tag.
package structmap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/yajbe-format/yajbe-go"
)

// ToValue converts src, which must be a struct or pointer to struct,
// into a yajbe.Map. Fields are named by their Go name unless overridden
// by a `yajbe:"name"` tag; `yajbe:"-"` skips a field; `yajbe:",omitempty"`
// (or `yajbe:"name,omitempty"`) skips a field holding its zero value.
func ToValue(src any) (yajbe.Value, error) {
	return toValue("", reflect.ValueOf(src))
}

func toValue(path string, rv reflect.Value) (yajbe.Value, error) {
	rv = indirect(rv)
	if !rv.IsValid() {
		return yajbe.Null{}, nil
	}

	if doc, ok := rv.Interface().(yajbe.Doc); ok {
		return doc, nil
	}

	switch rv.Kind() {
	case reflect.Struct:
		return structToMap(path, rv)
	case reflect.Map:
		return mapToValue(path, rv)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return yajbe.Bytes(rv.Bytes()), nil
		}
		return sliceToArray(path, rv)
	case reflect.String:
		return yajbe.String(rv.String()), nil
	case reflect.Bool:
		return yajbe.Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return yajbe.Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return yajbe.Int(int64(rv.Uint())), nil
	case reflect.Float32:
		return yajbe.Float32(rv.Float()), nil
	case reflect.Float64:
		return yajbe.Float64(rv.Float()), nil
	}
	return nil, fmt.Errorf("%s: cannot encode %s", path, rv.Type())
}

func structToMap(path string, rv reflect.Value) (yajbe.Value, error) {
	out := yajbe.Map{}
	t := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		name := field.Name
		fv := rv.Field(i)

		if tag, ok := field.Tag.Lookup("yajbe"); ok {
			tok := strings.Split(tag, ",")
			if tok[0] == "-" {
				continue
			}
			if tok[0] != "" {
				name = tok[0]
			}
			if len(tok) == 2 && tok[1] == "omitempty" && isEmptyValue(fv) {
				continue
			}
		}

		v, err := toValue(catpath(path, name), fv)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

func mapToValue(path string, rv reflect.Value) (yajbe.Value, error) {
	out := yajbe.Map{}
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		if k.Kind() != reflect.String {
			return nil, fmt.Errorf("%s: map keys must be strings, got %s", path, k.Type())
		}
		v, err := toValue(catpath(path, k.String()), iter.Value())
		if err != nil {
			return nil, err
		}
		out[k.String()] = v
	}
	return out, nil
}

func sliceToArray(path string, rv reflect.Value) (yajbe.Value, error) {
	out := make(yajbe.Array, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, err := toValue(fmt.Sprintf("%s[%d]", path, i), rv.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// FromValue populates dst, a pointer to struct, from v.
func FromValue(dst any, v yajbe.Value) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("structmap: dst must be a non-nil pointer")
	}
	return assign("", rv.Elem(), v)
}

func assign(path string, dst reflect.Value, v yajbe.Value) error {
	switch vt := v.(type) {
	case yajbe.Null:
		return nil
	case nil:
		return nil
	case yajbe.Bool:
		if dst.Kind() != reflect.Bool {
			return fmt.Errorf("%s: cannot assign Bool to %s", path, dst.Type())
		}
		dst.SetBool(bool(vt))
	case yajbe.Int:
		switch dst.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			dst.SetInt(int64(vt))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			dst.SetUint(uint64(vt))
		default:
			return fmt.Errorf("%s: cannot assign Int to %s", path, dst.Type())
		}
	case yajbe.Float32:
		if dst.Kind() != reflect.Float32 && dst.Kind() != reflect.Float64 {
			return fmt.Errorf("%s: cannot assign Float32 to %s", path, dst.Type())
		}
		dst.SetFloat(float64(vt))
	case yajbe.Float64:
		if dst.Kind() != reflect.Float64 && dst.Kind() != reflect.Float32 {
			return fmt.Errorf("%s: cannot assign Float64 to %s", path, dst.Type())
		}
		dst.SetFloat(float64(vt))
	case yajbe.String:
		if dst.Kind() != reflect.String {
			return fmt.Errorf("%s: cannot assign String to %s", path, dst.Type())
		}
		dst.SetString(string(vt))
	case yajbe.Bytes:
		if dst.Kind() != reflect.Slice || dst.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("%s: cannot assign Bytes to %s", path, dst.Type())
		}
		dst.SetBytes([]byte(vt))
	case yajbe.Array:
		return assignArray(path, dst, vt)
	case yajbe.Map:
		return assignMap(path, dst, vt)
	case yajbe.OrderedMap:
		m := make(yajbe.Map, len(vt))
		for _, p := range vt {
			m[p.Key] = p.Val
		}
		return assignMap(path, dst, m)
	default:
		return fmt.Errorf("%s: unhandled value kind %T", path, v)
	}
	return nil
}

func assignArray(path string, dst reflect.Value, arr yajbe.Array) error {
	if dst.Kind() != reflect.Slice {
		return fmt.Errorf("%s: cannot assign Array to %s", path, dst.Type())
	}
	out := reflect.MakeSlice(dst.Type(), len(arr), len(arr))
	for i, v := range arr {
		if err := assign(fmt.Sprintf("%s[%d]", path, i), out.Index(i), v); err != nil {
			return err
		}
	}
	dst.Set(out)
	return nil
}

func assignMap(path string, dst reflect.Value, m yajbe.Map) error {
	if dst.Kind() != reflect.Struct {
		return fmt.Errorf("%s: cannot assign Map to %s", path, dst.Type())
	}
	t := dst.Type()
	for i := 0; i < dst.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("yajbe"); ok {
			tok := strings.Split(tag, ",")
			if tok[0] == "-" {
				continue
			}
			if tok[0] != "" {
				name = tok[0]
			}
		}
		v, ok := m[name]
		if !ok {
			continue
		}
		if err := assign(catpath(path, name), dst.Field(i), v); err != nil {
			return err
		}
	}
	return nil
}

func catpath(path, name string) string {
	if path == "" {
		return name
	}
	return strings.Join([]string{path, name}, ".")
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
