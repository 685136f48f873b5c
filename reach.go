package yajbe

import (
	"errors"
	"fmt"
	"reflect"
)

// Reach navigates into a Map by a dotted path, assigning the found
// value into dst (coercing where the types allow it). It returns true
// if a value was found at the path, false if the path does not exist.
// An error is returned only if dst is nil, or if a value was found but
// could not be coerced into dst's type.
//
// Supported coercions:
//
//	Int      -> int64
//	Float64  -> float64
//	String   -> string
//	Bytes    -> []byte
//	Bool     -> bool
func (m Map) Reach(dst any, dot ...string) (bool, error) {
	return reachInto(m, dst, dot)
}

// Reach is OrderedMap's equivalent of Map.Reach.
func (m OrderedMap) Reach(dst any, dot ...string) (bool, error) {
	return reachInto(m, dst, dot)
}

func reachInto(m Doc, dst any, dot []string) (bool, error) {
	if dst == nil {
		return false, errors.New("yajbe: dst must not be nil")
	}
	src := reach(m, dot...)
	if src == nil {
		return false, nil
	}
	return assign(dst, src)
}

func reach(cur Value, dot ...string) Value {
	for _, name := range dot {
		switch curt := cur.(type) {
		case Map:
			v, ok := curt[name]
			if !ok {
				return nil
			}
			cur = v
		case OrderedMap:
			found := false
			for _, p := range curt {
				if p.Key == name {
					cur = p.Val
					found = true
					break
				}
			}
			if !found {
				return nil
			}
		default:
			return nil
		}
	}
	return cur
}

func assignError(dst reflect.Value, src any) error {
	return fmt.Errorf("yajbe: cannot coerce %T to %v", src, dst.Type())
}

func assign(dst, src any) (bool, error) {
	dstrv := indirectAlloc(reflect.ValueOf(dst))
	switch srct := src.(type) {
	case Int:
		if dstrv.Kind() != reflect.Int64 {
			return false, assignError(dstrv, src)
		}
		dstrv.SetInt(int64(srct))
	case Float32:
		if dstrv.Kind() != reflect.Float32 {
			return false, assignError(dstrv, src)
		}
		dstrv.SetFloat(float64(srct))
	case Float64:
		if dstrv.Kind() != reflect.Float64 {
			return false, assignError(dstrv, src)
		}
		dstrv.SetFloat(float64(srct))
	case String:
		if dstrv.Kind() != reflect.String {
			return false, assignError(dstrv, src)
		}
		dstrv.SetString(string(srct))
	case Bytes:
		if dstrv.Kind() != reflect.Slice || dstrv.Type().Elem().Kind() != reflect.Uint8 {
			return false, assignError(dstrv, src)
		}
		dstrv.SetBytes([]byte(srct))
	case Bool:
		if dstrv.Kind() != reflect.Bool {
			return false, assignError(dstrv, src)
		}
		dstrv.SetBool(bool(srct))
	case Map:
		if _, ok := dstrv.Interface().(Map); !ok {
			return false, assignError(dstrv, src)
		}
		dstrv.Set(reflect.ValueOf(srct))
	case OrderedMap:
		if _, ok := dstrv.Interface().(OrderedMap); !ok {
			return false, assignError(dstrv, src)
		}
		dstrv.Set(reflect.ValueOf(srct))
	case Array:
		if _, ok := dstrv.Interface().(Array); !ok {
			return false, assignError(dstrv, src)
		}
		dstrv.Set(reflect.ValueOf(srct))
	case Null:
		// Nothing to do.
	default:
		return false, assignError(dstrv, src)
	}
	return true, nil
}

// indirectAlloc dereferences a pointer, allocating through nil pointers
// as it goes, so Reach(&dst, ...) and Reach(&&dst, ...) both work.
func indirectAlloc(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}
	return v
}
