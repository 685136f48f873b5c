package yajbe

import (
	"fmt"

	"github.com/yajbe-format/yajbe-go/bignum"
	"github.com/yajbe-format/yajbe-go/fieldname"
	"github.com/yajbe-format/yajbe-go/wire"
)

// EncodeOptions configures a top-level Encode call (spec.md §6).
type EncodeOptions struct {
	// InitialFieldNames prepopulates the field-name index table with a
	// well-known dictionary both sides agree on out-of-band.
	InitialFieldNames []string
	// EOFTerminated forces Array and Map containers to be written in
	// the EOF-terminated form (spec.md §4.4) instead of the bounded-count
	// form, even though the count is known ahead of encoding. Useful for
	// exercising the decoder's EOF path without a true streaming source.
	EOFTerminated bool
}

// Encode returns the YAJBE encoding of value as a freshly-allocated
// buffer.
func Encode(value Value, opts EncodeOptions) ([]byte, error) {
	w := wire.NewWriter()
	enc := NewEncoder(w, opts)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Encoder writes a sequence of values to a caller-supplied wire.Writer,
// maintaining one field-name compressor across the whole sequence (the
// incremental variant spec.md §6 asks for).
type Encoder struct {
	w    wire.Writer
	opts EncodeOptions
	keys *fieldname.Encoder
}

// NewEncoder returns an Encoder writing to w. Field-name compressor
// state is created here and lives for the life of the Encoder: it is
// not reset between Encode calls, so a value written after the first
// may refer to keys of earlier values. The package-level Encode builds
// a fresh Encoder, and so fresh state, for each call.
func NewEncoder(w wire.Writer, opts EncodeOptions) *Encoder {
	return &Encoder{
		w:    w,
		opts: opts,
		keys: fieldname.NewEncoder(opts.InitialFieldNames),
	}
}

// Encode writes one value.
func (e *Encoder) Encode(value Value) error {
	return e.encodeValue("$", value)
}

func (e *Encoder) encodeValue(path string, value Value) error {
	switch v := value.(type) {
	case nil, Null:
		return e.w.WriteByte(headNull)
	case Bool:
		if v {
			return e.w.WriteByte(headTrue)
		}
		return e.w.WriteByte(headFalse)
	case bool:
		return e.encodeValue(path, Bool(v))

	case Int:
		return encodeIntHead(e.w, int64(v))
	case int:
		return encodeIntHead(e.w, int64(v))
	case int8:
		return encodeIntHead(e.w, int64(v))
	case int16:
		return encodeIntHead(e.w, int64(v))
	case int32:
		return encodeIntHead(e.w, int64(v))
	case int64:
		return encodeIntHead(e.w, v)
	case uint:
		return encodeIntHead(e.w, int64(v))
	case uint8:
		return encodeIntHead(e.w, int64(v))
	case uint16:
		return encodeIntHead(e.w, int64(v))
	case uint32:
		return encodeIntHead(e.w, int64(v))
	case uint64:
		return encodeIntHead(e.w, int64(v))

	case Float32:
		return e.encodeFloat32(float32(v))
	case float32:
		return e.encodeFloat32(v)
	case Float64:
		return e.encodeFloat64(float64(v))
	case float64:
		return e.encodeFloat64(v)

	case BigInt:
		if err := e.w.WriteByte(headFloat | floatWidthBigNum); err != nil {
			return err
		}
		return bignum.EncodeInteger(e.w, v.V)
	case BigDecimal:
		if err := e.w.WriteByte(headFloat | floatWidthBigNum); err != nil {
			return err
		}
		return bignum.EncodeDecimal(e.w, bignum.Decimal{V: v.V, Scale: v.Scale})

	case Bytes:
		return e.encodeBytesLike(headBytes, []byte(v))
	case []byte:
		return e.encodeBytesLike(headBytes, v)

	case String:
		return e.encodeBytesLike(headString, []byte(v))
	case string:
		return e.encodeBytesLike(headString, []byte(v))

	case Array:
		return e.encodeArray(path, v)

	case Map:
		return e.encodeMap(path, v)
	case OrderedMap:
		return e.encodeOrderedMap(path, v)

	default:
		return &UnsupportedValueError{Path: path, Type: value}
	}
}

func (e *Encoder) encodeFloat32(v float32) error {
	if err := e.w.WriteByte(headFloat | floatWidthBinary32); err != nil {
		return err
	}
	return e.w.WriteFloat32LE(v)
}

func (e *Encoder) encodeFloat64(v float64) error {
	if err := e.w.WriteByte(headFloat | floatWidthBinary64); err != nil {
		return err
	}
	return e.w.WriteFloat64LE(v)
}

func (e *Encoder) encodeBytesLike(headKind byte, b []byte) error {
	if err := encodeStrBytesHead(e.w, headKind, len(b)); err != nil {
		return err
	}
	return e.w.WriteBytes(b)
}

func (e *Encoder) encodeArray(path string, arr Array) error {
	if e.opts.EOFTerminated {
		if err := encodeContainerHeadEOF(e.w, headArray); err != nil {
			return err
		}
		for i, v := range arr {
			if err := e.encodeValue(childPath(path, i), v); err != nil {
				return err
			}
		}
		return e.w.WriteByte(headEOF)
	}

	if err := encodeContainerHead(e.w, headArray, len(arr)); err != nil {
		return err
	}
	for i, v := range arr {
		if err := e.encodeValue(childPath(path, i), v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeMap(path string, m Map) error {
	if e.opts.EOFTerminated {
		if err := encodeContainerHeadEOF(e.w, headMap); err != nil {
			return err
		}
		for k, v := range m {
			if err := e.encodeEntry(path, k, v); err != nil {
				return err
			}
		}
		return e.w.WriteByte(headEOF)
	}

	if err := encodeContainerHead(e.w, headMap, len(m)); err != nil {
		return err
	}
	for k, v := range m {
		if err := e.encodeEntry(path, k, v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeOrderedMap(path string, m OrderedMap) error {
	if e.opts.EOFTerminated {
		if err := encodeContainerHeadEOF(e.w, headMap); err != nil {
			return err
		}
		for _, p := range m {
			if err := e.encodeEntry(path, p.Key, p.Val); err != nil {
				return err
			}
		}
		return e.w.WriteByte(headEOF)
	}

	if err := encodeContainerHead(e.w, headMap, len(m)); err != nil {
		return err
	}
	for _, p := range m {
		if err := e.encodeEntry(path, p.Key, p.Val); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeEntry(path, key string, value Value) error {
	if err := e.keys.Encode(e.w, key); err != nil {
		return err
	}
	return e.encodeValue(path+"."+key, value)
}

func childPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
