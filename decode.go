package yajbe

import (
	"math/big"
	"unicode/utf8"

	"github.com/yajbe-format/yajbe-go/bignum"
	"github.com/yajbe-format/yajbe-go/fieldname"
	"github.com/yajbe-format/yajbe-go/wire"
)

// DecodeOptions configures a top-level Decode call, symmetric with
// EncodeOptions (spec.md §6).
type DecodeOptions struct {
	// InitialFieldNames must match the encoder's dictionary, if any.
	InitialFieldNames []string
	// OrderedMaps decodes every Map value as an OrderedMap instead of
	// Go's native (unordered) Map, preserving the key order the
	// document was encoded with.
	OrderedMaps bool
}

// Decode parses a single top-level YAJBE value from data.
func Decode(data []byte, opts DecodeOptions) (Value, error) {
	r := wire.NewReader(data)
	dec := NewDecoder(r, opts)
	return dec.Decode()
}

// Decoder reads a sequence of values from a caller-supplied
// wire.Reader, maintaining one field-name compressor across the whole
// sequence, symmetric with Encoder.
type Decoder struct {
	r    wire.Reader
	opts DecodeOptions
	keys *fieldname.Decoder
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r wire.Reader, opts DecodeOptions) *Decoder {
	return &Decoder{
		r:    r,
		opts: opts,
		keys: fieldname.NewDecoder(opts.InitialFieldNames),
	}
}

// Decode reads one value.
func (d *Decoder) Decode() (Value, error) {
	return d.decodeValue()
}

func (d *Decoder) decodeValue() (Value, error) {
	head, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}

	switch classify(head) {
	case kindNull:
		return Null{}, nil
	case kindTrue:
		return Bool(true), nil
	case kindFalse:
		return Bool(false), nil
	case kindEOF:
		return nil, &InvalidHeadError{Head: head, Offset: d.r.Offset() - 1}

	case kindIntPositive:
		v, err := decodeIntPositive(d.r, head)
		return Int(v), err
	case kindIntNegative:
		v, err := decodeIntNegative(d.r, head)
		return Int(v), err

	case kindFloat:
		return d.decodeFloat(head)

	case kindString:
		return d.decodeStringOrBytes(head, true)
	case kindBytes:
		return d.decodeStringOrBytes(head, false)

	case kindArray:
		return d.decodeArray(head)
	case kindMap:
		return d.decodeMap(head)

	default: // kindReserved, kindInvalid
		return nil, &InvalidHeadError{Head: head, Offset: d.r.Offset() - 1}
	}
}

func (d *Decoder) decodeFloat(head byte) (Value, error) {
	switch head & 0x03 {
	case floatWidthBinary32:
		v, err := d.r.ReadFloat32LE()
		return Float32(v), err
	case floatWidthBinary64:
		v, err := d.r.ReadFloat64LE()
		return Float64(v), err
	case floatWidthBigNum:
		kind, v, err := bignum.Decode(d.r)
		if err != nil {
			return nil, err
		}
		if kind == bignum.KindInteger {
			return BigInt{V: v.(*big.Int)}, nil
		}
		dec := v.(bignum.Decimal)
		return BigDecimal{V: dec.V, Scale: dec.Scale}, nil
	default: // binary16, reserved
		return nil, &InvalidHeadError{Head: head, Offset: d.r.Offset() - 1}
	}
}

func (d *Decoder) decodeStringOrBytes(head byte, isString bool) (Value, error) {
	length, err := decodeStrBytesLength(d.r, head)
	if err != nil {
		return nil, err
	}
	b, err := d.r.ReadN(length)
	if err != nil {
		return nil, err
	}
	if !isString {
		out := make([]byte, len(b))
		copy(out, b)
		return Bytes(out), nil
	}
	if !utf8.Valid(b) {
		return nil, &InvalidUTF8Error{Offset: d.r.Offset() - length}
	}
	return String(b), nil
}

func (d *Decoder) decodeArray(head byte) (Value, error) {
	count, eof, err := decodeContainerCount(d.r, head)
	if err != nil {
		return nil, err
	}
	if eof {
		arr := Array{}
		for {
			peek, err := d.r.PeekByte()
			if err != nil {
				return nil, err
			}
			if peek == headEOF {
				_, _ = d.r.ReadByte()
				return arr, nil
			}
			v, err := d.decodeValue()
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
	}

	arr := make(Array, 0, count)
	for i := 0; i < count; i++ {
		v, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	return arr, nil
}

func (d *Decoder) decodeMap(head byte) (Value, error) {
	count, eof, err := decodeContainerCount(d.r, head)
	if err != nil {
		return nil, err
	}

	if d.opts.OrderedMaps {
		m := OrderedMap{}
		if eof {
			for {
				peek, err := d.r.PeekByte()
				if err != nil {
					return nil, err
				}
				if peek == headEOF {
					_, _ = d.r.ReadByte()
					return m, nil
				}
				k, v, err := d.decodeEntry()
				if err != nil {
					return nil, err
				}
				m = append(m, Pair{Key: k, Val: v})
			}
		}
		for i := 0; i < count; i++ {
			k, v, err := d.decodeEntry()
			if err != nil {
				return nil, err
			}
			m = append(m, Pair{Key: k, Val: v})
		}
		return m, nil
	}

	m := Map{}
	if eof {
		for {
			peek, err := d.r.PeekByte()
			if err != nil {
				return nil, err
			}
			if peek == headEOF {
				_, _ = d.r.ReadByte()
				return m, nil
			}
			k, v, err := d.decodeEntry()
			if err != nil {
				return nil, err
			}
			m[k] = v
		}
	}
	for i := 0; i < count; i++ {
		k, v, err := d.decodeEntry()
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

func (d *Decoder) decodeEntry() (string, Value, error) {
	k, err := d.keys.Decode(d.r)
	if err != nil {
		return "", nil, err
	}
	v, err := d.decodeValue()
	if err != nil {
		return "", nil, err
	}
	return k, v, nil
}
