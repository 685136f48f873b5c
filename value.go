package yajbe

import "math/big"

// Value is any of the eight YAJBE value kinds. It is a plain interface
// alias, not a sum type with a Kind() method, the same way the teacher
// library represents BSON values as interface{} and dispatches on the
// concrete type with a type switch (see encode.go, decode.go).
type Value = any

// Null represents the YAJBE null value. Value is ignored.
type Null struct{}

// Bool represents a YAJBE boolean.
type Bool bool

// Int represents a YAJBE signed integer. The wire format supports
// magnitudes up to 2^63 using up to 8 little-endian bytes; this
// implementation is bounded to Go's native int64, which is within the
// "safe range" spec.md §4.2 requires a conforming implementation to
// round-trip.
type Int int64

// Float32 represents a YAJBE binary32 float. Encoders should prefer
// Float64 and only use Float32 when the value is exactly representable
// (spec.md §4.3).
type Float32 float32

// Float64 represents a YAJBE binary64 float, the default width for
// generic floating-point values.
type Float64 float64

// BigInt represents a YAJBE BigNum integer envelope (spec.md §4.3).
type BigInt struct {
	V *big.Int
}

// BigDecimal represents a YAJBE BigNum decimal envelope: V * 10^-Scale.
type BigDecimal struct {
	V     *big.Int
	Scale int64
}

// Bytes represents an opaque YAJBE byte string.
type Bytes []byte

// String represents a YAJBE UTF-8 string.
type String string

// Array represents an ordered YAJBE array.
type Array []Value

// Pair is one key/value entry of an OrderedMap.
type Pair struct {
	Key string
	Val Value
}

// Map represents a YAJBE map using Go's native map type. This is the
// common case: convenient to build and consume, at the cost of not
// preserving the key order the document was encoded with.
type Map map[string]Value

// OrderedMap represents a YAJBE map as an ordered sequence of pairs,
// for callers that need to preserve (or control) insertion order on
// encode, or observe it on decode. This mirrors the teacher library's
// Map/Slice duality (bson.Map vs bson.Slice) for exactly the same
// reason: spec.md does not prescribe map key ordering (§9, "Map key
// ordering"), so both an order-blind and an order-preserving container
// are first-class.
type OrderedMap []Pair

// Doc is satisfied by both Map and OrderedMap kinds accepted as a map
// value by the value codec.
type Doc interface {
	isDoc()
}

func (Map) isDoc()        {}
func (OrderedMap) isDoc() {}
