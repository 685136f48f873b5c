// Package bignum implements the BigNum envelope (spec.md §4.3): a
// reserved Float-family tag carrying arbitrary-precision integer and
// decimal payloads, backed by math/big.Int the way
// other_examples/ddb9dc9d_LiranCohen-did-char__pkg-encoding-compact.go.go
// converts curve coordinates to/from compressed bytes with
// big.Int.Bytes/SetBytes.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/yajbe-format/yajbe-go/wire"
)

// Kind distinguishes the two BigNum payload shapes.
type Kind int

const (
	KindInteger Kind = iota
	KindDecimal
)

// flags byte layout: bit0 = value sign (1 = negative), bit1 = kind
// (1 = decimal), bit2 = scale sign (1 = negative, decimal only).
const (
	flagNegative   = 0x01
	flagDecimal    = 0x02
	flagScaleNeg   = 0x04
	flagScaleShift = 3 // low 3 bits of the scale width, bits 3..5
)

// Decimal is an arbitrary-precision decimal: V * 10^-Scale.
type Decimal struct {
	V     *big.Int
	Scale int64
}

// EncodeInteger writes v's BigNum integer envelope to w (flags byte,
// then the magnitude as a nested Bytes-form payload per spec.md §4.5).
func EncodeInteger(w wire.Writer, v *big.Int) error {
	flags := byte(0)
	if v.Sign() < 0 {
		flags |= flagNegative
	}
	if err := w.WriteByte(flags); err != nil {
		return err
	}
	return writeMagnitude(w, v)
}

// EncodeDecimal writes d's BigNum decimal envelope to w.
func EncodeDecimal(w wire.Writer, d Decimal) error {
	flags := byte(flagDecimal)
	if d.V.Sign() < 0 {
		flags |= flagNegative
	}
	scale := d.Scale
	if scale < 0 {
		flags |= flagScaleNeg
		scale = -scale
	}
	n := wire.ByteWidth(uint64(scale))
	if n > 7 {
		return fmt.Errorf("bignum: scale %d too large", d.Scale)
	}
	flags |= byte(n) << flagScaleShift
	if err := w.WriteByte(flags); err != nil {
		return err
	}
	if err := w.WriteUintLE(uint64(scale), n); err != nil {
		return err
	}
	return writeMagnitude(w, d.V)
}

// Decode reads one BigNum envelope from r. It returns either an
// *big.Int (KindInteger) or a Decimal (KindDecimal) as the value.
func Decode(r wire.Reader) (Kind, any, error) {
	flags, err := r.ReadByte()
	if err != nil {
		return 0, nil, err
	}
	negative := flags&flagNegative != 0

	if flags&flagDecimal == 0 {
		mag, err := readMagnitude(r)
		if err != nil {
			return 0, nil, err
		}
		v := new(big.Int).SetBytes(mag)
		if negative {
			v.Neg(v)
		}
		return KindInteger, v, nil
	}

	n := int((flags >> flagScaleShift) & 0x07)
	scaleMag, err := r.ReadUintLE(n)
	if err != nil {
		return 0, nil, err
	}
	scale := int64(scaleMag)
	if flags&flagScaleNeg != 0 {
		scale = -scale
	}
	mag, err := readMagnitude(r)
	if err != nil {
		return 0, nil, err
	}
	v := new(big.Int).SetBytes(mag)
	if negative {
		v.Neg(v)
	}
	return KindDecimal, Decimal{V: v, Scale: scale}, nil
}

// writeMagnitude / readMagnitude wrap the big-endian absolute value of
// a big.Int in a self-contained Bytes-form payload (spec.md §4.5's
// inline/explicit length scheme), so the BigNum magnitude is decodable
// without relying on any enclosing value-codec state.
const (
	headBytesLocal = 0x80
	maskTop2Local  = 0xC0
)

func writeMagnitude(w wire.Writer, v *big.Int) error {
	mag := new(big.Int).Abs(v).Bytes()
	return writeBytesForm(w, mag)
}

func readMagnitude(r wire.Reader) ([]byte, error) {
	head, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if head&maskTop2Local != headBytesLocal {
		return nil, fmt.Errorf("bignum: expected Bytes-form magnitude, got head 0x%02x", head)
	}
	length, err := decodeLength(r, head)
	if err != nil {
		return nil, err
	}
	return r.ReadN(length)
}

func writeBytesForm(w wire.Writer, b []byte) error {
	length := len(b)
	if length <= 59 {
		if err := w.WriteByte(headBytesLocal | byte(length)); err != nil {
			return err
		}
		return w.WriteBytes(b)
	}
	m := uint64(length - 59)
	n := wire.ByteWidth(m)
	if n > 4 {
		return fmt.Errorf("bignum: magnitude of %d bytes exceeds the encodable maximum", length)
	}
	if err := w.WriteByte(headBytesLocal | byte(59+n)); err != nil {
		return err
	}
	if err := w.WriteUintLE(m, n); err != nil {
		return err
	}
	return w.WriteBytes(b)
}

func decodeLength(r wire.Reader, head byte) (int, error) {
	x := head & 0x3F
	if x <= 59 {
		return int(x), nil
	}
	n := int(x) - 59
	m, err := r.ReadUintLE(n)
	if err != nil {
		return 0, err
	}
	return int(m) + 59, nil
}
