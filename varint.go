package yajbe

import "github.com/yajbe-format/yajbe-go/wire"

// The format uses three length-scheme families that share the shape
// "inline small values, then N explicit little-endian bytes" but
// diverge in their zero-point bias (spec.md §9, "Length-scheme
// families"). Each family gets its own pair of helpers below rather
// than one over-parameterized function, matching the spec's guidance
// to keep each family's biasing local.

// --- Integer magnitude (spec.md §4.2) ---
//
// Positive head 010wwwww: w in 0..23 => literal w+1; w in 24..31 =>
// N=w-23 bytes carry m, value = m+25.
// Negative head 011wwwww: w in 0..23 => literal -w; w in 24..31 =>
// N=w-23 bytes carry m, value = -(m+24).

func encodeIntHead(w wire.Writer, v int64) error {
	if v >= 1 {
		m := uint64(v)
		if m <= 24 {
			return w.WriteByte(headIntPositive | byte(m-1))
		}
		m -= 25
		n := wire.ByteWidth(m)
		if err := w.WriteByte(headIntPositive | byte(23+n)); err != nil {
			return err
		}
		return w.WriteUintLE(m, n)
	}

	m := uint64(-v)
	if m <= 23 {
		return w.WriteByte(headIntNegative | byte(m))
	}
	m -= 24
	n := wire.ByteWidth(m)
	if err := w.WriteByte(headIntNegative | byte(23+n)); err != nil {
		return err
	}
	return w.WriteUintLE(m, n)
}

func decodeIntPositive(r wire.Reader, head byte) (int64, error) {
	w := head & 0x1F
	if w <= 23 {
		return int64(w) + 1, nil
	}
	n := int(w) - 23
	m, err := r.ReadUintLE(n)
	if err != nil {
		return 0, err
	}
	return int64(m + 25), nil
}

func decodeIntNegative(r wire.Reader, head byte) (int64, error) {
	w := head & 0x1F
	if w <= 23 {
		return -int64(w), nil
	}
	n := int(w) - 23
	m, err := r.ReadUintLE(n)
	if err != nil {
		return 0, err
	}
	return -int64(m + 24), nil
}

// --- Array/Map item count (spec.md §4.4) ---
//
// x in 0..10 => inline count x; x in 11..14 => N=x-10 bytes carry m,
// count = m+10; x == 15 => EOF-terminated.
//
// NOTE: spec.md §4.4's prose states "count is m+11", but the worked
// example in §8 ("Inline count 11 is expressed as header 2b 01 + 11
// children", i.e. x=11, N=1, m=1) only round-trips under count=m+10.
// This implementation follows the worked example — see DESIGN.md for
// the full writeup of this prose/example discrepancy.

const containerCountEOF = 15

func encodeContainerHead(w wire.Writer, headKind byte, count int) error {
	if count <= 10 {
		return w.WriteByte(headKind | byte(count))
	}
	m := uint64(count - 10)
	n := wire.ByteWidth(m)
	if n > 4 {
		n = 4
	}
	if err := w.WriteByte(headKind | byte(10+n)); err != nil {
		return err
	}
	return w.WriteUintLE(m, n)
}

func encodeContainerHeadEOF(w wire.Writer, headKind byte) error {
	return w.WriteByte(headKind | containerCountEOF)
}

func decodeContainerCount(r wire.Reader, head byte) (count int, eof bool, err error) {
	x := head & 0x0F
	switch {
	case x <= 10:
		return int(x), false, nil
	case x == containerCountEOF:
		return 0, true, nil
	default:
		n := int(x) - 10
		m, err := r.ReadUintLE(n)
		if err != nil {
			return 0, false, err
		}
		return int(m) + 10, false, nil
	}
}

// --- String/Bytes length (spec.md §4.5) ---
//
// x in 0..59 => inline length x; x in 60..63 => N=x-59 bytes carry m,
// length = m+59.
//
// NOTE: spec.md §4.5's prose states "the length is m+60", but the §8
// worked examples ("y"*60 -> fc 01, a 60-byte string -> bc 01, a
// 315-byte string -> bd 00 01) only round-trip under length=m+59 — see
// DESIGN.md and the parallel note on the Array/Map item count above.

func encodeStrBytesHead(w wire.Writer, headKind byte, length int) error {
	switch {
	case length <= 59:
		return w.WriteByte(headKind | byte(length))
	default:
		m := uint64(length - 59)
		n := wire.ByteWidth(m)
		if n > 4 {
			n = 4
		}
		if err := w.WriteByte(headKind | byte(59+n)); err != nil {
			return err
		}
		return w.WriteUintLE(m, n)
	}
}

func decodeStrBytesLength(r wire.Reader, head byte) (int, error) {
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
