package yajbe

import (
	"encoding/hex"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

func TestEncodeScalarsAgainstWorkedExamples(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		hex  string
	}{
		{"null", Null{}, "00"},
		{"false", Bool(false), "02"},
		{"true", Bool(true), "03"},
		{"int 1", Int(1), "40"},
		{"int 24", Int(24), "57"},
		{"int 25", Int(25), "5800"},
		{"int 127", Int(127), "5866"},
		{"int 128", Int(128), "5867"},
		{"int 0xff", Int(0xff), "58e6"},
		{"int 0", Int(0), "60"},
		{"int -1", Int(-1), "61"},
		{"int -24", Int(-24), "7800"},
		{"int -0xff", Int(-0xff), "78e7"},
		{"float64 1.5", Float64(1.5), "06 00 00 00 00 00 00 f8 3f"},
		{"string empty", String(""), "c0"},
		{"string a", String("a"), "c161"},
		{"bytes empty", Bytes{}, "80"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Encode(c.v, EncodeOptions{})
			require.NoError(t, err)
			require.Equal(t, mustHex(t, c.hex), got)

			back, err := Decode(got, DecodeOptions{})
			require.NoError(t, err)
			require.Equal(t, c.v, back)
		})
	}
}

func TestEncodeStringRunLengths(t *testing.T) {
	s59 := strings.Repeat("x", 59)
	got, err := Encode(String(s59), EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, append([]byte{0xfb}, []byte(s59)...), got)

	s60 := strings.Repeat("y", 60)
	got, err = Encode(String(s60), EncodeOptions{})
	require.NoError(t, err)
	want := append([]byte{0xfc, 0x01}, []byte(s60)...)
	require.Equal(t, want, got)
}

func TestEncodeBytesRunLengths(t *testing.T) {
	b60 := make([]byte, 60)
	got, err := Encode(Bytes(b60), EncodeOptions{})
	require.NoError(t, err)
	want := append([]byte{0xbc, 0x01}, b60...)
	require.Equal(t, want, got)

	b315 := make([]byte, 315)
	got, err = Encode(Bytes(b315), EncodeOptions{})
	require.NoError(t, err)
	want = append([]byte{0xbd, 0x00, 0x01}, b315...)
	require.Equal(t, want, got)
}

func TestEncodeArrays(t *testing.T) {
	got, err := Encode(Array{Int(1)}, EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "21 40"), got)

	got, err = Encode(Array{Int(2), Int(2)}, EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "22 41 41"), got)

	got, err = Encode(Array{Int(1)}, EncodeOptions{EOFTerminated: true})
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "2f 40 01"), got)

	eleven := make(Array, 11)
	for i := range eleven {
		eleven[i] = Int(0)
	}
	got, err = Encode(eleven, EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, byte(0x2b), got[0])
	require.Equal(t, byte(0x01), got[1])
}

func TestEncodeMapOneEntry(t *testing.T) {
	got, err := Encode(Map{"a": Int(1)}, EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "31 81 61 40"), got)
}

func TestFieldNameStateAcrossDocument(t *testing.T) {
	m := OrderedMap{
		{Key: "aaaaa", Val: Int(1)},
		{Key: "bbbbb", Val: Int(1)},
		{Key: "aaaaa", Val: Int(1)},
		{Key: "aaabb", Val: Int(1)},
		{Key: "aaacc", Val: Int(1)},
	}
	got, err := Encode(m, EncodeOptions{})
	require.NoError(t, err)

	// header(31|5) then 5 entries, each key-header + value.
	require.Equal(t, byte(0x35), got[0])

	back, err := Decode(got, DecodeOptions{OrderedMaps: true})
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestFloatSpecialValues(t *testing.T) {
	values := []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0, math.Copysign(0, -1)}
	for _, v := range values {
		got, err := Encode(Float64(v), EncodeOptions{})
		require.NoError(t, err)
		back, err := Decode(got, DecodeOptions{})
		require.NoError(t, err)
		gv := float64(back.(Float64))
		if math.IsNaN(v) {
			require.True(t, math.IsNaN(gv))
			continue
		}
		require.Equal(t, math.Float64bits(v), math.Float64bits(gv))
	}
}

func TestEOFSentinelRejectedAsValueHead(t *testing.T) {
	_, err := Decode([]byte{0x01}, DecodeOptions{})
	require.Error(t, err)
	var headErr *InvalidHeadError
	require.ErrorAs(t, err, &headErr)
}

func TestInvalidUTF8Rejected(t *testing.T) {
	data := []byte{0xc1, 0xff}
	_, err := Decode(data, DecodeOptions{})
	require.Error(t, err)
	var utf8Err *InvalidUTF8Error
	require.ErrorAs(t, err, &utf8Err)
}

func TestReservedHeadRejected(t *testing.T) {
	_, err := Decode([]byte{0x08}, DecodeOptions{})
	require.Error(t, err)
}

func TestArrayRoundTripNested(t *testing.T) {
	v := Array{
		Int(1),
		String("hello"),
		Array{Int(2), Bool(true), Null{}},
		Map{"x": Int(5), "y": String("z")},
	}
	got, err := Encode(v, EncodeOptions{})
	require.NoError(t, err)
	back, err := Decode(got, DecodeOptions{})
	require.NoError(t, err)
	require.Equal(t, v, back)
}

func TestEncoderCanonicality(t *testing.T) {
	// Map key order is implementation-defined (spec.md §9), so this
	// property is only meaningful for an order-preserving container.
	v := OrderedMap{
		{Key: "name", Val: String("yajbe")},
		{Key: "count", Val: Int(42)},
		{Key: "tags", Val: Array{String("a"), String("b")}},
	}
	encoded, err := Encode(v, EncodeOptions{})
	require.NoError(t, err)

	decoded, err := Decode(encoded, DecodeOptions{OrderedMaps: true})
	require.NoError(t, err)

	reencoded, err := Encode(decoded, EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, encoded, reencoded)
}

func TestUnsupportedValue(t *testing.T) {
	_, err := Encode(make(chan int), EncodeOptions{})
	require.Error(t, err)
	var uv *UnsupportedValueError
	require.ErrorAs(t, err, &uv)
}
