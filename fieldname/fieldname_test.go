package fieldname

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yajbe-format/yajbe-go/wire"
)

func TestEncodeDecodeSpecExample(t *testing.T) {
	keys := []string{"aaaaa", "bbbbb", "aaaaa", "aaabb", "aaacc"}

	w := wire.NewWriter()
	enc := NewEncoder(nil)
	for _, k := range keys {
		require.NoError(t, enc.Encode(w, k))
	}

	expect := []byte{
		0x85, 'a', 'a', 'a', 'a', 'a',
		0x85, 'b', 'b', 'b', 'b', 'b',
		0xa0,
		0xc2, 0x03, 'b', 'b',
		0xc2, 0x03, 'c', 'c',
	}
	require.Equal(t, expect, w.Bytes())

	r := wire.NewReader(w.Bytes())
	dec := NewDecoder(nil)
	for _, want := range keys {
		got, err := dec.Decode(r)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestRoundTripVariety(t *testing.T) {
	keys := []string{
		"id", "arrow_up", "arrow_down", "arrow_left", "id",
		"name_tags", "email_tags", "id", "x", "y", "z", "xy",
	}
	w := wire.NewWriter()
	enc := NewEncoder(nil)
	for _, k := range keys {
		require.NoError(t, enc.Encode(w, k))
	}

	r := wire.NewReader(w.Bytes())
	dec := NewDecoder(nil)
	for _, want := range keys {
		got, err := dec.Decode(r)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestInitialDictionary(t *testing.T) {
	dict := []string{"id", "name"}
	w := wire.NewWriter()
	enc := NewEncoder(dict)
	require.NoError(t, enc.Encode(w, "id"))

	// "id" is already in the initial dictionary, so it must be Indexed.
	require.Equal(t, []byte{0xa0}, w.Bytes())

	r := wire.NewReader(w.Bytes())
	dec := NewDecoder(dict)
	got, err := dec.Decode(r)
	require.NoError(t, err)
	require.Equal(t, "id", got)
}

func TestIndexedOutOfRange(t *testing.T) {
	w := wire.NewWriter()
	require.NoError(t, w.WriteByte(headIndexed|5))
	r := wire.NewReader(w.Bytes())
	dec := NewDecoder(nil)
	_, err := dec.Decode(r)
	require.Error(t, err)
	var target *IndexOutOfRangeError
	require.ErrorAs(t, err, &target)
}

func TestTableCapsAtMaxSize(t *testing.T) {
	tb := newTable(nil)
	for i := 0; i < MaxTableSize+10; i++ {
		tb.append("k")
	}
	require.Equal(t, MaxTableSize, tb.size())
}
