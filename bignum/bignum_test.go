package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yajbe-format/yajbe-go/wire"
)

func TestIntegerRoundTrip(t *testing.T) {
	values := []string{"0", "1", "-1", "123456789012345678901234567890", "-99999999999999999999"}
	for _, s := range values {
		v, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)

		w := wire.NewWriter()
		require.NoError(t, EncodeInteger(w, v))

		kind, got, err := Decode(wire.NewReader(w.Bytes()))
		require.NoError(t, err)
		require.Equal(t, KindInteger, kind)
		require.Equal(t, 0, v.Cmp(got.(*big.Int)))
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	cases := []Decimal{
		{V: big.NewInt(12345), Scale: 2},
		{V: big.NewInt(-500), Scale: 4},
		{V: big.NewInt(0), Scale: 0},
		{V: big.NewInt(7), Scale: -3},
	}
	for _, d := range cases {
		w := wire.NewWriter()
		require.NoError(t, EncodeDecimal(w, d))

		kind, got, err := Decode(wire.NewReader(w.Bytes()))
		require.NoError(t, err)
		require.Equal(t, KindDecimal, kind)
		gd := got.(Decimal)
		require.Equal(t, 0, d.V.Cmp(gd.V))
		require.Equal(t, d.Scale, gd.Scale)
	}
}

func TestLargeMagnitudeRoundTrip(t *testing.T) {
	v := new(big.Int).Lsh(big.NewInt(1), 512)
	w := wire.NewWriter()
	require.NoError(t, EncodeInteger(w, v))

	_, got, err := Decode(wire.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(got.(*big.Int)))
}
