package streamcodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecsRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("yajbe-document-payload-"), 64)

	for _, alg := range []Algorithm{AlgorithmNone, AlgorithmZstd, AlgorithmS2, AlgorithmLZ4} {
		t.Run(alg.String(), func(t *testing.T) {
			codec, err := New(alg)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestCodecsEmptyInput(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmZstd, AlgorithmS2, AlgorithmLZ4} {
		codec, err := New(alg)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestNewUnsupportedAlgorithm(t *testing.T) {
	_, err := New(Algorithm(99))
	require.Error(t, err)
}
