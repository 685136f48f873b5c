// Package streamcodec wraps encoded YAJBE documents with a compression
// layer, grounded on arloliu-mebo's compress package: the same
// Codec/Compressor/Decompressor split, the same per-algorithm file
// layout (noop.go, s2.go, lz4.go, zstd.go + zstd_pure.go/zstd_cgo.go),
// applied here to whole YAJBE buffers instead of mebo's columnar
// timestamp/value payloads.
package streamcodec

import "fmt"

// Compressor compresses an encoded YAJBE buffer before it leaves the
// process (over the wire or to disk).
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor, producing a buffer Decode can parse.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Algorithm identifies a built-in Codec.
type Algorithm int

const (
	AlgorithmNone Algorithm = iota
	AlgorithmZstd
	AlgorithmS2
	AlgorithmLZ4
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "none"
	case AlgorithmZstd:
		return "zstd"
	case AlgorithmS2:
		return "s2"
	case AlgorithmLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// New returns the built-in Codec for algorithm.
func New(algorithm Algorithm) (Codec, error) {
	switch algorithm {
	case AlgorithmNone:
		return NewNoOpCodec(), nil
	case AlgorithmZstd:
		return NewZstdCodec(), nil
	case AlgorithmS2:
		return NewS2Codec(), nil
	case AlgorithmLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("streamcodec: unsupported algorithm %v", algorithm)
	}
}
