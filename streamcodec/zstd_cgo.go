//go:build nobuild

package streamcodec

import "github.com/valyala/gozstd"

// Alternative ZstdCodec backed by cgo-wrapped libzstd, for deployments
// that can pay the cgo build cost for a faster encoder. Never compiled
// (no build configuration satisfies "nobuild"); kept to document the
// swap and so the dependency is visible in go.mod.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return gozstd.Decompress(nil, data)
}
