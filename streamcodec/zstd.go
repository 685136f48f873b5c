package streamcodec

// ZstdCodec favors compression ratio, suitable for archived or
// at-rest documents where decompression is infrequent. The actual
// Compress/Decompress methods live in zstd_pure.go (pure-Go
// klauspost/compress/zstd, the default build) and zstd_cgo.go (a
// cgo-backed valyala/gozstd variant gated behind a build tag that no
// real build configuration satisfies, kept only to document the
// alternative).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func NewZstdCodec() ZstdCodec { return ZstdCodec{} }
