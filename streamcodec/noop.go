package streamcodec

// NoOpCodec passes data through unchanged. Useful as a baseline when
// measuring whether compression is worth the CPU cost for a given
// document shape.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (NoOpCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
