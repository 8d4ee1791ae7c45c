package compress

// NoOpCompressor passes data through unchanged. It backs plain, uncompressed
// TeaFiles so the source loader has a single code path.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is.
//
// Note: The returned slice shares the same underlying memory as the input.
// The decoder never writes to its buffer, so sharing is safe for decoding.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
