package compress

// ZstdCompressor provides Zstandard compression.
//
// The default build uses the pure Go klauspost/compress implementation. Build
// with `-tags gozstd` and cgo enabled to switch to the libzstd binding from
// valyala/gozstd. Both produce standard zstd frames, so files written by one
// are readable by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	codec := NewZstdCompressor()
//	raw, err := codec.Decompress(fileBytes)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
