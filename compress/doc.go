// Package compress provides the codecs used to read compressed TeaFiles.
//
// A TeaFile is decoded from one contiguous byte buffer. When the file on disk
// is compressed as a whole, the source package picks a codec from this
// package, decompresses the file once and hands the plain bytes to the
// decoder. Nothing inside the TeaFile layout is compressed.
//
// # Supported Algorithms
//
//	Type                   | Extension | Format
//	-----------------------|-----------|-----------------------------------
//	format.CompressionNone | (none)    | pass-through, no copy
//	format.CompressionZstd | .zst      | zstd frame
//	format.CompressionS2   | .s2       | S2 block (klauspost/compress/s2)
//	format.CompressionLZ4  | .lz4      | raw LZ4 block (pierrec/lz4/v4)
//
// Zstd uses klauspost/compress by default. Building with cgo and the gozstd
// tag swaps in valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(fileBytes)
//
// # Thread Safety
//
// The built-in codecs are stateless values backed by sync.Pool, so a codec
// returned by GetCodec may be shared between goroutines.
package compress
