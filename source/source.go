// Package source loads TeaFile bytes from readers and files.
//
// The decoder needs one immutable, randomly addressable buffer. This package
// reads the whole source into memory, transparently decompressing files that
// were compressed as a whole with one of the codecs in the compress package.
//
// Example:
//
//	data, err := source.LoadFile("ticks.tea.zst")
//	if err != nil {
//	    return err
//	}
//	file, err := teafile.Decode(data)
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/teafile/compress"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
	"github.com/arloliu/teafile/internal/options"
)

// DefaultMaxSize is the default limit for both the raw and the decompressed
// size of a source.
const DefaultMaxSize int64 = 1 << 30

// Config holds the loader settings.
type Config struct {
	compression format.CompressionType
	maxSize     int64
}

// Option configures the loader.
type Option = options.Option[*Config]

// WithCompression forces the compression of the source. It overrides the
// extension based detection of LoadFile.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		c.compression = ct

		return nil
	})
}

// WithMaxSize limits the number of bytes read from the source and the size
// of the decompressed buffer.
func WithMaxSize(n int64) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("max size must be positive, got %d", n)
		}
		c.maxSize = n

		return nil
	})
}

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{maxSize: DefaultMaxSize}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DetectCompression maps a file extension to a compression type. Unknown
// extensions, including ".tea", are treated as uncompressed.
func DetectCompression(path string) format.CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return format.CompressionZstd
	case ".s2":
		return format.CompressionS2
	case ".lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// Load reads r to the end and returns the decompressed bytes.
//
// Parameters:
//   - r: Source reader
//   - opts: WithCompression selects the codec (default: none), WithMaxSize
//     bounds the raw and decompressed sizes
//
// Returns:
//   - []byte: The TeaFile buffer
//   - error: ErrSourceTooLarge when a size limit is exceeded,
//     ErrUnsupportedCompression for an unknown codec, or the read or
//     decompression error
func Load(r io.Reader, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return load(r, cfg)
}

// LoadFile reads the file at path. Unless WithCompression is given, the
// compression is detected from the file extension.
func LoadFile(path string, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if cfg.compression == 0 {
		cfg.compression = DetectCompression(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if info.Size() > cfg.maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", errs.ErrSourceTooLarge, path, info.Size(), cfg.maxSize)
	}

	data, err := load(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return data, nil
}

func load(r io.Reader, cfg *Config) ([]byte, error) {
	ct := cfg.compression
	if ct == 0 {
		ct = format.CompressionNone
	}

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(io.LimitReader(r, cfg.maxSize+1))
	if err != nil {
		return nil, err
	}

	if int64(len(raw)) > cfg.maxSize {
		return nil, fmt.Errorf("%w: source exceeds %d bytes", errs.ErrSourceTooLarge, cfg.maxSize)
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress %s source: %w", ct, err)
	}

	if int64(len(data)) > cfg.maxSize {
		return nil, fmt.Errorf("%w: decompressed size %d exceeds %d bytes", errs.ErrSourceTooLarge, len(data), cfg.maxSize)
	}

	return data, nil
}
