package section

import (
	"fmt"

	"github.com/arloliu/teafile/encoding"
	"github.com/arloliu/teafile/endian"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
)

// Header represents the fixed-size header at the start of a TeaFile.
type Header struct {
	// MagicNumber is always format.MagicNumber after a successful decode.
	MagicNumber uint64 // byte offset 0-7
	// ItemAreaStart is the absolute byte offset where the item area starts.
	ItemAreaStart uint64 // byte offset 8-15
	// ItemAreaEnd is the absolute byte offset where the item area ends.
	// Zero means the item area extends to the end of the buffer.
	ItemAreaEnd uint64 // byte offset 16-23
	// NumSections is the number of sections following the header.
	NumSections uint64 // byte offset 24-31

	// Engine is the byte order detected from the magic number.
	Engine endian.EndianEngine
}

// DecodeHeader decodes the header from a cursor positioned at offset 0.
//
// The magic number is read big-endian first. When it does not match, the
// cursor rewinds, switches to little-endian and reads it again. The detected
// byte order stays active on the cursor for the rest of the decode.
//
// Parameters:
//   - c: Cursor at offset 0 of the buffer
//
// Returns:
//   - Header: Decoded header with the detected byte order
//   - error: ErrTruncatedHeader if the buffer is shorter than 32 bytes,
//     ErrInvalidMagicNumber if the magic number matches in neither byte order
func DecodeHeader(c *encoding.Cursor) (Header, error) {
	if c.Len() < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncatedHeader, HeaderSize, c.Len())
	}

	if err := c.Seek(0); err != nil {
		return Header{}, err
	}

	c.SetEngine(endian.GetBigEndianEngine())
	magic, err := c.ReadUint64()
	if err != nil {
		return Header{}, err
	}

	if magic != format.MagicNumber {
		if err := c.Skip(-8); err != nil {
			return Header{}, err
		}
		c.SetEngine(endian.GetLittleEndianEngine())

		magic, err = c.ReadUint64()
		if err != nil {
			return Header{}, err
		}

		if magic != format.MagicNumber {
			return Header{}, fmt.Errorf("%w: expected 0x%016X, found 0x%016X", errs.ErrInvalidMagicNumber, format.MagicNumber, magic)
		}
	}

	h := Header{MagicNumber: magic, Engine: c.Engine()}

	// the length check above guarantees these reads stay in bounds
	h.ItemAreaStart, _ = c.ReadUint64()
	h.ItemAreaEnd, _ = c.ReadUint64()
	h.NumSections, _ = c.ReadUint64()

	return h, nil
}

// IsBounded reports whether the header declares an explicit item area end.
func (h Header) IsBounded() bool {
	return h.ItemAreaEnd != 0
}

// ItemAreaBounds resolves the item area against a buffer of bufLen bytes.
// A zero ItemAreaEnd resolves to bufLen.
func (h Header) ItemAreaBounds(bufLen int) (start, end uint64) {
	end = h.ItemAreaEnd
	if end == 0 {
		end = uint64(bufLen) //nolint:gosec
	}

	return h.ItemAreaStart, end
}

// AppendTo appends the 32-byte encoding of the header in the given byte order.
func (h Header) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint64(buf, h.MagicNumber)
	buf = engine.AppendUint64(buf, h.ItemAreaStart)
	buf = engine.AppendUint64(buf, h.ItemAreaEnd)
	buf = engine.AppendUint64(buf, h.NumSections)

	return buf
}
