package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/teafile/endian"
	"github.com/arloliu/teafile/errs"
)

// Cursor is a positioned reader over an immutable byte slice.
//
// Every Read method consumes exactly the size of the value it returns and
// advances the position. A read that would pass the end of the buffer returns
// an error wrapping errs.ErrOutOfBounds and leaves the position unchanged.
//
// The byte order may be changed at any time with SetEngine; it applies to all
// subsequent reads.
//
// Note: Cursor is NOT thread-safe. Each decode must own its own Cursor; the
// underlying buffer may be shared between cursors since it is never written.
type Cursor struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewCursor creates a cursor at offset 0 of data reading in the given byte order.
func NewCursor(data []byte, engine endian.EndianEngine) *Cursor {
	return &Cursor{data: data, engine: engine}
}

// Pos returns the current absolute position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of bytes between the position and the buffer end.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Engine returns the active byte order.
func (c *Cursor) Engine() endian.EndianEngine {
	return c.engine
}

// SetEngine switches the byte order used by subsequent reads.
func (c *Cursor) SetEngine(engine endian.EndianEngine) {
	c.engine = engine
}

// Seek moves the cursor to an absolute offset in [0, Len()].
func (c *Cursor) Seek(offset int) error {
	if offset < 0 || offset > len(c.data) {
		return fmt.Errorf("%w: seek to offset %d, buffer length %d", errs.ErrOutOfBounds, offset, len(c.data))
	}
	c.pos = offset

	return nil
}

// Skip moves the cursor by n bytes relative to the current position.
// A negative n rewinds.
func (c *Cursor) Skip(n int) error {
	return c.Seek(c.pos + n)
}

// take returns the next n bytes and advances past them.
func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || n > len(c.data)-c.pos {
		return nil, fmt.Errorf("%w: read %d bytes at offset %d, buffer length %d",
			errs.ErrOutOfBounds, n, c.pos, len(c.data))
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// ReadBytes returns the next n bytes. The returned slice aliases the buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	return c.take(n)
}

// ReadUint8 reads one unsigned byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint16(b), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint32(b), nil
}

// ReadUint64 reads an unsigned 64-bit integer.
func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint64(b), nil
}

// ReadInt8 reads one signed byte.
func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err //nolint:gosec
}

// ReadInt16 reads a signed 16-bit integer.
func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err //nolint:gosec
}

// ReadInt32 reads a signed 32-bit integer.
func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err //nolint:gosec
}

// ReadInt64 reads a signed 64-bit integer.
func (c *Cursor) ReadInt64() (int64, error) {
	v, err := c.ReadUint64()
	return int64(v), err //nolint:gosec
}

// ReadFloat32 reads an IEEE 754 single precision float.
func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE 754 double precision float.
func (c *Cursor) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()
	return math.Float64frombits(v), err
}
