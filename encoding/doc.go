// Package encoding provides the positioned binary reader used by the TeaFile
// decoder.
//
// A Cursor reads fixed-width scalars in a selectable byte order and tracks
// its position in an immutable buffer. It knows nothing about TeaFile
// semantics and can be used for any binary layout. ReadText reads the
// length-prefixed strings TeaFile uses for names.
//
// # Bounds
//
// Every read is checked against the buffer length. A read that would pass the
// end returns an error wrapping errs.ErrOutOfBounds and leaves the position
// unchanged, so a caller can report the exact offset of the failure:
//
//	c := encoding.NewCursor(data, endian.GetBigEndianEngine())
//	v, err := c.ReadUint32()
//	if errors.Is(err, errs.ErrOutOfBounds) {
//	    // c.Pos() is still the offset of the failed read
//	}
//
// # Byte Order
//
// The byte order can change between reads with SetEngine. The header decoder
// uses this to retry the magic number little-endian after a big-endian miss.
package encoding
