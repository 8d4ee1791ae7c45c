// Package errs defines the sentinel errors returned by the teafile packages.
//
// Call sites wrap these sentinels with byte offsets and expected/found values,
// so callers should compare with errors.Is rather than ==.
package errs

import (
	"errors"
	"fmt"
)

// Header errors.
var (
	// ErrTruncatedHeader is returned when the buffer is shorter than the 32-byte header.
	ErrTruncatedHeader = errors.New("truncated header")
	// ErrInvalidMagicNumber is returned when the magic number matches in neither byte order.
	ErrInvalidMagicNumber = errors.New("invalid magic number: not a TeaFile buffer")
)

// Section errors.
var (
	// ErrSectionIDMismatch is returned when a section decoder is invoked at a foreign section id.
	ErrSectionIDMismatch = errors.New("section id mismatch")
	// ErrInvalidSectionOffset is returned when a section's next-section offset is
	// smaller than its preamble or a decoder does not end at the declared next section.
	ErrInvalidSectionOffset = errors.New("invalid next section offset")
	// ErrDuplicateSection is returned when registering a section id that is already registered.
	ErrDuplicateSection = errors.New("section id already registered")
	// ErrNilSectionDecoder is returned when registering a nil decode function.
	ErrNilSectionDecoder = errors.New("nil section decoder")
	// ErrMalformedSection is returned when a section body cannot be interpreted.
	ErrMalformedSection = errors.New("malformed section")
	// ErrInvalidText is returned when a length-prefixed text has a negative length.
	ErrInvalidText = errors.New("invalid text length")
)

// Item errors.
var (
	// ErrUnsupportedFieldType is returned when a field declares a type code outside 1-10.
	ErrUnsupportedFieldType = errors.New("unsupported field type")
	// ErrInvalidFieldLayout is returned when a field does not fit inside one item record.
	ErrInvalidFieldLayout = errors.New("invalid field layout")
	// ErrMalformedItemArea is returned when the item area bounds do not describe whole records.
	ErrMalformedItemArea = errors.New("malformed item area")
	// ErrMissingItemSection is returned when the item area holds data but no item section was decoded.
	ErrMissingItemSection = errors.New("missing item section")
	// ErrItemIndexOutOfRange is returned when a record index is outside [0, count).
	ErrItemIndexOutOfRange = errors.New("item index out of range")
)

// Buffer errors.
var (
	// ErrOutOfBounds is returned when a read or seek would pass the buffer end.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrUnsupportedCompression is returned by byte sources for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	// ErrSourceTooLarge is returned by byte sources when the input exceeds the configured limit.
	ErrSourceTooLarge = errors.New("source exceeds maximum size")
)

// FieldTypeError reports a field type code that is not one of the ten scalar kinds.
type FieldTypeError struct {
	Code   int32
	Field  string
	Offset int
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s: code %d for field %q at byte offset %d", ErrUnsupportedFieldType, e.Code, e.Field, e.Offset)
}

func (e *FieldTypeError) Unwrap() error {
	return ErrUnsupportedFieldType
}
