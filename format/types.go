// Package format defines the constants and enumerations of the TeaFile layout.
package format

import "fmt"

// MagicNumber is stored in the first 8 bytes of every TeaFile. Reading it in
// the wrong byte order yields a different value, which is how the byte order
// of a file is detected.
const MagicNumber uint64 = 0x0D0E0A0402080500

type (
	// FieldType is the numeric type code of an item field.
	FieldType int32
	// SectionID identifies a metadata section.
	SectionID uint32
	// CompressionType identifies how a byte source is compressed on disk.
	CompressionType uint8
)

const (
	TypeInt8    FieldType = 1  // TypeInt8 is a signed 8-bit integer.
	TypeInt16   FieldType = 2  // TypeInt16 is a signed 16-bit integer.
	TypeInt32   FieldType = 3  // TypeInt32 is a signed 32-bit integer.
	TypeInt64   FieldType = 4  // TypeInt64 is a signed 64-bit integer.
	TypeUint8   FieldType = 5  // TypeUint8 is an unsigned 8-bit integer.
	TypeUint16  FieldType = 6  // TypeUint16 is an unsigned 16-bit integer.
	TypeUint32  FieldType = 7  // TypeUint32 is an unsigned 32-bit integer.
	TypeUint64  FieldType = 8  // TypeUint64 is an unsigned 64-bit integer.
	TypeFloat32 FieldType = 9  // TypeFloat32 is an IEEE 754 single precision float.
	TypeFloat64 FieldType = 10 // TypeFloat64 is an IEEE 754 double precision float.
)

const (
	SectionItem        SectionID = 0x0A // SectionItem describes the item layout.
	SectionTime        SectionID = 0x40 // SectionTime describes the time scale.
	SectionDescription SectionID = 0x80 // SectionDescription holds free-form content description.
	SectionNameValue   SectionID = 0x81 // SectionNameValue holds name/value metadata pairs.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

var fieldTypeWidths = [...]int{
	TypeInt8:    1,
	TypeInt16:   2,
	TypeInt32:   4,
	TypeInt64:   8,
	TypeUint8:   1,
	TypeUint16:  2,
	TypeUint32:  4,
	TypeUint64:  8,
	TypeFloat32: 4,
	TypeFloat64: 8,
}

// IsValid reports whether t is one of the ten scalar kinds.
func (t FieldType) IsValid() bool {
	return t >= TypeInt8 && t <= TypeFloat64
}

// Width returns the size in bytes of a value of type t, or 0 for an invalid type.
func (t FieldType) Width() int {
	if !t.IsValid() {
		return 0
	}

	return fieldTypeWidths[t]
}

func (t FieldType) String() string {
	switch t {
	case TypeInt8:
		return "Int8"
	case TypeInt16:
		return "Int16"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeUint8:
		return "UInt8"
	case TypeUint16:
		return "UInt16"
	case TypeUint32:
		return "UInt32"
	case TypeUint64:
		return "UInt64"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(t))
	}
}

func (id SectionID) String() string {
	switch id {
	case SectionItem:
		return "ItemSection"
	case SectionTime:
		return "TimeSection"
	case SectionDescription:
		return "DescriptionSection"
	case SectionNameValue:
		return "NameValueSection"
	default:
		return fmt.Sprintf("Section(0x%X)", uint32(id))
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
