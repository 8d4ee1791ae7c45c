package item

import (
	"github.com/arloliu/teafile/endian"
	"github.com/arloliu/teafile/internal/hash"
	"github.com/arloliu/teafile/section"
)

// Schema is the record layout declared by an item section.
type Schema struct {
	// ItemName is the name of the item type.
	ItemName string
	// ItemSize is the size in bytes of one record.
	ItemSize int
	// Fields lists the fields in declaration order.
	Fields []section.Field
}

// NewSchema creates a schema from a decoded item section.
func NewSchema(s *section.ItemSection) Schema {
	return Schema{
		ItemName: s.ItemName,
		ItemSize: int(s.ItemSize),
		Fields:   s.Fields,
	}
}

// FieldNames returns the field names in declaration order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}

	return names
}

// Fingerprint returns a 64-bit id of the record layout.
//
// Two schemas share a fingerprint when they declare the same item size and
// the same fields (type, offset and name) in the same order. The item name is
// not part of the layout.
func (s Schema) Fingerprint() uint64 {
	engine := endian.GetLittleEndianEngine()

	buf := make([]byte, 0, 8+len(s.Fields)*16)
	buf = engine.AppendUint32(buf, uint32(s.ItemSize))    //nolint:gosec
	buf = engine.AppendUint32(buf, uint32(len(s.Fields))) //nolint:gosec
	for _, f := range s.Fields {
		buf = engine.AppendUint32(buf, uint32(f.Type))   //nolint:gosec
		buf = engine.AppendUint32(buf, uint32(f.Offset)) //nolint:gosec
		buf = engine.AppendUint32(buf, uint32(len(f.Name)))
		buf = append(buf, f.Name...)
	}

	return hash.Bytes(buf)
}
