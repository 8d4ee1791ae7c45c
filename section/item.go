package section

import (
	"fmt"

	"github.com/arloliu/teafile/encoding"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
)

// minFieldRecordSize is the encoded size of a field with an empty name.
const minFieldRecordSize = 12

// Field is a named scalar at a fixed offset inside each item record.
type Field struct {
	Type   format.FieldType
	Offset int32
	Name   string
}

// End returns the offset right after the field inside a record.
func (f Field) End() int {
	return int(f.Offset) + f.Type.Width()
}

// ItemSection describes the layout of the records in the item area.
type ItemSection struct {
	Descriptor

	// ItemSize is the size in bytes of one record.
	ItemSize uint32
	// ItemName is the name of the item type.
	ItemName string
	// Fields lists the fields in declaration order, which need not follow offset order.
	Fields []Field
}

func (*ItemSection) Name() string { return format.SectionItem.String() }

// Field returns the field with the given name.
func (s *ItemSection) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Validate checks that every field lies entirely inside one record.
func (s *ItemSection) Validate() error {
	for i, f := range s.Fields {
		if !f.Type.IsValid() {
			return &errs.FieldTypeError{Code: int32(f.Type), Field: f.Name, Offset: s.Offset}
		}

		if f.Offset < 0 || f.End() > int(s.ItemSize) {
			return fmt.Errorf("%w: field %d %q (%s) at offset %d does not fit in item size %d",
				errs.ErrInvalidFieldLayout, i, f.Name, f.Type, f.Offset, s.ItemSize)
		}
	}

	return nil
}

// DecodeItemSection decodes the item section at the cursor.
//
// On success the cursor is at the start of the next section.
//
// Returns:
//   - Section: *ItemSection
//   - error: ErrSectionIDMismatch, ErrUnsupportedFieldType (as *errs.FieldTypeError),
//     ErrInvalidText, ErrInvalidSectionOffset if the body overruns the declared
//     section size, or ErrOutOfBounds
func DecodeItemSection(c *encoding.Cursor) (Section, error) {
	d, err := ReadPreamble(c, format.SectionItem)
	if err != nil {
		return nil, err
	}

	s := &ItemSection{Descriptor: d}

	if s.ItemSize, err = c.ReadUint32(); err != nil {
		return nil, fmt.Errorf("item size: %w", err)
	}

	if s.ItemName, err = encoding.ReadText(c); err != nil {
		return nil, fmt.Errorf("item name: %w", err)
	}

	numFields, err := c.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("field count: %w", err)
	}

	// a corrupt count must not drive a huge allocation
	capacity := min(int(numFields), c.Remaining()/minFieldRecordSize)
	s.Fields = make([]Field, 0, capacity)

	for i := uint32(0); i < numFields; i++ {
		f, err := readField(c)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		s.Fields = append(s.Fields, f)
	}

	if err := d.SeekEnd(c); err != nil {
		return nil, err
	}

	return s, nil
}

func readField(c *encoding.Cursor) (Field, error) {
	start := c.Pos()

	code, err := c.ReadInt32()
	if err != nil {
		return Field{}, err
	}

	offset, err := c.ReadInt32()
	if err != nil {
		return Field{}, err
	}

	name, err := encoding.ReadText(c)
	if err != nil {
		return Field{}, err
	}

	typ := format.FieldType(code)
	if !typ.IsValid() {
		return Field{}, &errs.FieldTypeError{Code: code, Field: name, Offset: start}
	}

	return Field{Type: typ, Offset: offset, Name: name}, nil
}
