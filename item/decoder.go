package item

import (
	"fmt"
	"iter"

	"github.com/arloliu/teafile/encoding"
	"github.com/arloliu/teafile/endian"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/section"
)

// Decoder decodes records of the item area.
//
// The decoder never mutates the buffer and keeps no per-record state, so At
// and All may be called concurrently.
type Decoder struct {
	data   []byte
	engine endian.EndianEngine
	schema Schema
	start  int
	end    int
	count  int
}

// NewDecoder validates the item area bounds and computes the record count.
//
// The item area ends at header.ItemAreaEnd, or at the end of data when that
// is zero. A nonzero end is authoritative: bytes after it are not item data.
//
// Parameters:
//   - data: The whole TeaFile buffer
//   - header: Decoded header carrying the item area bounds and byte order
//   - schema: Record layout from the item section
//
// Returns:
//   - *Decoder: Decoder over Count() records
//   - error: ErrMalformedItemArea if the area has negative length, extends past
//     the buffer, or is not a whole number of records
func NewDecoder(data []byte, header section.Header, schema Schema) (*Decoder, error) {
	start, end := header.ItemAreaBounds(len(data))

	if end < start {
		return nil, fmt.Errorf("%w: item area end %d is before start %d", errs.ErrMalformedItemArea, end, start)
	}

	if end > uint64(len(data)) {
		return nil, fmt.Errorf("%w: item area end %d exceeds buffer length %d", errs.ErrMalformedItemArea, end, len(data))
	}

	engine := header.Engine
	if engine == nil {
		engine = endian.GetBigEndianEngine()
	}

	d := &Decoder{
		data:   data,
		engine: engine,
		schema: schema,
		start:  int(start), //nolint:gosec
		end:    int(end),   //nolint:gosec
	}

	length := d.end - d.start
	if length == 0 {
		return d, nil
	}

	if schema.ItemSize <= 0 {
		return nil, fmt.Errorf("%w: item size %d for a %d-byte item area", errs.ErrMalformedItemArea, schema.ItemSize, length)
	}

	if length%schema.ItemSize != 0 {
		return nil, fmt.Errorf("%w: item area length %d is not a multiple of item size %d",
			errs.ErrMalformedItemArea, length, schema.ItemSize)
	}
	d.count = length / schema.ItemSize

	return d, nil
}

// Count returns the number of records.
func (d *Decoder) Count() int {
	return d.count
}

// Schema returns the record layout.
func (d *Decoder) Schema() Schema {
	return d.schema
}

// Bounds returns the absolute start and end offsets of the item area.
func (d *Decoder) Bounds() (start, end int) {
	return d.start, d.end
}

// At decodes record i.
//
// Returns:
//   - Item: Field values keyed by field name
//   - error: ErrItemIndexOutOfRange if i is not in [0, Count()), ErrOutOfBounds
//     if a field reads past the buffer
func (d *Decoder) At(i int) (Item, error) {
	if i < 0 || i >= d.count {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", errs.ErrItemIndexOutOfRange, i, d.count)
	}

	base := d.start + i*d.schema.ItemSize
	c := encoding.NewCursor(d.data, d.engine)
	item := make(Item, len(d.schema.Fields))

	for _, f := range d.schema.Fields {
		if err := c.Seek(base + int(f.Offset)); err != nil {
			return nil, fmt.Errorf("item %d field %q: %w", i, f.Name, err)
		}

		v, err := readValue(c, f.Type)
		if err != nil {
			return nil, fmt.Errorf("item %d field %q: %w", i, f.Name, err)
		}
		item[f.Name] = v
	}

	return item, nil
}

// All iterates the records in file order. Iteration stops after the first
// error, which is yielded with a nil Item.
func (d *Decoder) All() iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		for i := range d.count {
			item, err := d.At(i)
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// DecodeAll decodes every record in file order.
func (d *Decoder) DecodeAll() ([]Item, error) {
	items := make([]Item, 0, d.count)
	for item, err := range d.All() {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
