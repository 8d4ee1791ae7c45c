// Package fixture assembles TeaFile buffers for tests.
//
// The builder lays out a 32-byte header, the added sections in order and the
// added item records. Header fields are derived from that layout unless they
// are overridden explicitly.
package fixture

import (
	"github.com/arloliu/teafile/endian"
	"github.com/arloliu/teafile/internal/pool"
)

// Magic is the TeaFile magic number.
const Magic uint64 = 0x0D0E0A0402080500

// Field describes one item field in an item section.
type Field struct {
	Type   int32
	Offset int32
	Name   string
}

// Builder builds TeaFile buffers in a chosen byte order.
type Builder struct {
	engine   endian.EndianEngine
	sections [][]byte
	records  [][]byte
	trailing []byte

	magic          uint64
	itemStart      *uint64
	itemEnd        *uint64
	numSections    *uint64
	boundedItemEnd bool
}

// New creates a builder writing in the given byte order.
func New(engine endian.EndianEngine) *Builder {
	return &Builder{engine: engine, magic: Magic}
}

// Engine returns the byte order of the builder.
func (b *Builder) Engine() endian.EndianEngine {
	return b.engine
}

// Magic overrides the magic number.
func (b *Builder) Magic(magic uint64) *Builder {
	b.magic = magic
	return b
}

// ItemAreaStart overrides the header item area start offset.
func (b *Builder) ItemAreaStart(start uint64) *Builder {
	b.itemStart = &start
	return b
}

// ItemAreaEnd overrides the header item area end offset.
func (b *Builder) ItemAreaEnd(end uint64) *Builder {
	b.itemEnd = &end
	return b
}

// BoundedItemArea writes the end of the added records as item area end
// instead of the 0 sentinel.
func (b *Builder) BoundedItemArea() *Builder {
	b.boundedItemEnd = true
	return b
}

// NumSections overrides the header section count.
func (b *Builder) NumSections(n uint64) *Builder {
	b.numSections = &n
	return b
}

// Section adds a section with an opaque body. The next section offset covers
// the 8-byte preamble plus the body.
func (b *Builder) Section(id uint32, body []byte) *Builder {
	return b.SectionWithOffset(id, uint32(8+len(body)), body) //nolint:gosec
}

// SectionWithOffset adds a section with an explicit next section offset. When
// next is larger than the encoded size the gap is zero-padded.
func (b *Builder) SectionWithOffset(id uint32, next uint32, body []byte) *Builder {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	buf.MustWrite(b.engine.AppendUint32(nil, id))
	buf.MustWrite(b.engine.AppendUint32(nil, next))
	buf.MustWrite(body)
	if pad := int(next) - buf.Len(); pad > 0 {
		buf.MustWrite(make([]byte, pad))
	}
	b.sections = append(b.sections, buf.Clone())

	return b
}

// ItemSection adds an item section describing records of itemSize bytes.
func (b *Builder) ItemSection(itemSize uint32, itemName string, fields ...Field) *Builder {
	return b.ItemSectionWithID(0x0A, itemSize, itemName, fields...)
}

// ItemSectionWithID adds an item section body under an arbitrary section id.
func (b *Builder) ItemSectionWithID(id uint32, itemSize uint32, itemName string, fields ...Field) *Builder {
	return b.Section(id, b.ItemBody(itemSize, itemName, fields...))
}

// ItemBody encodes the body of an item section without the preamble.
func (b *Builder) ItemBody(itemSize uint32, itemName string, fields ...Field) []byte {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	buf.MustWrite(b.engine.AppendUint32(nil, itemSize))
	buf.MustWrite(b.Text(itemName))
	buf.MustWrite(b.engine.AppendUint32(nil, uint32(len(fields)))) //nolint:gosec
	for _, f := range fields {
		buf.MustWrite(b.engine.AppendUint32(nil, uint32(f.Type)))   //nolint:gosec
		buf.MustWrite(b.engine.AppendUint32(nil, uint32(f.Offset))) //nolint:gosec
		buf.MustWrite(b.Text(f.Name))
	}

	return buf.Clone()
}

// Text encodes s with an int32 byte count prefix.
func (b *Builder) Text(s string) []byte {
	out := b.engine.AppendUint32(nil, uint32(len(s))) //nolint:gosec
	return append(out, s...)
}

// Record appends one raw item record.
func (b *Builder) Record(rec []byte) *Builder {
	b.records = append(b.records, rec)
	return b
}

// Trailing appends bytes after the item records.
func (b *Builder) Trailing(data []byte) *Builder {
	b.trailing = append(b.trailing, data...)
	return b
}

// SectionsEnd returns the absolute offset right after the last section.
func (b *Builder) SectionsEnd() int {
	end := 32
	for _, s := range b.sections {
		end += len(s)
	}

	return end
}

// Build lays out the buffer.
func (b *Builder) Build() []byte {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	sectionsEnd := uint64(b.SectionsEnd()) //nolint:gosec
	recordsLen := 0
	for _, r := range b.records {
		recordsLen += len(r)
	}

	start := sectionsEnd
	if b.itemStart != nil {
		start = *b.itemStart
	}

	var end uint64
	switch {
	case b.itemEnd != nil:
		end = *b.itemEnd
	case b.boundedItemEnd:
		end = sectionsEnd + uint64(recordsLen) //nolint:gosec
	}

	n := uint64(len(b.sections))
	if b.numSections != nil {
		n = *b.numSections
	}

	buf.Grow(int(sectionsEnd) + recordsLen + len(b.trailing)) //nolint:gosec
	buf.MustWrite(Header(b.engine, b.magic, start, end, n))
	for _, s := range b.sections {
		buf.MustWrite(s)
	}
	for _, r := range b.records {
		buf.MustWrite(r)
	}
	buf.MustWrite(b.trailing)

	return buf.Clone()
}

// Header encodes a bare 32-byte header.
func Header(engine endian.EndianEngine, magic, start, end, numSections uint64) []byte {
	out := make([]byte, 0, 32)
	out = engine.AppendUint64(out, magic)
	out = engine.AppendUint64(out, start)
	out = engine.AppendUint64(out, end)
	out = engine.AppendUint64(out, numSections)

	return out
}

// RecordWriter fills one fixed-size record at explicit offsets.
type RecordWriter struct {
	engine endian.EndianEngine
	buf    []byte
}

// NewRecord creates a zeroed record of size bytes.
func (b *Builder) NewRecord(size int) *RecordWriter {
	return &RecordWriter{engine: b.engine, buf: make([]byte, size)}
}

// Fill sets every byte of the record to v, used to check padding is ignored.
func (r *RecordWriter) Fill(v byte) *RecordWriter {
	for i := range r.buf {
		r.buf[i] = v
	}

	return r
}

func (r *RecordWriter) Uint8(off int, v uint8) *RecordWriter {
	r.buf[off] = v
	return r
}

func (r *RecordWriter) Uint16(off int, v uint16) *RecordWriter {
	r.engine.PutUint16(r.buf[off:], v)
	return r
}

func (r *RecordWriter) Uint32(off int, v uint32) *RecordWriter {
	r.engine.PutUint32(r.buf[off:], v)
	return r
}

func (r *RecordWriter) Uint64(off int, v uint64) *RecordWriter {
	r.engine.PutUint64(r.buf[off:], v)
	return r
}

// Bytes returns the record.
func (r *RecordWriter) Bytes() []byte {
	return r.buf
}
