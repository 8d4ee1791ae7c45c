package section

import (
	"fmt"

	"github.com/arloliu/teafile/encoding"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
)

// Section is a decoded metadata section.
//
// The built-in implementations are *ItemSection, *TimeSection,
// *DescriptionSection, *NameValueSection, *TimeScaleSection and *Unknown.
// Callers registering their own decoders return their own implementations.
type Section interface {
	// Name returns a human readable section name.
	Name() string
	// Base returns the generic part shared by every section.
	Base() Descriptor
}

// Descriptor is the generic part of every section: its id and where it sits.
type Descriptor struct {
	// SectionID identifies the section type.
	SectionID format.SectionID
	// Offset is the absolute byte offset of the section start.
	Offset int
	// NextSectionOffset is the byte distance from this section's start to the next section's start.
	NextSectionOffset uint32
}

// Base returns d.
func (d Descriptor) Base() Descriptor {
	return d
}

// ID returns the section id.
func (d Descriptor) ID() format.SectionID {
	return d.SectionID
}

// End returns the absolute offset of the next section.
func (d Descriptor) End() int {
	return d.Offset + int(d.NextSectionOffset)
}

// ReadPreamble reads the section id and next section offset at the cursor.
//
// Parameters:
//   - c: Cursor positioned at the section start
//   - want: Section id the caller decodes
//
// Returns:
//   - Descriptor: Id, start offset and next section offset
//   - error: ErrSectionIDMismatch if the id differs from want, ErrInvalidSectionOffset
//     if the next section offset is smaller than the preamble, or ErrOutOfBounds
func ReadPreamble(c *encoding.Cursor, want format.SectionID) (Descriptor, error) {
	start := c.Pos()

	id, err := c.ReadUint32()
	if err != nil {
		return Descriptor{}, err
	}

	if format.SectionID(id) != want {
		return Descriptor{}, fmt.Errorf("%w: expected 0x%X, found 0x%X at offset %d",
			errs.ErrSectionIDMismatch, uint32(want), id, start)
	}

	next, err := c.ReadUint32()
	if err != nil {
		return Descriptor{}, err
	}

	if next < PreambleSize {
		return Descriptor{}, fmt.Errorf("%w: %d at offset %d is smaller than the %d-byte preamble",
			errs.ErrInvalidSectionOffset, next, start, PreambleSize)
	}

	return Descriptor{SectionID: want, Offset: start, NextSectionOffset: next}, nil
}

// SeekEnd moves the cursor to the start of the next section. It fails if the
// cursor has already read past it.
func (d Descriptor) SeekEnd(c *encoding.Cursor) error {
	if c.Pos() > d.End() {
		return fmt.Errorf("%w: %s body at offset %d ends at %d, past the declared next section at %d",
			errs.ErrInvalidSectionOffset, d.SectionID, d.Offset, c.Pos(), d.End())
	}

	return c.Seek(d.End())
}

// TimeSection is the time section with its body left uninterpreted.
type TimeSection struct {
	Descriptor
}

func (*TimeSection) Name() string { return format.SectionTime.String() }

// DescriptionSection is the content description section with its body left uninterpreted.
type DescriptionSection struct {
	Descriptor
}

func (*DescriptionSection) Name() string { return format.SectionDescription.String() }

// NameValueSection is the name/value section with its body left uninterpreted.
type NameValueSection struct {
	Descriptor
}

func (*NameValueSection) Name() string { return format.SectionNameValue.String() }

// Unknown records a section whose id was not registered and whose body was skipped.
type Unknown struct {
	Descriptor
}

func (u *Unknown) Name() string { return u.SectionID.String() }

// DecodeTimeSection locates the time section without interpreting its body.
func DecodeTimeSection(c *encoding.Cursor) (Section, error) {
	d, err := decodeOpaque(c, format.SectionTime)
	if err != nil {
		return nil, err
	}

	return &TimeSection{Descriptor: d}, nil
}

// DecodeDescriptionSection locates the description section without interpreting its body.
func DecodeDescriptionSection(c *encoding.Cursor) (Section, error) {
	d, err := decodeOpaque(c, format.SectionDescription)
	if err != nil {
		return nil, err
	}

	return &DescriptionSection{Descriptor: d}, nil
}

// DecodeNameValueSection locates the name/value section without interpreting its body.
func DecodeNameValueSection(c *encoding.Cursor) (Section, error) {
	d, err := decodeOpaque(c, format.SectionNameValue)
	if err != nil {
		return nil, err
	}

	return &NameValueSection{Descriptor: d}, nil
}

func decodeOpaque(c *encoding.Cursor, id format.SectionID) (Descriptor, error) {
	d, err := ReadPreamble(c, id)
	if err != nil {
		return Descriptor{}, err
	}

	if err := d.SeekEnd(c); err != nil {
		return Descriptor{}, err
	}

	return d, nil
}
