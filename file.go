package teafile

import (
	"github.com/arloliu/teafile/endian"
	"github.com/arloliu/teafile/format"
	"github.com/arloliu/teafile/item"
	"github.com/arloliu/teafile/section"
)

// File is the result of decoding one TeaFile buffer.
type File struct {
	// Header is the decoded file header.
	Header section.Header
	// Sections lists the sections in file order. Skipped sections appear as *section.Unknown.
	Sections []section.Section
	// Items lists the records in file order.
	Items []item.Item

	itemSection *section.ItemSection
}

func newFile(header section.Header, sections []section.Section) *File {
	f := &File{Header: header, Sections: sections}

	// the first item section defines the record layout
	for _, s := range sections {
		if is, ok := s.(*section.ItemSection); ok {
			f.itemSection = is
			break
		}
	}

	return f
}

// ByteOrder returns the byte order detected from the magic number.
func (f *File) ByteOrder() endian.EndianEngine {
	return f.Header.Engine
}

// IsBigEndian reports whether the file is big-endian.
func (f *File) IsBigEndian() bool {
	return endian.IsBigEndian(f.Header.Engine)
}

// Section returns the first section with the given id.
func (f *File) Section(id format.SectionID) (section.Section, bool) {
	for _, s := range f.Sections {
		if s.Base().ID() == id {
			return s, true
		}
	}

	return nil, false
}

// SectionByName returns the first section with the given name, such as
// "ItemSection" or "Section(0x1234)" for a skipped section.
func (f *File) SectionByName(name string) (section.Section, bool) {
	for _, s := range f.Sections {
		if s.Name() == name {
			return s, true
		}
	}

	return nil, false
}

// SectionsByID groups the sections by id, keeping file order within each id.
func (f *File) SectionsByID() map[format.SectionID][]section.Section {
	m := make(map[format.SectionID][]section.Section, len(f.Sections))
	for _, s := range f.Sections {
		id := s.Base().ID()
		m[id] = append(m[id], s)
	}

	return m
}

// ItemSection returns the section that declares the record layout.
func (f *File) ItemSection() (*section.ItemSection, bool) {
	return f.itemSection, f.itemSection != nil
}

// Schema returns the record layout, or false when the file has no item section.
func (f *File) Schema() (item.Schema, bool) {
	if f.itemSection == nil {
		return item.Schema{}, false
	}

	return item.NewSchema(f.itemSection), true
}

// TimeScale returns the decoded time section. It is only present when
// section.DecodeTimeScaleSection is registered for format.SectionTime.
func (f *File) TimeScale() (*section.TimeScaleSection, bool) {
	for _, s := range f.Sections {
		if ts, ok := s.(*section.TimeScaleSection); ok {
			return ts, true
		}
	}

	return nil, false
}
