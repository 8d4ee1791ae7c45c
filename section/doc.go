// Package section decodes the fixed header and the metadata sections of a TeaFile.
//
// # File Structure
//
// A TeaFile consists of a fixed header, a list of self-delimiting sections and
// the item area:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - MagicNumber (8 bytes): 0x0D0E0A0402080500            │
//	│  - ItemAreaStart (8 bytes)                              │
//	│  - ItemAreaEnd (8 bytes, 0 = until buffer end)          │
//	│  - NumSections (8 bytes)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Sections (NumSections × variable)                       │
//	│  - SectionID (4 bytes)                                  │
//	│  - NextSectionOffset (4 bytes, from section start)      │
//	│  - Body (NextSectionOffset - 8 bytes)                   │
//	├─────────────────────────────────────────────────────────┤
//	│ Item Area (count × ItemSize)                            │
//	└─────────────────────────────────────────────────────────┘
//
// All multi-byte values of a file share one byte order. The magic number is
// read big-endian first; when it does not match, the file is read
// little-endian.
//
// # Item Section Format
//
//	Field        | Type                | Description
//	-------------|---------------------|----------------------------------
//	ItemSize     | uint32              | Bytes per record
//	ItemName     | int32 + UTF-8 bytes | Name of the item type
//	NumFields    | uint32              | Number of field records
//	Fields       | NumFields × record  | Type (int32), Offset (int32), Name (text)
//
// # Extending Sections
//
// Sections are decoded through a Registry mapping section ids to DecodeFunc.
// Ids that are not registered are skipped using their next section offset, so
// files written with newer section types stay readable. Callers add their own
// section types by registering a DecodeFunc:
//
//	reg := section.DefaultRegistry()
//	err := reg.Register(0x1000, decodeMySection)
//
// A DecodeFunc is invoked with the cursor at the section start. It must read
// and verify the section id itself (ReadPreamble does this), read its body and
// leave the cursor at the start of the next section.
package section
