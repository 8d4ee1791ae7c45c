// Package teafile decodes TeaFile buffers: a 32-byte header, a list of
// self-describing metadata sections and a packed array of fixed-size item
// records whose layout is declared by the item section.
//
// # Core Features
//
//   - Byte order detection from the magic number (big-endian first)
//   - Extensible section registry; unknown sections are skipped, not rejected
//   - Typed field extraction by offset, independent of padding bytes
//   - Random access to records through item.Decoder
//   - Transparent loading of compressed files through the source package
//
// # Basic Usage
//
//	data, err := source.LoadFile("prices.tea")
//	if err != nil {
//	    return err
//	}
//
//	file, err := teafile.Decode(data)
//	if err != nil {
//	    return err
//	}
//
//	for _, it := range file.Items {
//	    price, _ := it.Float64("Price")
//	    fmt.Println(price)
//	}
//
// Registering a decoder for the time section body:
//
//	dec, _ := teafile.NewDecoder(teafile.WithLogger(logger))
//	_ = dec.ReplaceSection(format.SectionTime, section.DecodeTimeScaleSection)
//	file, err := dec.Decode(data)
//
// # Package Structure
//
// This package wires the lower level packages together. Use section and item
// directly for fine-grained control over the section walk or record access.
package teafile

import (
	"fmt"

	"github.com/arloliu/teafile/encoding"
	"github.com/arloliu/teafile/endian"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
	"github.com/arloliu/teafile/internal/options"
	"github.com/arloliu/teafile/item"
	"github.com/arloliu/teafile/section"
	"go.uber.org/zap"
)

// Decoder decodes TeaFile buffers.
//
// A Decoder may be used from several goroutines at once as long as its
// registry is not modified while a decode is running.
type Decoder struct {
	registry       *section.Registry
	logger         *zap.Logger
	sugar          *zap.SugaredLogger
	skipItems      bool
	validateFields bool
}

// NewDecoder creates a decoder. Without WithRegistry it uses its own copy of
// section.DefaultRegistry().
//
// Returns:
//   - *Decoder: Configured decoder
//   - error: The first failing option
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{
		registry:       section.DefaultRegistry(),
		logger:         zap.NewNop(),
		validateFields: true,
	}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}
	d.sugar = d.logger.Sugar()

	return d, nil
}

// Decode decodes data with a one-off decoder built from opts.
func Decode(data []byte, opts ...DecoderOption) (*File, error) {
	d, err := NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return d.Decode(data)
}

// Registry returns the registry the decoder dispatches sections to.
func (d *Decoder) Registry() *section.Registry {
	return d.registry
}

// RegisterSection adds a decoder for a section id.
//
// Returns:
//   - error: ErrDuplicateSection if id already has a decoder, ErrNilSectionDecoder if fn is nil
func (d *Decoder) RegisterSection(id format.SectionID, fn section.DecodeFunc) error {
	return d.registry.Register(id, fn)
}

// ReplaceSection sets the decoder for a section id, replacing any existing one.
func (d *Decoder) ReplaceSection(id format.SectionID, fn section.DecodeFunc) error {
	return d.registry.Replace(id, fn)
}

// UnregisterSection removes the decoder for id, so sections with that id are
// skipped. It reports whether a decoder was registered.
func (d *Decoder) UnregisterSection(id format.SectionID) bool {
	return d.registry.Unregister(id)
}

// Decode decodes the header, the sections and the item area of data.
//
// data is only read, never modified, and the returned File does not alias
// any decoder state.
//
// Parameters:
//   - data: Complete TeaFile buffer
//
// Returns:
//   - *File: Header, sections in file order and items in file order
//   - error: First decode failure; no partial result is returned
func (d *Decoder) Decode(data []byte) (*File, error) {
	c := encoding.NewCursor(data, endian.GetBigEndianEngine())

	header, err := section.DecodeHeader(c)
	if err != nil {
		return nil, err
	}

	d.sugar.Debugw("decoded header",
		"byteOrder", endian.Name(header.Engine),
		"itemAreaStart", header.ItemAreaStart,
		"itemAreaEnd", header.ItemAreaEnd,
		"numSections", header.NumSections,
	)

	sections, err := section.NewWalker(d.registry, d.logger).Walk(c, header.NumSections)
	if err != nil {
		return nil, err
	}

	f := newFile(header, sections)
	if d.skipItems {
		return f, nil
	}

	dec, err := d.itemDecoder(data, f)
	if err != nil {
		return nil, err
	}

	if f.Items, err = dec.DecodeAll(); err != nil {
		return nil, err
	}

	d.sugar.Debugw("decoded items", "count", len(f.Items), "itemSize", dec.Schema().ItemSize)

	return f, nil
}

// itemDecoder builds the item area decoder for f.
func (d *Decoder) itemDecoder(data []byte, f *File) (*item.Decoder, error) {
	is, ok := f.ItemSection()
	if !ok {
		start, end := f.Header.ItemAreaBounds(len(data))
		if end > start {
			return nil, fmt.Errorf("%w: %d bytes of item area at offset %d", errs.ErrMissingItemSection, end-start, start)
		}

		// empty area: only the bounds are checked
		return item.NewDecoder(data, f.Header, item.Schema{})
	}

	if d.validateFields {
		if err := is.Validate(); err != nil {
			return nil, err
		}
	}

	return item.NewDecoder(data, f.Header, item.NewSchema(is))
}

// Items returns a lazy decoder over the item area of data without decoding
// any record. It decodes the header and sections like Decode.
func (d *Decoder) Items(data []byte) (*item.Decoder, error) {
	c := encoding.NewCursor(data, endian.GetBigEndianEngine())

	header, err := section.DecodeHeader(c)
	if err != nil {
		return nil, err
	}

	sections, err := section.NewWalker(d.registry, d.logger).Walk(c, header.NumSections)
	if err != nil {
		return nil, err
	}

	return d.itemDecoder(data, newFile(header, sections))
}
