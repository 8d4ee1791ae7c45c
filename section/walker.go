package section

import (
	"fmt"

	"github.com/arloliu/teafile/encoding"
	"github.com/arloliu/teafile/endian"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
	"go.uber.org/zap"
)

// Walker iterates the sections following the header.
//
// Note: A Walker holds no per-walk state and may be shared, but each walk
// needs its own cursor.
type Walker struct {
	registry *Registry
	sugar    *zap.SugaredLogger
}

// NewWalker creates a walker dispatching to registry. A nil logger disables logging.
func NewWalker(registry *Registry, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Walker{
		registry: registry,
		sugar:    logger.Sugar(),
	}
}

// Walk decodes numSections sections starting at byte 32.
//
// Registered ids are handed to their decoder with the cursor at the section
// start. Unregistered ids are skipped using their next section offset and
// recorded as *Unknown.
//
// Parameters:
//   - c: Cursor over the whole buffer in the byte order detected by DecodeHeader
//   - numSections: Section count from the header
//
// Returns:
//   - []Section: Sections in file order
//   - error: The first decoder error, or ErrInvalidSectionOffset when a decoder
//     does not end at its declared next section
func (w *Walker) Walk(c *encoding.Cursor, numSections uint64) ([]Section, error) {
	if err := c.Seek(FirstSectionOffset); err != nil {
		return nil, err
	}

	capacity := min(numSections, uint64(c.Remaining()/PreambleSize)) //nolint:gosec
	sections := make([]Section, 0, capacity)

	for i := uint64(0); i < numSections; i++ {
		sec, err := w.next(c)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		sections = append(sections, sec)
	}

	return sections, nil
}

func (w *Walker) next(c *encoding.Cursor) (Section, error) {
	start := c.Pos()

	raw, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	id := format.SectionID(raw)

	fn, ok := w.registry.Lookup(id)
	if !ok {
		return w.skip(c, id, start)
	}

	if err := c.Skip(-4); err != nil {
		return nil, err
	}

	sec, err := fn(c)
	if err != nil {
		return nil, fmt.Errorf("decode %s at offset %d: %w", id, start, err)
	}

	if sec == nil {
		return nil, fmt.Errorf("%w: decoder for %s at offset %d returned no section", errs.ErrMalformedSection, id, start)
	}

	d := sec.Base()
	if c.Pos() != d.End() {
		return nil, fmt.Errorf("%w: decoder for %s at offset %d stopped at %d, next section at %d",
			errs.ErrInvalidSectionOffset, id, start, c.Pos(), d.End())
	}

	w.sugar.Debugw("decoded section",
		"section", sec.Name(),
		"id", uint32(id),
		"offset", start,
		"next", d.End(),
	)

	return sec, nil
}

func (w *Walker) skip(c *encoding.Cursor, id format.SectionID, start int) (Section, error) {
	next, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}

	if next < PreambleSize {
		return nil, fmt.Errorf("%w: %d for %s at offset %d", errs.ErrInvalidSectionOffset, next, id, start)
	}

	if err := c.Seek(start + int(next)); err != nil {
		return nil, fmt.Errorf("skip %s at offset %d: %w", id, start, err)
	}

	w.sugar.Debugw("skipping unknown section",
		"id", uint32(id),
		"offset", start,
		"next", start+int(next),
		"byteOrder", endian.Name(c.Engine()),
	)

	return &Unknown{Descriptor: Descriptor{SectionID: id, Offset: start, NextSectionOffset: next}}, nil
}
