package section

import (
	"testing"

	"github.com/arloliu/teafile/encoding"
	"github.com/arloliu/teafile/endian"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
	"github.com/arloliu/teafile/internal/fixture"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// walk decodes the header of the built file and walks its sections.
func walk(t *testing.T, b *fixture.Builder, reg *Registry, logger *zap.Logger) ([]Section, *encoding.Cursor, error) {
	t.Helper()

	c := encoding.NewCursor(b.Build(), endian.GetBigEndianEngine())
	h, err := DecodeHeader(c)
	require.NoError(t, err)

	sections, err := NewWalker(reg, logger).Walk(c, h.NumSections)

	return sections, c, err
}

func TestWalker_NoSections(t *testing.T) {
	data := fixture.Header(endian.GetBigEndianEngine(), format.MagicNumber, 32, 0, 0)
	c := encoding.NewCursor(data, endian.GetBigEndianEngine())
	h, err := DecodeHeader(c)
	require.NoError(t, err)

	sections, err := NewWalker(DefaultRegistry(), nil).Walk(c, h.NumSections)
	require.NoError(t, err)
	require.Empty(t, sections)
	require.Equal(t, HeaderSize, c.Pos())
}

func TestWalker_BuiltinSections(t *testing.T) {
	for _, engine := range engines() {
		t.Run(endian.Name(engine), func(t *testing.T) {
			b := fixture.New(engine).
				ItemSection(24, "Tick", tickFields...).
				Section(uint32(format.SectionTime), make([]byte, 20)).
				Section(uint32(format.SectionDescription), []byte("ticks of ACME")).
				Section(uint32(format.SectionNameValue), make([]byte, 12))

			sections, c, err := walk(t, b, DefaultRegistry(), nil)
			require.NoError(t, err)
			require.Len(t, sections, 4)
			require.Equal(t, b.SectionsEnd(), c.Pos())

			require.IsType(t, &ItemSection{}, sections[0])
			require.IsType(t, &TimeSection{}, sections[1])
			require.IsType(t, &DescriptionSection{}, sections[2])
			require.IsType(t, &NameValueSection{}, sections[3])

			require.Equal(t, FirstSectionOffset, sections[0].Base().Offset)
			for i := 1; i < len(sections); i++ {
				require.Equal(t, sections[i-1].Base().End(), sections[i].Base().Offset)
			}
		})
	}
}

func TestWalker_SkipsUnknownSection(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	body := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	b := fixture.New(engine).SectionWithOffset(0x99, 40, body)

	core, logs := observer.New(zapcore.DebugLevel)
	sections, c, err := walk(t, b, DefaultRegistry(), zap.New(core))
	require.NoError(t, err)

	require.Equal(t, FirstSectionOffset+40, c.Pos())
	require.Len(t, sections, 1)

	unknown, ok := sections[0].(*Unknown)
	require.True(t, ok)
	require.Equal(t, format.SectionID(0x99), unknown.SectionID)
	require.Equal(t, uint32(40), unknown.NextSectionOffset)
	require.Equal(t, "Section(0x99)", unknown.Name())

	entries := logs.FilterMessage("skipping unknown section").All()
	require.Len(t, entries, 1)
	require.EqualValues(t, 0x99, entries[0].ContextMap()["id"])
	require.EqualValues(t, FirstSectionOffset, entries[0].ContextMap()["offset"])
}

func TestWalker_UnknownBetweenKnown(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	b := fixture.New(engine).
		Section(0x7777, make([]byte, 100)).
		ItemSection(16, "Pair", tickFields[:2]...).
		Section(0x8888, nil)

	sections, c, err := walk(t, b, DefaultRegistry(), nil)
	require.NoError(t, err)
	require.Len(t, sections, 3)
	require.IsType(t, &Unknown{}, sections[0])
	require.IsType(t, &ItemSection{}, sections[1])
	require.IsType(t, &Unknown{}, sections[2])
	require.Equal(t, "Pair", sections[1].(*ItemSection).ItemName)
	require.Equal(t, b.SectionsEnd(), c.Pos())
}

func TestWalker_UnregisteredBuiltin(t *testing.T) {
	reg := DefaultRegistry()
	reg.Unregister(format.SectionItem)

	b := fixture.New(endian.GetBigEndianEngine()).ItemSection(24, "Tick", tickFields...)
	sections, c, err := walk(t, b, reg, nil)
	require.NoError(t, err)
	require.IsType(t, &Unknown{}, sections[0])
	require.Equal(t, b.SectionsEnd(), c.Pos())
}

type markerSection struct {
	Descriptor
	Value uint16
}

func (*markerSection) Name() string { return "Marker" }

func decodeMarker(c *encoding.Cursor) (Section, error) {
	d, err := ReadPreamble(c, 0x1000)
	if err != nil {
		return nil, err
	}

	v, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}

	if err := d.SeekEnd(c); err != nil {
		return nil, err
	}

	return &markerSection{Descriptor: d, Value: v}, nil
}

func TestWalker_CustomSection(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	reg := DefaultRegistry()
	require.NoError(t, reg.Register(0x1000, decodeMarker))

	b := fixture.New(engine).
		Section(0x1000, engine.AppendUint16(make([]byte, 0, 8), 0xBEEF)).
		ItemSection(8, "Single", fixture.Field{Type: int32(format.TypeFloat64), Name: "v"})

	sections, _, err := walk(t, b, reg, nil)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	marker, ok := sections[0].(*markerSection)
	require.True(t, ok)
	require.Equal(t, uint16(0xBEEF), marker.Value)
	require.Equal(t, "Marker", marker.Name())
}

func TestWalker_Errors(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	t.Run("DecoderDoesNotAdvance", func(t *testing.T) {
		reg := DefaultRegistry()
		require.NoError(t, reg.Register(0x1000, func(c *encoding.Cursor) (Section, error) {
			d, err := ReadPreamble(c, 0x1000)
			return &Unknown{Descriptor: d}, err
		}))

		b := fixture.New(engine).Section(0x1000, make([]byte, 16))
		_, _, err := walk(t, b, reg, nil)
		require.ErrorIs(t, err, errs.ErrInvalidSectionOffset)
	})

	t.Run("DecoderReturnsNil", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Register(0x1000, func(c *encoding.Cursor) (Section, error) {
			return nil, nil
		}))

		b := fixture.New(engine).Section(0x1000, nil)
		_, _, err := walk(t, b, reg, nil)
		require.ErrorIs(t, err, errs.ErrMalformedSection)
	})

	t.Run("UnknownNextOffsetTooSmall", func(t *testing.T) {
		b := fixture.New(engine).SectionWithOffset(0x99, 0, nil)
		_, _, err := walk(t, b, DefaultRegistry(), nil)
		require.ErrorIs(t, err, errs.ErrInvalidSectionOffset)
	})

	t.Run("UnknownNextOffsetPastEnd", func(t *testing.T) {
		b := fixture.New(engine).Section(0x99, nil)
		data := b.Build()
		engine.PutUint32(data[FirstSectionOffset+4:], 4096)

		c := encoding.NewCursor(data, engine)
		h, err := DecodeHeader(c)
		require.NoError(t, err)

		_, err = NewWalker(DefaultRegistry(), nil).Walk(c, h.NumSections)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("MoreSectionsThanPresent", func(t *testing.T) {
		b := fixture.New(engine).ItemSection(8, "Single").NumSections(3)
		_, _, err := walk(t, b, DefaultRegistry(), nil)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
		require.Contains(t, err.Error(), "section 1")
	})

	t.Run("ItemDecoderFailure", func(t *testing.T) {
		b := fixture.New(engine).ItemSection(8, "Bad", fixture.Field{Type: 99, Name: "x"})
		_, _, err := walk(t, b, DefaultRegistry(), nil)
		require.ErrorIs(t, err, errs.ErrUnsupportedFieldType)
		require.Contains(t, err.Error(), "decode ItemSection at offset 32")
	})
}

func BenchmarkWalker_Walk(b *testing.B) {
	engine := endian.GetLittleEndianEngine()
	data := fixture.New(engine).
		ItemSection(24, "Tick", tickFields...).
		Section(uint32(format.SectionTime), make([]byte, 20)).
		Section(0x99, make([]byte, 64)).
		Build()

	w := NewWalker(DefaultRegistry(), nil)
	for b.Loop() {
		c := encoding.NewCursor(data, engine)
		_, _ = w.Walk(c, 3)
	}
}
