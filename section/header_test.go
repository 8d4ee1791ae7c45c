package section

import (
	"testing"

	"github.com/arloliu/teafile/encoding"
	"github.com/arloliu/teafile/endian"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
	"github.com/arloliu/teafile/internal/fixture"
	"github.com/stretchr/testify/require"
)

func TestDecodeHeader(t *testing.T) {
	t.Run("BigEndian", func(t *testing.T) {
		data := fixture.Header(endian.GetBigEndianEngine(), format.MagicNumber, 32, 0, 0)
		c := encoding.NewCursor(data, endian.GetLittleEndianEngine())

		h, err := DecodeHeader(c)
		require.NoError(t, err)
		require.Equal(t, format.MagicNumber, h.MagicNumber)
		require.Equal(t, uint64(32), h.ItemAreaStart)
		require.Equal(t, uint64(0), h.ItemAreaEnd)
		require.Equal(t, uint64(0), h.NumSections)
		require.False(t, h.IsBounded())
		require.True(t, endian.IsBigEndian(h.Engine))
		require.True(t, endian.IsBigEndian(c.Engine()))
		require.Equal(t, HeaderSize, c.Pos())
	})

	t.Run("LittleEndian", func(t *testing.T) {
		data := fixture.Header(endian.GetLittleEndianEngine(), format.MagicNumber, 32, 0, 0)
		c := encoding.NewCursor(data, endian.GetBigEndianEngine())

		h, err := DecodeHeader(c)
		require.NoError(t, err)
		require.Equal(t, uint64(32), h.ItemAreaStart)
		require.False(t, endian.IsBigEndian(h.Engine))
		require.False(t, endian.IsBigEndian(c.Engine()))
		require.Equal(t, HeaderSize, c.Pos())
	})
}

func TestDecodeHeader_ByteOrderEquivalence(t *testing.T) {
	tests := []struct {
		name                    string
		start, end, numSections uint64
	}{
		{"Unbounded", 32, 0, 0},
		{"Bounded", 200, 360, 3},
		{"LargeOffsets", 1 << 40, 1<<40 + 1600, 1},
		{"AllBitsSet", 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE, 0x0102030405060708},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			big := fixture.Header(endian.GetBigEndianEngine(), format.MagicNumber, tt.start, tt.end, tt.numSections)
			little := fixture.Header(endian.GetLittleEndianEngine(), format.MagicNumber, tt.start, tt.end, tt.numSections)

			hb, err := DecodeHeader(encoding.NewCursor(big, endian.GetBigEndianEngine()))
			require.NoError(t, err)
			hl, err := DecodeHeader(encoding.NewCursor(little, endian.GetBigEndianEngine()))
			require.NoError(t, err)

			require.True(t, endian.IsBigEndian(hb.Engine))
			require.False(t, endian.IsBigEndian(hl.Engine))

			hb.Engine, hl.Engine = nil, nil
			require.Equal(t, hb, hl)
			require.Equal(t, tt.start, hb.ItemAreaStart)
			require.Equal(t, tt.end, hb.ItemAreaEnd)
			require.Equal(t, tt.numSections, hb.NumSections)
		})
	}
}

func TestDecodeHeader_Truncated(t *testing.T) {
	full := fixture.Header(endian.GetBigEndianEngine(), format.MagicNumber, 32, 0, 0)

	for n := 0; n < HeaderSize; n++ {
		c := encoding.NewCursor(full[:n], endian.GetBigEndianEngine())
		_, err := DecodeHeader(c)
		require.ErrorIs(t, err, errs.ErrTruncatedHeader, "length %d", n)
		require.Zero(t, c.Pos())
	}
}

func TestDecodeHeader_InvalidMagic(t *testing.T) {
	t.Run("Zeros", func(t *testing.T) {
		_, err := DecodeHeader(encoding.NewCursor(make([]byte, HeaderSize), endian.GetBigEndianEngine()))
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("OffByOne", func(t *testing.T) {
		data := fixture.Header(endian.GetBigEndianEngine(), format.MagicNumber+1, 32, 0, 0)
		_, err := DecodeHeader(encoding.NewCursor(data, endian.GetBigEndianEngine()))
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
		require.Contains(t, err.Error(), "0x0D0E0A0402080500")
	})
}

func TestHeader_ItemAreaBounds(t *testing.T) {
	h := Header{ItemAreaStart: 64}
	start, end := h.ItemAreaBounds(224)
	require.Equal(t, uint64(64), start)
	require.Equal(t, uint64(224), end)

	h.ItemAreaEnd = 128
	require.True(t, h.IsBounded())
	start, end = h.ItemAreaBounds(224)
	require.Equal(t, uint64(64), start)
	require.Equal(t, uint64(128), end)
}

func TestHeader_AppendTo(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetBigEndianEngine(), endian.GetLittleEndianEngine()} {
		t.Run(endian.Name(engine), func(t *testing.T) {
			h := Header{MagicNumber: format.MagicNumber, ItemAreaStart: 96, ItemAreaEnd: 256, NumSections: 2}

			data := h.AppendTo(nil, engine)
			require.Len(t, data, HeaderSize)
			require.Equal(t, fixture.Header(engine, format.MagicNumber, 96, 256, 2), data)

			parsed, err := DecodeHeader(encoding.NewCursor(data, endian.GetBigEndianEngine()))
			require.NoError(t, err)
			require.Equal(t, engine, parsed.Engine)
			parsed.Engine = nil
			require.Equal(t, h, parsed)
		})
	}
}

func BenchmarkDecodeHeader(b *testing.B) {
	data := fixture.Header(endian.GetLittleEndianEngine(), format.MagicNumber, 32, 0, 0)
	for b.Loop() {
		_, _ = DecodeHeader(encoding.NewCursor(data, endian.GetBigEndianEngine()))
	}
}
