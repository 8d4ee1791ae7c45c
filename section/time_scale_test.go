package section

import (
	"testing"
	"time"

	"github.com/arloliu/teafile/endian"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
	"github.com/arloliu/teafile/internal/fixture"
	"github.com/stretchr/testify/require"
)

func timeBody(engine endian.EndianEngine, epoch, ticksPerDay int64, offsets ...int32) []byte {
	body := engine.AppendUint64(nil, uint64(epoch))
	body = engine.AppendUint64(body, uint64(ticksPerDay))
	body = engine.AppendUint32(body, uint32(len(offsets)))
	for _, o := range offsets {
		body = engine.AppendUint32(body, uint32(o))
	}

	return body
}

func TestDecodeTimeScaleSection(t *testing.T) {
	for _, engine := range engines() {
		t.Run(endian.Name(engine), func(t *testing.T) {
			b := fixture.New(engine).Section(uint32(format.SectionTime),
				timeBody(engine, format.EpochJava, format.TicksPerDayJava, 0, 16))
			c := sectionCursor(t, b)

			sec, err := DecodeTimeScaleSection(c)
			require.NoError(t, err)
			require.Equal(t, b.SectionsEnd(), c.Pos())

			ts, ok := sec.(*TimeScaleSection)
			require.True(t, ok)
			require.Equal(t, "TimeSection", ts.Name())
			require.Equal(t, format.EpochJava, ts.Epoch)
			require.Equal(t, format.TicksPerDayJava, ts.TicksPerDay)
			require.Equal(t, []int32{0, 16}, ts.TimeFieldOffsets)
			require.True(t, ts.IsTimeField(16))
			require.False(t, ts.IsTimeField(8))
		})
	}
}

func TestDecodeTimeScaleSection_Errors(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	t.Run("ZeroTicksPerDay", func(t *testing.T) {
		c := sectionCursor(t, fixture.New(engine).Section(uint32(format.SectionTime), timeBody(engine, 0, 0)))
		_, err := DecodeTimeScaleSection(c)
		require.ErrorIs(t, err, errs.ErrMalformedSection)
	})

	t.Run("NegativeFieldCount", func(t *testing.T) {
		body := timeBody(engine, format.EpochJava, format.TicksPerDayJava)
		engine.PutUint32(body[16:], 0xFFFFFFFF)
		c := sectionCursor(t, fixture.New(engine).Section(uint32(format.SectionTime), body))

		_, err := DecodeTimeScaleSection(c)
		require.ErrorIs(t, err, errs.ErrMalformedSection)
	})

	t.Run("WrongID", func(t *testing.T) {
		c := sectionCursor(t, fixture.New(engine).Section(uint32(format.SectionItem), nil))
		_, err := DecodeTimeScaleSection(c)
		require.ErrorIs(t, err, errs.ErrSectionIDMismatch)
	})
}

func TestTimeScaleSection_Time(t *testing.T) {
	unix := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		scale TimeScaleSection
		ticks int64
		want  time.Time
	}{
		{"MillisOrigin", TimeScaleSection{Epoch: format.EpochJava, TicksPerDay: format.TicksPerDayJava}, 0, unix},
		{"Millis", TimeScaleSection{Epoch: format.EpochJava, TicksPerDay: format.TicksPerDayJava}, 1500, unix.Add(1500 * time.Millisecond)},
		{"Micros", TimeScaleSection{Epoch: format.EpochJava, TicksPerDay: format.TicksPerDayNet}, 86_400_000_001, unix.AddDate(0, 0, 1).Add(time.Microsecond)},
		{"Days", TimeScaleSection{Epoch: format.EpochJava, TicksPerDay: 1}, 365, unix.AddDate(0, 0, 365)},
		{"NonDividingRate", TimeScaleSection{Epoch: format.EpochJava, TicksPerDay: 7}, 15, unix.AddDate(0, 0, 2).Add(time.Duration(nanosPerDay / 7))},
		{"YearOneEpoch", TimeScaleSection{Epoch: 0, TicksPerDay: 1}, format.EpochJava, unix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.scale.Time(tt.ticks)
			require.WithinDuration(t, tt.want, got, time.Microsecond)
		})
	}
}
