package section

import (
	"fmt"
	"time"

	"github.com/arloliu/teafile/encoding"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
)

const nanosPerDay = int64(24 * time.Hour)

// TimeScaleSection is the time section with its body decoded.
//
// It is produced by DecodeTimeScaleSection, which is not registered by
// default. Opt in with:
//
//	reg.Replace(format.SectionTime, section.DecodeTimeScaleSection)
type TimeScaleSection struct {
	Descriptor

	// Epoch is the day count from 0001-01-01 to the time origin.
	Epoch int64
	// TicksPerDay is the time resolution.
	TicksPerDay int64
	// TimeFieldOffsets lists the record offsets of the fields holding times.
	TimeFieldOffsets []int32
}

func (*TimeScaleSection) Name() string { return format.SectionTime.String() }

// DecodeTimeScaleSection decodes the time section body.
//
// Body format:
//   - Epoch: int64
//   - TicksPerDay: int64
//   - TimeFieldCount: int32
//   - TimeFieldOffsets: TimeFieldCount × int32
func DecodeTimeScaleSection(c *encoding.Cursor) (Section, error) {
	d, err := ReadPreamble(c, format.SectionTime)
	if err != nil {
		return nil, err
	}

	s := &TimeScaleSection{Descriptor: d}

	if s.Epoch, err = c.ReadInt64(); err != nil {
		return nil, fmt.Errorf("epoch: %w", err)
	}

	if s.TicksPerDay, err = c.ReadInt64(); err != nil {
		return nil, fmt.Errorf("ticks per day: %w", err)
	}

	if s.TicksPerDay <= 0 {
		return nil, fmt.Errorf("%w: ticks per day %d at offset %d", errs.ErrMalformedSection, s.TicksPerDay, d.Offset)
	}

	count, err := c.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("time field count: %w", err)
	}

	if count < 0 || int(count) > c.Remaining()/4 {
		return nil, fmt.Errorf("%w: time field count %d at offset %d", errs.ErrMalformedSection, count, d.Offset)
	}

	s.TimeFieldOffsets = make([]int32, count)
	for i := range s.TimeFieldOffsets {
		// count was checked against the remaining bytes
		s.TimeFieldOffsets[i], _ = c.ReadInt32()
	}

	if err := d.SeekEnd(c); err != nil {
		return nil, err
	}

	return s, nil
}

// IsTimeField reports whether the field at offset holds a time value.
func (s *TimeScaleSection) IsTimeField(offset int32) bool {
	for _, o := range s.TimeFieldOffsets {
		if o == offset {
			return true
		}
	}

	return false
}

// Time converts a tick count to a UTC time.
func (s *TimeScaleSection) Time(ticks int64) time.Time {
	origin := time.Unix(0, 0).UTC().AddDate(0, 0, int(s.Epoch-format.EpochUnix))

	days := ticks / s.TicksPerDay
	rem := ticks % s.TicksPerDay

	var frac time.Duration
	if nanosPerDay%s.TicksPerDay == 0 {
		frac = time.Duration(rem * (nanosPerDay / s.TicksPerDay))
	} else {
		frac = time.Duration(float64(rem) / float64(s.TicksPerDay) * float64(nanosPerDay))
	}

	return origin.AddDate(0, 0, int(days)).Add(frac)
}
