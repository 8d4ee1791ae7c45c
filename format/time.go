package format

// Time scale constants used by TeaFile time sections. An epoch is a day count
// since 0001-01-01 and a tick rate is the number of ticks per day.
const (
	EpochJava       int64 = 719162         // EpochJava is 1970-01-01 expressed in days since 0001-01-01.
	TicksPerDayJava int64 = 86_400_000     // TicksPerDayJava is millisecond resolution.
	TicksPerDayNet  int64 = 86_400_000_000 // TicksPerDayNet is microsecond resolution.

	EpochUnix             = EpochJava
	PrecisionMilliseconds = TicksPerDayJava
	PrecisionMicroseconds = TicksPerDayNet
)
