package tsdate

// Exported aliases of internal symbols, for use by the external tsdate_test
// package. Mirrors the teacher's own export_test.go pattern.

var (
	Encode   = encode
	Decode   = decode
	Truncate = truncate
)

func MakeCalendarInstant(year, month, day, hour, minute, second int) CalendarInstant {
	return CalendarInstant{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
}

func AbsoluteDay(ci CalendarInstant) int64 { return absoluteDay(ci) }

func FromAbsoluteDay(ad int64) CalendarInstant { return fromAbsoluteDay(ad) }
