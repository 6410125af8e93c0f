package tsdate

// now returns the current calendar instant in UTC, reading the runtime's
// wall clock directly rather than going through time.Now, mirroring the
// teacher's low-overhead clock access (unsafe.go).
func now() CalendarInstant {
	secs, nsec := walltime()
	ad := floorDiv(secs, 86400) + absoluteDayEpochOffset
	secOfDay := floorMod(secs, 86400)
	ci := fromAbsoluteDay(ad)
	ci.Hour = int(secOfDay / 3600)
	ci.Minute = int((secOfDay % 3600) / 60)
	ci.Second = int(secOfDay % 60)
	_ = nsec // sub-second resolution is outside this engine's whole-second model
	return ci
}

// Today returns the current date at freq, truncating the wall clock to
// freq's period, per spec.md §6.
func Today(freq Frequency) (Date, error) {
	return NewDateFromInstant(freq, now())
}

// PrevBusDay returns the most recent business day, treating "today" as
// having rolled over only once the wall clock passes dayEndHour:dayEndMinute,
// per spec.md §6's cutoff-aware variant of the original's prevbusday.
func PrevBusDay(dayEndHour, dayEndMinute int) (Date, error) {
	ci := now()
	if ci.Hour < dayEndHour || (ci.Hour == dayEndHour && ci.Minute < dayEndMinute) {
		ci = AddDelta(ci, Delta{Days: -1})
	}

	today, err := NewDateFromInstant(Business, ci)
	if err == nil {
		return today, nil
	}

	// ci fell on a weekend: walk back to the prior business day.
	d, err := NewDateFromInstant(Daily, ci)
	if err != nil {
		return Date{}, err
	}
	return d.AsFreqErr(Business, Before)
}

// AsFreqErr is the error-returning counterpart to Date.AsFreq, used where an
// undefined conversion is a caller bug rather than an expected outcome.
func (d Date) AsFreqErr(to Frequency, relation Relation) (Date, error) {
	out, ok := d.AsFreq(to, relation)
	if !ok {
		return Date{}, ErrOutOfRange.New(d.String())
	}
	return out, nil
}

// IsDate reports whether v is a Date.
func IsDate(v interface{}) bool {
	_, ok := v.(Date)
	return ok
}

// IsDateArray reports whether v is a DateArray.
func IsDateArray(v interface{}) bool {
	_, ok := v.(DateArray)
	return ok
}

// The following free functions mirror the per-field accessors embedded
// library surface of spec.md §6. The per-Date functions wrap the Date
// methods in date.go; the per-array functions (Days, Weekdays, ...) exist
// only as package-level functions, DateArray has no accessor methods of its
// own.

// Year returns d's calendar year.
func Year(d Date) int { return d.Year() }

// Quarter returns d's calendar quarter.
func Quarter(d Date) int { return d.Quarter() }

// MonthOf returns d's calendar month.
func MonthOf(d Date) Month { return d.Month() }

// Day returns d's day of month.
func Day(d Date) int { return d.Day() }

// WeekdayOf returns d's day of week.
func WeekdayOf(d Date) Weekday { return d.DayOfWeek() }

// Yearday returns d's 1-based day of year.
func Yearday(d Date) int { return d.DayOfYear() }

// Days returns the Day (day of month) of every element of a.
func Days(a DateArray) []int {
	out := make([]int, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.At(i).Day()
	}
	return out
}

// Weekdays returns the DayOfWeek of every element of a.
func Weekdays(a DateArray) []Weekday {
	out := make([]Weekday, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.At(i).DayOfWeek()
	}
	return out
}

// Yeardays returns the DayOfYear of every element of a.
func Yeardays(a DateArray) []int {
	out := make([]int, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.At(i).DayOfYear()
	}
	return out
}

// Months returns the Month of every element of a.
func Months(a DateArray) []Month {
	out := make([]Month, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.At(i).Month()
	}
	return out
}

// Quarters returns the Quarter of every element of a.
func Quarters(a DateArray) []int {
	out := make([]int, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.At(i).Quarter()
	}
	return out
}

// Years returns the Year of every element of a.
func Years(a DateArray) []int {
	out := make([]int, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.At(i).Year()
	}
	return out
}

// Hours returns the Hour of every element of a.
func Hours(a DateArray) []int {
	out := make([]int, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.At(i).Hour()
	}
	return out
}

// Minutes returns the Minute of every element of a.
func Minutes(a DateArray) []int {
	out := make([]int, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.At(i).Minute()
	}
	return out
}

// Seconds returns the Second of every element of a.
func Seconds(a DateArray) []int {
	out := make([]int, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.At(i).Second()
	}
	return out
}

// Weeks returns the ISO week number of every element of a.
func Weeks(a DateArray) []int {
	out := make([]int, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.At(i).Week()
	}
	return out
}
