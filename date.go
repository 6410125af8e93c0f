package tsdate

import (
	"fmt"
	"hash/fnv"
)

// Date is an immutable (frequency, ordinal) pair, per spec.md §3/§4.5. The
// ordinal is canonical for its frequency: decoding then re-encoding it always
// returns the same value.
type Date struct {
	freq    Frequency
	ordinal int64
}

// Freq returns d's frequency.
func (d Date) Freq() Frequency {
	return d.freq
}

// Ordinal returns d's raw integer ordinal.
func (d Date) Ordinal() int64 {
	return d.ordinal
}

// NewDate constructs a Date directly from an ordinal at freq, decoding it to
// validate the invariants of §3 (e.g. that a Business ordinal never lands on
// a weekend).
func NewDate(freq Frequency, ordinal int64) (Date, error) {
	if _, err := decode(freq, ordinal); err != nil {
		return Date{}, err
	}
	return Date{freq: freq, ordinal: ordinal}, nil
}

// NewDateFromInstant truncates ci to freq's period and returns the resulting
// Date.
func NewDateFromInstant(freq Frequency, ci CalendarInstant) (Date, error) {
	truncated, err := truncate(freq, ci)
	if err != nil {
		return Date{}, err
	}
	ordinal, err := encode(freq, truncated)
	if err != nil {
		return Date{}, err
	}
	return Date{freq: freq, ordinal: ordinal}, nil
}

// ParseDate parses s as an ISO-ish date (see ParseISO) and truncates it to
// freq's period.
func ParseDate(freq Frequency, s string) (Date, error) {
	ci, err := ParseISO(s)
	if err != nil {
		return Date{}, err
	}
	return NewDateFromInstant(freq, ci)
}

// DateFields are the calendar fields accepted by NewDateFromFields. A nil
// pointer means the field was not supplied.
type DateFields struct {
	Year    *int
	Quarter *int
	Month   *int
	Day     *int
	Hour    *int
	Minute  *int
	Second  *int
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// NewDateFromFields validates the fields required for freq (spec.md §4.5's
// table) and constructs the corresponding Date, deriving any fields the
// frequency fills in automatically (e.g. day=last for Annual).
func NewDateFromFields(freq Frequency, f DateFields) (Date, error) {
	missing := func(what string) (Date, error) {
		return Date{}, ErrInsufficientDate.New(freq.String(), "missing "+what)
	}

	switch freq {
	case Annual:
		if f.Year == nil {
			return missing("year")
		}
		ci, err := MakeDate(*f.Year, -1, -1, 0, 0, 0)
		if err != nil {
			return Date{}, err
		}
		return NewDateFromInstant(freq, ci)

	case Quarterly:
		if f.Year == nil || f.Quarter == nil {
			return missing("year/quarter")
		}
		if *f.Quarter < 1 || *f.Quarter > 4 {
			return Date{}, fmt.Errorf("invalid quarter %d", *f.Quarter)
		}
		ci, err := MakeDate(*f.Year, *f.Quarter*3, -1, 0, 0, 0)
		if err != nil {
			return Date{}, err
		}
		return NewDateFromInstant(freq, ci)

	case Monthly:
		if f.Year == nil || f.Month == nil {
			return missing("year/month")
		}
		ci, err := MakeDate(*f.Year, *f.Month, -1, 0, 0, 0)
		if err != nil {
			return Date{}, err
		}
		return NewDateFromInstant(freq, ci)

	case Weekly, Business, Daily, Undefined:
		if f.Year == nil || f.Month == nil || f.Day == nil {
			return missing("year/month/day")
		}
		ci, err := MakeDate(*f.Year, *f.Month, *f.Day, intOrZero(f.Hour), intOrZero(f.Minute), intOrZero(f.Second))
		if err != nil {
			return Date{}, err
		}
		if freq == Business && ci.DayOfWeek().IsWeekend() {
			return Date{}, ErrInvalidWeekend.New(simpleDateStr(ci))
		}
		return NewDateFromInstant(freq, ci)

	case Hourly, Minutely, Secondly:
		if f.Year == nil || f.Month == nil || f.Day == nil {
			return missing("year/month/day")
		}
		ci, err := MakeDate(*f.Year, *f.Month, *f.Day, intOrZero(f.Hour), intOrZero(f.Minute), intOrZero(f.Second))
		if err != nil {
			return Date{}, err
		}
		return NewDateFromInstant(freq, ci)

	default:
		return Date{}, ErrInvalidFrequency.New(freq.String())
	}
}

func (d Date) instant() CalendarInstant {
	ci, err := decode(d.freq, d.ordinal)
	if err != nil {
		// d's invariants guarantee this never happens: d was only ever
		// constructed through paths that validate decode(d.freq, d.ordinal).
		panic(err.Error())
	}
	return ci
}

// Year returns the calendar year of d.
func (d Date) Year() int { return d.instant().Year }

// Month returns the calendar month of d.
func (d Date) Month() Month { return Month(d.instant().Month) }

// Quarter returns the calendar quarter (1-4) of d.
func (d Date) Quarter() int { return Month(d.instant().Month).Quarter() }

// Day returns the day of the month of d.
func (d Date) Day() int { return d.instant().Day }

// Hour returns the hour of day of d.
func (d Date) Hour() int { return d.instant().Hour }

// Minute returns the minute of the hour of d.
func (d Date) Minute() int { return d.instant().Minute }

// Second returns the second of the minute of d.
func (d Date) Second() int { return d.instant().Second }

// DayOfWeek returns the weekday of d.
func (d Date) DayOfWeek() Weekday { return d.instant().DayOfWeek() }

// DayOfYear returns the 1-based ordinal day within d's year.
func (d Date) DayOfYear() int { return d.instant().DayOfYear() }

// Week returns the ISO week number containing d.
func (d Date) Week() int {
	_, week := d.instant().WeekOfYear()
	return week
}

// Add returns the date d+k (same frequency). It panics if the addition would
// overflow an int64 ordinal.
func (d Date) Add(k int64) Date {
	sum, under, over := addInt64(d.ordinal, k)
	if under || over {
		panic(ErrArithmeticDate.New(fmt.Sprintf("%d + %d overflows", d.ordinal, k)).Error())
	}
	return Date{freq: d.freq, ordinal: sum}
}

// Sub returns the date d-k (same frequency). It panics if the subtraction
// would overflow an int64 ordinal.
func (d Date) Sub(k int64) Date {
	return d.Add(-k)
}

// Diff returns d-other as an integer count of periods. Both must share a
// frequency, or ErrFrequencyMismatch is returned.
func (d Date) Diff(other Date) (int64, error) {
	if d.freq != other.freq {
		return 0, ErrFrequencyMismatch.New(d.freq.String(), other.freq.String())
	}
	return d.ordinal - other.ordinal, nil
}

// Compare compares d with other, which must share d's frequency. It returns
// -1, 0, or 1 as d is before, equal to, or after other.
func (d Date) Compare(other Date) (int, error) {
	if d.freq != other.freq {
		return 0, ErrFrequencyMismatch.New(d.freq.String(), other.freq.String())
	}
	switch {
	case d.ordinal < other.ordinal:
		return -1, nil
	case d.ordinal > other.ordinal:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports whether d and other share a frequency and ordinal.
func (d Date) Equal(other Date) bool {
	return d.freq == other.freq && d.ordinal == other.ordinal
}

// AsFreq converts d to the supplied frequency under relation, per spec.md
// §4.4. It returns false if the conversion is undefined.
func (d Date) AsFreq(to Frequency, relation Relation) (Date, bool) {
	v, ok := AsFreq(d.ordinal, d.freq, to, relation)
	if !ok {
		return Date{}, false
	}
	return Date{freq: to, ordinal: v}, true
}

// Hash combines d's frequency tag and ordinal into a single hash value,
// suitable for use as a map key alongside other Dates.
func (d Date) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(d.freq.String()))
	fmt.Fprintf(h, ":%d", d.ordinal)
	return h.Sum64()
}

// Format renders d according to layout (see formatInstant for the supported
// directives, plus the custom %q quarter extension).
func (d Date) Format(layout string) (string, error) {
	return formatInstant(d.instant(), layout)
}

// String renders d using its frequency's default format.
func (d Date) String() string {
	s, err := formatInstant(d.instant(), DefaultFormat(d.freq))
	if err != nil {
		return fmt.Sprintf("%s@%d", d.freq, d.ordinal)
	}
	return s
}
