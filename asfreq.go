package tsdate

// Relation selects which endpoint of a covering interval asfreq resolves to
// when converting between frequencies, per spec.md §4.4.
type Relation int

const (
	// Before resolves to the first instant of the covering interval.
	Before Relation = iota
	// After resolves to the last instant of the covering interval.
	After
)

func (r Relation) String() string {
	if r == Before {
		return "Before"
	}
	return "After"
}

// ParseRelation accepts any string whose first letter (case-folded) is 'B' or
// 'A'; anything else is ErrInvalidRelation. This normalizes both the
// single-letter ("B"/"A") and full-word ("Before"/"After") forms that spec.md
// §9 notes the original package used inconsistently between Date and
// DateArray.
func ParseRelation(s string) (Relation, error) {
	if s == "" {
		return Before, ErrInvalidRelation.New(s)
	}
	switch s[0] | 0x20 {
	case 'b':
		return Before, nil
	case 'a':
		return After, nil
	default:
		return Before, ErrInvalidRelation.New(s)
	}
}

// subDayRank orders the sub-day frequencies by resolution; date-class
// frequencies and Undefined rank 0 (day resolution).
func subDayRank(f Frequency) int {
	switch f {
	case Hourly:
		return 1
	case Minutely:
		return 2
	case Secondly:
		return 3
	default:
		return 0
	}
}

// periodBounds returns the first and last calendar instant covered by value
// at frequency from, per spec.md §4.4's "interpret value as a half-open
// interval" rule.
func periodBounds(from Frequency, value int64) (start, end CalendarInstant, err error) {
	end, err = decode(from, value)
	if err != nil {
		return CalendarInstant{}, CalendarInstant{}, err
	}

	switch from {
	case Annual:
		start, err = MakeDate(end.Year, int(January), 1, 0, 0, 0)
	case Quarterly:
		startMonth := Month(end.Month).Quarter()*3 - 2
		start, err = MakeDate(end.Year, startMonth, 1, 0, 0, 0)
	case Monthly:
		start, err = MakeDate(end.Year, end.Month, 1, 0, 0, 0)
	case Weekly:
		start = AddDelta(end, Delta{Days: -6})
	default:
		start = end
	}
	if err != nil {
		return CalendarInstant{}, CalendarInstant{}, err
	}
	return start, end, nil
}

// adjustWeekend moves a weekend instant onto the adjacent business day,
// per spec.md §4.4's "D → B" rule: Before moves back to Friday, After moves
// forward to Monday.
func adjustWeekend(ci CalendarInstant, relation Relation) CalendarInstant {
	var days int64
	switch ci.DayOfWeek() {
	case Saturday:
		if relation == Before {
			days = -1
		} else {
			days = 2
		}
	case Sunday:
		if relation == Before {
			days = -2
		} else {
			days = 1
		}
	default:
		return ci
	}
	return AddDelta(ci, Delta{Days: days})
}

// AsFreq converts value, interpreted at frequency from, to an ordinal at
// frequency to, per spec.md §4.4. It returns false if the conversion is
// undefined (e.g. the resulting ordinal would be non-positive for a
// date-class target).
func AsFreq(value int64, from, to Frequency, relation Relation) (int64, bool) {
	if from == to {
		return value, true
	}

	start, end, err := periodBounds(from, value)
	if err != nil {
		return 0, false
	}

	chosen := start
	if relation == After {
		chosen = end
	}

	fromRank, toRank := subDayRank(from), subDayRank(to)
	if toRank > fromRank {
		if relation == Before {
			if fromRank < 1 {
				chosen.Hour = 0
			}
			if fromRank < 2 {
				chosen.Minute = 0
			}
			if fromRank < 3 {
				chosen.Second = 0
			}
		} else {
			if fromRank < 1 {
				chosen.Hour = 23
			}
			if fromRank < 2 {
				chosen.Minute = 59
			}
			if fromRank < 3 {
				chosen.Second = 59
			}
		}
	}

	if to == Business {
		chosen = adjustWeekend(chosen, relation)
	}

	v, err := encode(to, chosen)
	if err != nil {
		return 0, false
	}

	if to.TypeClass() != TimeClass && v <= 0 {
		return 0, false
	}
	return v, true
}

// AsFreqString is the string-relation convenience overload of AsFreq, for
// callers that hold relation as a bare letter or word; see ParseRelation.
func AsFreqString(value int64, from, to Frequency, relation string) (int64, bool, error) {
	r, err := ParseRelation(relation)
	if err != nil {
		return 0, false, err
	}
	v, ok := AsFreq(value, from, to, r)
	return v, ok, nil
}
