package tsdate

import "fmt"

// encode converts a calendar instant, already truncated to freq's period, to
// its canonical ordinal, per spec.md §4.3.
func encode(freq Frequency, ci CalendarInstant) (int64, error) {
	switch freq {
	case Annual:
		return int64(ci.Year), nil
	case Quarterly:
		return int64(ci.Year-1)*4 + int64(Month(ci.Month).Quarter()), nil
	case Monthly:
		return int64(ci.Year-1)*12 + int64(ci.Month), nil
	case Weekly:
		return encodeWeek(ci), nil
	case Business:
		if ci.DayOfWeek().IsWeekend() {
			return 0, ErrInvalidWeekend.New(simpleDateStr(ci))
		}
		return encodeBusiness(absoluteDay(ci)), nil
	case Daily, Undefined:
		return absoluteDay(ci), nil
	case Hourly:
		return unixRelativeDay(ci)*24 + int64(ci.Hour) + 1, nil
	case Minutely:
		return unixRelativeDay(ci)*1440 + int64(ci.Hour)*60 + int64(ci.Minute) + 1, nil
	case Secondly:
		return unixRelativeDay(ci)*86400 + int64(ci.Hour)*3600 + int64(ci.Minute)*60 + int64(ci.Second) + 1, nil
	default:
		return 0, ErrInvalidFrequency.New(freq.String())
	}
}

// unixRelativeDay returns ci's absolute day relative to 1970-01-01 (== 0),
// the origin used for the sub-day frequencies.
func unixRelativeDay(ci CalendarInstant) int64 {
	return absoluteDay(ci) - absoluteDayEpochOffset
}

// encodeBusiness implements "d − 2w" where w = d // 7, per spec.md §4.3.
func encodeBusiness(absDay int64) int64 {
	w := floorDiv(absDay, 7)
	return absDay - 2*w
}

// encodeWeek advances ci to the Sunday ending its ISO week, then returns
// absolute_day // 7, per spec.md §4.3. Sunday is chosen as the weekly anchor
// (spec.md §9 leaves this as an open implementation choice).
func encodeWeek(ci CalendarInstant) int64 {
	wd := ci.DayOfWeek() // Monday == 0 .. Sunday == 6
	daysToSunday := (int(Sunday) - int(wd) + 7) % 7
	ad := absoluteDay(ci) + int64(daysToSunday)
	return floorDiv(ad, 7)
}

// decode converts an ordinal at freq back to its canonical calendar instant,
// per spec.md §4.3. The returned instant is always the frequency's canonical
// representative (e.g. the last day of the period for A/Q/M).
func decode(freq Frequency, value int64) (CalendarInstant, error) {
	switch freq {
	case Annual:
		return MakeDate(int(value), -1, -1, 0, 0, 0)
	case Quarterly:
		q0 := value - 1
		year := int(floorDiv(q0, 4)) + 1
		quarterIdx := int(floorMod(q0, 4))
		month := (quarterIdx + 1) * 3
		return MakeDate(year, month, -1, 0, 0, 0)
	case Monthly:
		m0 := value - 1
		year := int(floorDiv(m0, 12)) + 1
		month := int(floorMod(m0, 12)) + 1
		return MakeDate(year, month, -1, 0, 0, 0)
	case Weekly:
		ad := 7*(value-1) + 7
		ci := fromAbsoluteDay(ad)
		return ci, nil
	case Business:
		vPrime := floorDiv(value-1, 5)
		ad := value + vPrime*7 - vPrime*5
		ci := fromAbsoluteDay(ad)
		if ci.DayOfWeek().IsWeekend() {
			return CalendarInstant{}, ErrOutOfRange.New(fmt.Sprintf("business ordinal %d decodes to a weekend", value))
		}
		return ci, nil
	case Daily, Undefined:
		return fromAbsoluteDay(value), nil
	case Hourly:
		n := value - 1
		ad := floorDiv(n, 24) + absoluteDayEpochOffset
		hour := int(floorMod(n, 24))
		ci := fromAbsoluteDay(ad)
		ci.Hour = hour
		return ci, nil
	case Minutely:
		n := value - 1
		ad := floorDiv(n, 1440) + absoluteDayEpochOffset
		rem := floorMod(n, 1440)
		ci := fromAbsoluteDay(ad)
		ci.Hour, ci.Minute = int(rem/60), int(rem%60)
		return ci, nil
	case Secondly:
		n := value - 1
		ad := floorDiv(n, 86400) + absoluteDayEpochOffset
		rem := floorMod(n, 86400)
		ci := fromAbsoluteDay(ad)
		ci.Hour, ci.Minute, ci.Second = int(rem/3600), int((rem%3600)/60), int(rem%60)
		return ci, nil
	default:
		return CalendarInstant{}, ErrInvalidFrequency.New(freq.String())
	}
}

// truncate projects a calendar instant onto the canonical representative of
// its period at freq, per spec.md §4.3.
func truncate(freq Frequency, ci CalendarInstant) (CalendarInstant, error) {
	switch freq {
	case Annual:
		return MakeDate(ci.Year, -1, -1, 0, 0, 0)
	case Quarterly:
		return MakeDate(ci.Year, Month(ci.Month).Quarter()*3, -1, 0, 0, 0)
	case Monthly:
		return MakeDate(ci.Year, ci.Month, -1, 0, 0, 0)
	case Weekly:
		ad := encodeWeek(ci)
		return fromAbsoluteDay(7 * ad), nil
	case Business:
		if ci.DayOfWeek().IsWeekend() {
			return CalendarInstant{}, ErrInvalidWeekend.New(simpleDateStr(ci))
		}
		return CalendarInstant{Year: ci.Year, Month: ci.Month, Day: ci.Day}, nil
	case Daily:
		return CalendarInstant{Year: ci.Year, Month: ci.Month, Day: ci.Day}, nil
	case Hourly:
		return CalendarInstant{Year: ci.Year, Month: ci.Month, Day: ci.Day, Hour: ci.Hour}, nil
	case Minutely:
		return CalendarInstant{Year: ci.Year, Month: ci.Month, Day: ci.Day, Hour: ci.Hour, Minute: ci.Minute}, nil
	case Secondly, Undefined:
		return ci, nil
	default:
		return CalendarInstant{}, ErrInvalidFrequency.New(freq.String())
	}
}
