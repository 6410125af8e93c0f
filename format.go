package tsdate

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultFormat returns the default strftime-style layout for freq, per
// spec.md §4.5.
func DefaultFormat(freq Frequency) string {
	switch freq {
	case Annual:
		return "%Y"
	case Quarterly:
		return "%YQ%q"
	case Monthly:
		return "%b-%Y"
	case Weekly:
		return "%YW%W"
	case Hourly:
		return "%d-%b-%Y %H:00"
	case Minutely:
		return "%d-%b-%Y %H:%M"
	case Secondly:
		return "%d-%b-%Y %H:%M:%S"
	default: // Business, Daily, Undefined
		return "%d-%b-%y"
	}
}

// formatInstant renders ci according to layout. %q (the quarter digit, 1-4)
// is a custom extension handled before the remaining directives, which
// otherwise follow the conventional strftime alphabet, per spec.md §4.5/§6.
func formatInstant(ci CalendarInstant, layout string) (string, error) {
	layout = expandQuarter(layout, ci)

	var b strings.Builder
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' || i == len(layout)-1 {
			b.WriteByte(c)
			continue
		}

		i++
		switch layout[i] {
		case '%':
			b.WriteByte('%')
		case 'Y':
			fmt.Fprintf(&b, "%04d", ci.Year)
		case 'y':
			fmt.Fprintf(&b, "%02d", ci.Year%100)
		case 'm':
			fmt.Fprintf(&b, "%02d", ci.Month)
		case 'B':
			b.WriteString(Month(ci.Month).String())
		case 'b':
			b.WriteString(Month(ci.Month).short())
		case 'd':
			fmt.Fprintf(&b, "%02d", ci.Day)
		case 'j':
			fmt.Fprintf(&b, "%03d", ci.DayOfYear())
		case 'A':
			b.WriteString(ci.DayOfWeek().String())
		case 'a':
			b.WriteString(shortDayNames[ci.DayOfWeek()])
		case 'u':
			fmt.Fprintf(&b, "%d", int(ci.DayOfWeek())+1)
		case 'H':
			fmt.Fprintf(&b, "%02d", ci.Hour)
		case 'M':
			fmt.Fprintf(&b, "%02d", ci.Minute)
		case 'S':
			fmt.Fprintf(&b, "%02d", ci.Second)
		case 'G':
			isoYear, _ := ci.WeekOfYear()
			fmt.Fprintf(&b, "%04d", isoYear)
		case 'V':
			_, isoWeek := ci.WeekOfYear()
			fmt.Fprintf(&b, "%02d", isoWeek)
		case 'W':
			// Monday-first week of the year; days before the first Monday are week 00.
			fmt.Fprintf(&b, "%02d", (ci.DayOfYear()-1+7-int(ci.DayOfWeek()))/7)
		default:
			return "", fmt.Errorf("unsupported format specifier %%%c", layout[i])
		}
	}
	return b.String(), nil
}

// expandQuarter replaces every "%q" in layout with ci's quarter digit (1-4),
// before the rest of the layout is handed to the calendar formatter.
func expandQuarter(layout string, ci CalendarInstant) string {
	if !strings.Contains(layout, "%q") {
		return layout
	}
	return strings.ReplaceAll(layout, "%q", strconv.Itoa(Month(ci.Month).Quarter()))
}
