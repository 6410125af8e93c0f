package tsdate

import (
	"fmt"
	"math"
	"sort"
)

// ListKind classifies the elements of a list passed to DateArrayFromList,
// replacing runtime type introspection with an explicit enum produced by a
// single classifier, per spec.md §9.
type ListKind int

const (
	KindRawOrdinals ListKind = iota
	KindStrings
	KindCalendarInstants
	KindDates
)

func classifyList(items []interface{}) (ListKind, error) {
	if len(items) == 0 {
		return KindRawOrdinals, nil
	}
	switch items[0].(type) {
	case string:
		return KindStrings, nil
	case int, int64, float64:
		return KindRawOrdinals, nil
	case CalendarInstant:
		return KindCalendarInstants, nil
	case Date:
		return KindDates, nil
	default:
		return 0, fmt.Errorf("unsupported date_array element type %T", items[0])
	}
}

func toFloat64(v interface{}) (float64, error) {
	switch t := v.(type) {
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case float64:
		return t, nil
	default:
		return 0, fmt.Errorf("not numeric: %T", v)
	}
}

// DateArrayFromList builds a DateArray from a heterogeneous list of strings,
// raw ordinals (int/int64/float64), CalendarInstants, or Dates, per spec.md
// §4.7. If freq is nil, a list of Dates takes the frequency of its first
// element; every other kind of list has its frequency inferred with GuessFreq.
func DateArrayFromList(items []interface{}, freq *Frequency) (DateArray, error) {
	kind, err := classifyList(items)
	if err != nil {
		return DateArray{}, err
	}

	switch kind {
	case KindDates:
		f := Undefined
		if freq != nil {
			f = *freq
		} else if len(items) > 0 {
			f = items[0].(Date).freq
		}
		ordinals := make([]int64, len(items))
		for i, v := range items {
			d := v.(Date)
			if d.freq != f {
				converted, ok := AsFreq(d.ordinal, d.freq, f, Before)
				if !ok {
					return DateArray{}, ErrOutOfRange.New(fmt.Sprintf("element %d has no defined conversion to %s", i, f))
				}
				ordinals[i] = converted
			} else {
				ordinals[i] = d.ordinal
			}
		}
		return DateArray{freq: f, ordinals: ordinals}, nil

	case KindCalendarInstants:
		days := make([]float64, len(items))
		for i, v := range items {
			days[i] = float64(absoluteDay(v.(CalendarInstant)))
		}
		f := Undefined
		if freq != nil {
			f = *freq
		} else {
			f = GuessFreq(days)
		}
		ordinals := make([]int64, len(items))
		for i, v := range items {
			d, err := NewDateFromInstant(f, v.(CalendarInstant))
			if err != nil {
				return DateArray{}, err
			}
			ordinals[i] = d.ordinal
		}
		return DateArray{freq: f, ordinals: ordinals}, nil

	case KindStrings:
		parsed := make([]CalendarInstant, len(items))
		for i, v := range items {
			ci, err := ParseISO(v.(string))
			if err != nil {
				return DateArray{}, err
			}
			parsed[i] = ci
		}
		f := Undefined
		if freq != nil {
			f = *freq
		} else {
			days := make([]float64, len(parsed))
			for i, ci := range parsed {
				days[i] = float64(absoluteDay(ci))
			}
			f = GuessFreq(days)
		}
		ordinals := make([]int64, len(parsed))
		for i, ci := range parsed {
			d, err := NewDateFromInstant(f, ci)
			if err != nil {
				return DateArray{}, err
			}
			ordinals[i] = d.ordinal
		}
		return DateArray{freq: f, ordinals: ordinals}, nil

	default: // KindRawOrdinals
		values := make([]float64, len(items))
		for i, v := range items {
			fv, err := toFloat64(v)
			if err != nil {
				return DateArray{}, err
			}
			values[i] = fv
		}
		f := Undefined
		if freq != nil {
			f = *freq
		} else {
			f = GuessFreq(values)
		}
		ordinals := make([]int64, len(values))
		for i, v := range values {
			ordinals[i] = int64(v)
		}
		return DateArray{freq: f, ordinals: ordinals}, nil
	}
}

// DateArrayFromDateArray re-expresses in at freq, applying AsFreq if the
// frequency differs, per spec.md §4.7's "If list given and it is already a
// DateArray" branch.
func DateArrayFromDateArray(in DateArray, freq Frequency) (DateArray, error) {
	if in.freq == freq {
		return in, nil
	}
	return in.AsFreq(freq, Before)
}

// DateArrayFromRange builds the arithmetic progression of ordinals starting
// at start, per spec.md §4.7. Exactly one of end or length must be supplied.
func DateArrayFromRange(start Date, end *Date, length *int, includeLast bool) (DateArray, error) {
	var n int
	switch {
	case end != nil:
		if end.freq != start.freq {
			return DateArray{}, ErrFrequencyMismatch.New(start.freq.String(), end.freq.String())
		}
		diff := end.ordinal - start.ordinal
		if includeLast {
			diff++
		}
		if diff < 0 {
			return DateArray{}, fmt.Errorf("end is before start")
		}
		n = int(diff)
	case length != nil:
		n = *length
	default:
		return DateArray{}, fmt.Errorf("either end or length must be supplied")
	}

	ordinals := make([]int64, n)
	for i := 0; i < n; i++ {
		ordinals[i] = start.ordinal + int64(i)
	}
	return DateArray{freq: start.freq, ordinals: ordinals}, nil
}

// GuessFreq infers a frequency from the distribution of first differences
// between consecutive values, taken in the order given and only sorted
// afterwards (interpreted as day-like ordinals, per spec.md §4.7's table).
// It falls back to Undefined, with a logged warning, if no pattern matches —
// including when the input isn't sorted, which surfaces as a negative step
// that matches none of the known ranges.
func GuessFreq(values []float64) Frequency {
	if len(values) < 2 {
		warnUndefinedFrequency("fewer than two samples")
		return Undefined
	}

	diffs := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		diffs[i-1] = values[i] - values[i-1]
	}
	sort.Float64s(diffs)

	min, max := diffs[0], diffs[len(diffs)-1]

	const eps = 1e-6
	switch {
	case min == 1 && max == 1:
		return Daily
	case min == 1 && max >= 1 && max <= 3:
		return Business
	case min > 3 && max <= 7:
		return Weekly
	case min >= 28 && min <= 31 && max <= 31:
		return Monthly
	case min >= 90 && min <= 92 && max <= 92:
		return Quarterly
	case min >= 365 && min <= 366:
		return Annual
	case math.Abs(24*min-1) < eps:
		return Hourly
	case math.Abs(1440*min-1) < eps:
		return Minutely
	case math.Abs(86400*min-1) < eps:
		return Secondly
	default:
		warnUndefinedFrequency(fmt.Sprintf("step pattern min=%g max=%g matched no known frequency", min, max))
		return Undefined
	}
}
