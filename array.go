package tsdate

import "fmt"

// DateArray is a homogeneous sequence of ordinals sharing a single frequency
// tag, per spec.md §3/§4.6. It is not required to be sorted, but the
// fullness/duplicate analyses (GetSteps, IsFull, HasDuplicatedDates) assume it
// is; callers that can't guarantee ordering should treat those results as
// informational only.
//
// A DateArray is logically immutable: every operation that would "modify" it
// returns a new DateArray. The only mutable state is the set of lazily
// computed caches below, each guarded by its own single-visit flag, valid for
// the life of the value once populated (see spec.md §5/§9).
type DateArray struct {
	freq     Frequency
	ordinals []int64

	stepsComputed bool
	steps         []int64
	full          bool
	hasDups       bool

	strComputed bool
	strLayout   string
	strs        []string

	ordComputed bool
	ords        []float64
}

// NewDateArray wraps ordinals (which the caller asserts are already canonical
// for freq) as a DateArray. The slice is not copied; callers must not mutate
// it afterwards.
func NewDateArray(freq Frequency, ordinals []int64) DateArray {
	return DateArray{freq: freq, ordinals: ordinals}
}

// Freq returns a's frequency.
func (a DateArray) Freq() Frequency { return a.freq }

// Len returns the number of elements in a.
func (a DateArray) Len() int { return len(a.ordinals) }

// Values returns a's raw ordinals (tovalue, spec.md §4.6). The returned slice
// aliases a's internal storage and must not be mutated.
func (a DateArray) Values() []int64 { return a.ordinals }

// At returns the Date at index i. It panics on an out-of-range index, as
// Go slices do.
func (a DateArray) At(i int) Date {
	return Date{freq: a.freq, ordinal: a.ordinals[i]}
}

// Slice returns the sub-array a[lo:hi], sharing a's frequency. This restores
// the original implementation's __getitem__ slice support (spec.md
// "Supplemented features").
func (a DateArray) Slice(lo, hi int) DateArray {
	return DateArray{freq: a.freq, ordinals: a.ordinals[lo:hi]}
}

// Ordinals returns each element re-decoded and expressed as an absolute-day
// float (toordinal, spec.md §4.6). Sub-day frequencies carry a fractional
// part for the time-of-day.
func (a *DateArray) Ordinals() []float64 {
	if a.ordComputed {
		return a.ords
	}

	out := make([]float64, len(a.ordinals))
	for i, v := range a.ordinals {
		ci, err := decode(a.freq, v)
		if err != nil {
			out[i] = 0
			continue
		}
		ad := float64(absoluteDay(ci))
		if a.freq.IsSubDay() {
			ad += float64(ci.Hour*3600+ci.Minute*60+ci.Second) / 86400.0
		}
		out[i] = ad
	}

	a.ords = out
	a.ordComputed = true
	return out
}

// Strings formats every element with freq's default layout (tostring,
// spec.md §4.6).
func (a *DateArray) Strings() []string {
	return a.stringsWithLayout(DefaultFormat(a.freq))
}

// StringsLayout formats every element with an explicit layout, restoring the
// original's tostring(format=...) keyword (spec.md "Supplemented features").
func (a *DateArray) StringsLayout(layout string) []string {
	return a.stringsWithLayout(layout)
}

func (a *DateArray) stringsWithLayout(layout string) []string {
	if a.strComputed && a.strLayout == layout {
		return a.strs
	}

	out := make([]string, len(a.ordinals))
	for i, v := range a.ordinals {
		ci, err := decode(a.freq, v)
		if err != nil {
			out[i] = fmt.Sprintf("%s@%d", a.freq, v)
			continue
		}
		s, err := formatInstant(ci, layout)
		if err != nil {
			out[i] = fmt.Sprintf("%s@%d", a.freq, v)
			continue
		}
		out[i] = s
	}

	a.strs = out
	a.strLayout = layout
	a.strComputed = true
	return out
}

// AsFreq converts every element of a to the supplied frequency under
// relation, per spec.md §4.4/§4.6.
func (a DateArray) AsFreq(to Frequency, relation Relation) (DateArray, error) {
	out := make([]int64, len(a.ordinals))
	for i, v := range a.ordinals {
		converted, ok := AsFreq(v, a.freq, to, relation)
		if !ok {
			return DateArray{}, ErrOutOfRange.New(fmt.Sprintf("element %d (%d) has no defined %s->%s conversion", i, v, a.freq, to))
		}
		out[i] = converted
	}
	return DateArray{freq: to, ordinals: out}, nil
}

// GetSteps returns the first differences between consecutive ordinals, and
// memoizes the derived Full/HasDuplicatedDates flags (spec.md §4.6).
func (a *DateArray) GetSteps() []int64 {
	a.computeSteps()
	return a.steps
}

func (a *DateArray) computeSteps() {
	if a.stepsComputed {
		return
	}

	n := len(a.ordinals)
	steps := make([]int64, 0, maxInt(n-1, 0))

	for i := 1; i < n; i++ {
		steps = append(steps, a.ordinals[i]-a.ordinals[i-1])
	}

	// full and hasDups are independent properties of the step distribution
	// (max step == 1, min step == 0 respectively), not mutually exclusive
	// conditions checked in the same pass: an array can be both full and
	// duplicated, e.g. steps [0, 1, 1].
	full, hasDups := true, false
	if len(steps) > 0 {
		min, max := steps[0], steps[0]
		for _, step := range steps[1:] {
			if step < min {
				min = step
			}
			if step > max {
				max = step
			}
		}
		full = max == 1
		hasDups = min == 0
	}

	a.steps = steps
	a.full = full
	a.hasDups = hasDups
	a.stepsComputed = true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IsFull reports whether every consecutive step in a equals exactly one unit
// of a's frequency (spec.md §4.6/§8 property 7).
func (a *DateArray) IsFull() bool {
	a.computeSteps()
	return a.full
}

// HasDuplicatedDates reports whether any consecutive step in a is zero
// (spec.md §4.6/§8 property 7).
func (a *DateArray) HasDuplicatedDates() bool {
	a.computeSteps()
	return a.hasDups
}

// HasMissingDates is an alias for !IsFull, read as "some period in the
// nominal range has no corresponding element".
func (a *DateArray) HasMissingDates() bool {
	return !a.IsFull()
}

// IsValid reports whether a is full and has no duplicates, the precondition
// for DateToIndex's O(1) path (spec.md §4.6).
func (a *DateArray) IsValid() bool {
	return a.IsFull() && !a.HasDuplicatedDates()
}
