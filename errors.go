package tsdate

import errors "gopkg.in/src-d/go-errors.v1"

// Error kinds, per spec §7. Each is a gopkg.in/src-d/go-errors.v1 Kind: build
// a concrete error with Kind.New(...), and test for membership with
// Kind.Is(err) rather than errors.As or sentinel equality.
var (
	// ErrInsufficientDate indicates that not enough calendar fields were
	// supplied to construct a Date at the requested frequency.
	ErrInsufficientDate = errors.NewKind("insufficient fields to construct a %s date: %s")

	// ErrFrequencyMismatch indicates a binary operation between values of
	// differing frequency.
	ErrFrequencyMismatch = errors.NewKind("frequency mismatch: %s vs %s")

	// ErrArithmeticDate indicates a disallowed arithmetic or elementwise
	// operation on a Date or DateArray.
	ErrArithmeticDate = errors.NewKind("arithmetic date error: %s")

	// ErrInvalidWeekend indicates business-day construction from a Saturday
	// or Sunday.
	ErrInvalidWeekend = errors.NewKind("invalid weekend date: %s")

	// ErrInvalidFrequency indicates an unrecognized frequency tag or alias.
	ErrInvalidFrequency = errors.NewKind("invalid frequency: %s")

	// ErrInvalidRelation indicates an asfreq relation string whose leading
	// letter is neither 'B' nor 'A'.
	ErrInvalidRelation = errors.NewKind("invalid relation: %s")

	// ErrOutOfRange indicates date_to_index/find_dates failing to locate a
	// date, or asfreq producing an undefined conversion.
	ErrOutOfRange = errors.NewKind("out of range: %s")

	// ErrInvalidCalendarField indicates an out-of-range year/month/day or
	// hour/minute/second field passed to MakeDate. Distinct from
	// ErrInvalidFrequency, which is reserved for frequency tags/aliases.
	ErrInvalidCalendarField = errors.NewKind("invalid calendar field: %s")
)
