package tsdate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tsdate/tsdate"
)

func TestErrorKindsDistinguishable(t *testing.T) {
	_, err := tsdate.NewDateFromFields(tsdate.Annual, tsdate.DateFields{})
	require.Error(t, err)
	require.True(t, tsdate.ErrInsufficientDate.Is(err))
	require.False(t, tsdate.ErrInvalidWeekend.Is(err))

	_, err = tsdate.NewDateFromFields(tsdate.Business, tsdate.DateFields{Year: intp(2007), Month: intp(1), Day: intp(6)})
	require.Error(t, err)
	require.True(t, tsdate.ErrInvalidWeekend.Is(err))

	daily, err := tsdate.NewDateFromFields(tsdate.Daily, tsdate.DateFields{Year: intp(2024), Month: intp(6), Day: intp(17)})
	require.NoError(t, err)
	monthly, err := tsdate.NewDateFromFields(tsdate.Monthly, tsdate.DateFields{Year: intp(2024), Month: intp(6)})
	require.NoError(t, err)

	_, err = daily.Diff(monthly)
	require.True(t, tsdate.ErrFrequencyMismatch.Is(err))

	_, err = tsdate.NormalizeFrequency("fortnightly")
	require.True(t, tsdate.ErrInvalidFrequency.Is(err))
}

func TestMakeDateFieldErrorsShareOneConsistentKind(t *testing.T) {
	// All three field checks (month, day, time-of-day) report
	// ErrInvalidCalendarField, not ErrInvalidFrequency (which is reserved for
	// NormalizeFrequency's tag/alias validation).
	_, err := tsdate.MakeDate(2024, 13, 1, 0, 0, 0)
	require.True(t, tsdate.ErrInvalidCalendarField.Is(err))
	require.False(t, tsdate.ErrInvalidFrequency.Is(err))

	_, err = tsdate.MakeDate(2023, 2, 29, 0, 0, 0)
	require.True(t, tsdate.ErrInvalidCalendarField.Is(err))

	_, err = tsdate.MakeDate(2024, 6, 1, 24, 0, 0)
	require.True(t, tsdate.ErrInvalidCalendarField.Is(err))
}
