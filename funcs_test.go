package tsdate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tsdate/tsdate"
)

func TestDaysReturnsDayOfMonth(t *testing.T) {
	arr := fullDailyArray(t) // 2024-06-01 .. 2024-06-10
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, tsdate.Days(arr))
}

func TestIsDateAndIsDateArray(t *testing.T) {
	d, err := tsdate.NewDateFromFields(tsdate.Daily, tsdate.DateFields{Year: intp(2024), Month: intp(6), Day: intp(1)})
	require.NoError(t, err)
	arr := fullDailyArray(t)

	require.True(t, tsdate.IsDate(d))
	require.False(t, tsdate.IsDate(arr))
	require.True(t, tsdate.IsDateArray(arr))
	require.False(t, tsdate.IsDateArray(d))
}
