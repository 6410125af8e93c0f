package tsdate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tsdate/tsdate"
)

func TestParseRelation(t *testing.T) {
	for _, s := range []string{"B", "b", "Before", "before"} {
		r, err := tsdate.ParseRelation(s)
		require.NoError(t, err)
		require.Equal(t, tsdate.Before, r)
	}
	for _, s := range []string{"A", "a", "After", "after"} {
		r, err := tsdate.ParseRelation(s)
		require.NoError(t, err)
		require.Equal(t, tsdate.After, r)
	}
	_, err := tsdate.ParseRelation("sideways")
	require.Error(t, err)
}

func TestAsFreqAnnualToQuarterly(t *testing.T) {
	year2004, err := tsdate.NewDateFromFields(tsdate.Annual, tsdate.DateFields{Year: intp(2004)})
	require.NoError(t, err)

	before, ok := year2004.AsFreq(tsdate.Quarterly, tsdate.Before)
	require.True(t, ok)
	require.Equal(t, 1, before.Quarter())
	require.Equal(t, 2004, before.Year())

	after, ok := year2004.AsFreq(tsdate.Quarterly, tsdate.After)
	require.True(t, ok)
	require.Equal(t, 4, after.Quarter())
	require.Equal(t, 2004, after.Year())
}

func TestAsFreqMonthlyToDaily(t *testing.T) {
	june, err := tsdate.NewDateFromFields(tsdate.Monthly, tsdate.DateFields{Year: intp(2024), Month: intp(6)})
	require.NoError(t, err)

	before, ok := june.AsFreq(tsdate.Daily, tsdate.Before)
	require.True(t, ok)
	require.Equal(t, 1, before.Day())

	after, ok := june.AsFreq(tsdate.Daily, tsdate.After)
	require.True(t, ok)
	require.Equal(t, 30, after.Day())
}

func TestAsFreqDailyToMonthlyIsRelationIndependent(t *testing.T) {
	day, err := tsdate.NewDateFromFields(tsdate.Daily, tsdate.DateFields{Year: intp(2024), Month: intp(6), Day: intp(17)})
	require.NoError(t, err)

	before, ok := day.AsFreq(tsdate.Monthly, tsdate.Before)
	require.True(t, ok)
	after, ok := day.AsFreq(tsdate.Monthly, tsdate.After)
	require.True(t, ok)
	require.Equal(t, before, after)
	require.Equal(t, tsdate.June, before.Month())
}

func TestAsFreqWeeklyToDaily(t *testing.T) {
	week, err := tsdate.NewDateFromInstant(tsdate.Weekly, tsdate.MakeCalendarInstant(2024, 6, 17, 0, 0, 0))
	require.NoError(t, err)

	before, ok := week.AsFreq(tsdate.Daily, tsdate.Before)
	require.True(t, ok)
	require.Equal(t, tsdate.Monday, before.DayOfWeek())

	after, ok := week.AsFreq(tsdate.Daily, tsdate.After)
	require.True(t, ok)
	require.Equal(t, tsdate.Sunday, after.DayOfWeek())
}

func TestAsFreqDailyToBusinessAdjustsWeekend(t *testing.T) {
	saturday, err := tsdate.NewDateFromFields(tsdate.Daily, tsdate.DateFields{Year: intp(2024), Month: intp(6), Day: intp(15)})
	require.NoError(t, err)

	before, ok := saturday.AsFreq(tsdate.Business, tsdate.Before)
	require.True(t, ok)
	require.Equal(t, tsdate.Friday, before.DayOfWeek())

	after, ok := saturday.AsFreq(tsdate.Business, tsdate.After)
	require.True(t, ok)
	require.Equal(t, tsdate.Monday, after.DayOfWeek())
}

func TestAsFreqDayToSubDayFillsBoundary(t *testing.T) {
	day, err := tsdate.NewDateFromFields(tsdate.Daily, tsdate.DateFields{Year: intp(2024), Month: intp(6), Day: intp(17)})
	require.NoError(t, err)

	before, ok := day.AsFreq(tsdate.Secondly, tsdate.Before)
	require.True(t, ok)
	require.Equal(t, 0, before.Hour())
	require.Equal(t, 0, before.Minute())
	require.Equal(t, 0, before.Second())

	after, ok := day.AsFreq(tsdate.Secondly, tsdate.After)
	require.True(t, ok)
	require.Equal(t, 23, after.Hour())
	require.Equal(t, 59, after.Minute())
	require.Equal(t, 59, after.Second())
}

func TestAsFreqIdentity(t *testing.T) {
	d, err := tsdate.NewDateFromFields(tsdate.Daily, tsdate.DateFields{Year: intp(2024), Month: intp(6), Day: intp(17)})
	require.NoError(t, err)

	same, ok := d.AsFreq(tsdate.Daily, tsdate.Before)
	require.True(t, ok)
	require.True(t, d.Equal(same))
}

func intp(v int) *int { return &v }
