package tsdate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tsdate/tsdate"
)

func TestDefaultFormatPerFrequency(t *testing.T) {
	for _, tt := range []struct {
		freq tsdate.Frequency
		want string
	}{
		{tsdate.Annual, "%Y"},
		{tsdate.Quarterly, "%YQ%q"},
		{tsdate.Monthly, "%b-%Y"},
		{tsdate.Weekly, "%YW%W"},
		{tsdate.Hourly, "%d-%b-%Y %H:00"},
		{tsdate.Minutely, "%d-%b-%Y %H:%M"},
		{tsdate.Secondly, "%d-%b-%Y %H:%M:%S"},
		{tsdate.Daily, "%d-%b-%y"},
		{tsdate.Business, "%d-%b-%y"},
	} {
		require.Equal(t, tt.want, tsdate.DefaultFormat(tt.freq))
	}
}

func TestDateFormatDirectives(t *testing.T) {
	d, err := tsdate.NewDateFromFields(tsdate.Secondly, tsdate.DateFields{
		Year: intp(2024), Month: intp(6), Day: intp(17),
		Hour: intp(13), Minute: intp(45), Second: intp(9),
	})
	require.NoError(t, err)

	s, err := d.Format("%A %d %B %Y %H:%M:%S")
	require.NoError(t, err)
	require.Equal(t, "Monday 17 June 2024 13:45:09", s)
}

func TestDateFormatRejectsUnknownDirective(t *testing.T) {
	d, err := tsdate.NewDateFromFields(tsdate.Daily, tsdate.DateFields{Year: intp(2024), Month: intp(6), Day: intp(17)})
	require.NoError(t, err)

	_, err = d.Format("%Z")
	require.Error(t, err)
}
