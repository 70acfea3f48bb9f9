package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var zones = []*time.Location{
	time.FixedZone("UTC-12", -12*60*60),
	time.UTC,
	time.FixedZone("BRT", -3*60*60),
	time.FixedZone("UTC+12", 12*60*60),
}

func TestFormatDateIsTimezoneIndependent(t *testing.T) {
	for _, loc := range zones {
		t.Run(loc.String(), func(t *testing.T) {
			assert.Equal(t, "01/01/2025", FormatDate("2025-01-01", Options{Location: loc}))
			assert.Equal(t, "10/03/2025", FormatDate("2025-03-10", Options{Location: loc}))
		})
	}
}

func TestFormatDateUsesLeadingDigitsOfDay(t *testing.T) {
	for _, loc := range zones {
		assert.Equal(t, "10/03/2025", FormatDate("2025-03-10T00:00:00.000Z", Options{Location: loc}))
	}
}

func TestFormatDateFallsBackToGenericParsing(t *testing.T) {
	// Four "-" separated parts: the offset forces the RFC3339 path.
	got := FormatDate("2025-03-10T12:00:00-03:00", Options{Location: time.UTC})
	assert.Equal(t, "10/03/2025", got)
}

func TestFormatDateGarbage(t *testing.T) {
	assert.Equal(t, Placeholder, FormatDate("", Options{}))
	assert.Equal(t, Placeholder, FormatDate("not a date", Options{}))
	assert.Equal(t, Placeholder, FormatDate("a-b-c", Options{}))
}

func TestFormatDateRejectsOutOfRangeComponents(t *testing.T) {
	for _, iso := range []string{"2025-02-30", "2025-13-01", "2025-00-10", "2025-04-31", "2025-03-00"} {
		assert.Equal(t, Placeholder, FormatDate(iso, Options{}), iso)

		_, ok := Parse(iso, time.UTC)
		assert.False(t, ok, iso)
	}

	// Leap days are real dates.
	assert.Equal(t, "29/02/2024", FormatDate("2024-02-29", Options{}))
}

func TestFormatDayMonth(t *testing.T) {
	assert.Equal(t, "10/03", FormatDayMonth("2025-03-10"))
	assert.Equal(t, "01/01", FormatDayMonth("2025-01-01"))
	assert.Equal(t, Placeholder, FormatDayMonth("??"))
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "17/03/2025 - 21/03/2025", FormatRange("2025-03-17", "2025-03-21"))
}

func TestParseBuildsLocalMidnight(t *testing.T) {
	loc := time.FixedZone("UTC-12", -12*60*60)
	got, ok := Parse("2025-03-10", loc)
	require.True(t, ok)

	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, loc), got)
}

func TestStartAndEndOfDay(t *testing.T) {
	in := time.Date(2025, time.March, 10, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), StartOfDay(in))
	assert.Equal(t, time.Date(2025, time.March, 10, 23, 59, 59, 999999999, time.UTC), EndOfDay(in))
}
