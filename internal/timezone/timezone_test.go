package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	assert.Equal(t, DefaultTimezone, loc.String())

	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestParse(t *testing.T) {
	cases := []struct {
		in       string
		want     time.Time
		dateOnly bool
	}{
		{"2024-01-15T10:30:00Z", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), false},
		{"2024-01-15T10:30:00-03:00", time.Date(2024, 1, 15, 13, 30, 0, 0, time.UTC), false},
		{"2024-01-15T10:30:00", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), false},
		{"2024-01-15 10:30", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), false},
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range cases {
		got, dateOnly, err := Parse(tc.in, time.UTC)
		require.NoError(t, err, tc.in)
		assert.True(t, tc.want.Equal(got), "%s: got %s", tc.in, got)
		assert.Equal(t, tc.dateOnly, dateOnly, tc.in)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "amanhã", "2024-13-01", "15/01/2024"} {
		_, _, err := Parse(in, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}

func TestWindows(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(ref))
	assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC), EndOfMonth(ref))
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999999999, time.UTC), EndOfDay(ref))
	assert.Equal(t, time.February, PreviousMonth(ref).Month())

	jan := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	prev := PreviousMonth(jan)
	assert.Equal(t, 2023, prev.Year())
	assert.Equal(t, time.December, prev.Month())
}
