package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekday(t *testing.T) {
	tests := []struct {
		date string
		want time.Weekday
	}{
		{"2025-01-05", time.Sunday},
		{"2025-01-06", time.Monday},
		{"2025-01-10", time.Friday},
		{"2025-01-11", time.Saturday},
		{"2000-01-01", time.Saturday},
		{"2024-02-29", time.Thursday}, // leap day
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := Weekday(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekdayRejectsMalformedDates(t *testing.T) {
	bad := []string{
		"",
		"20250106",
		"2025-1-6",
		"06-01-2025",
		"2025-01-06T00:00",
		"2025-13-01", // month out of range
		"2025-02-30", // normalizes to March, not a real date
		"2025-02-29", // not a leap year
	}
	for _, date := range bad {
		_, err := Weekday(date)
		assert.Error(t, err, "date %q should be rejected", date)
		assert.False(t, ValidDate(date))
	}
}

func TestWindowFor(t *testing.T) {
	week := Default()

	t.Run("weekday window", func(t *testing.T) {
		win, open := week.WindowFor("2025-01-06") // Monday
		require.True(t, open)
		assert.Equal(t, 9*60, win.Open)
		assert.Equal(t, 18*60, win.Close)
	})

	t.Run("saturday short day", func(t *testing.T) {
		win, open := week.WindowFor("2025-01-11")
		require.True(t, open)
		assert.Equal(t, 9*60, win.Open)
		assert.Equal(t, 13*60, win.Close)
	})

	t.Run("sunday closed", func(t *testing.T) {
		_, open := week.WindowFor("2025-01-05")
		assert.False(t, open)
	})

	t.Run("malformed date treated as closed", func(t *testing.T) {
		_, open := week.WindowFor("not-a-date")
		assert.False(t, open)
	})
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"13:45", 825, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9:00", 0, true},
		{"0900", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "17:15", FormatClock(1035))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestClockRoundTrip(t *testing.T) {
	for min := 0; min < 24*60; min += SlotStepMin {
		got, err := ParseClock(FormatClock(min))
		require.NoError(t, err)
		require.Equal(t, min, got)
	}
}
