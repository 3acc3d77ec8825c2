package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "mid-month UTC timestamp",
			input:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			expected: "2024-01-15",
		},
		{
			name:     "midnight boundary",
			input:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			expected: "2024-01-15",
		},
		{
			name:     "non-UTC input converts to UTC date",
			input:    time.Date(2024, 1, 15, 19, 30, 0, 0, time.FixedZone("MST", -7*3600)),
			expected: "2024-01-16",
		},
		{
			name:     "single-digit month and day are zero padded",
			input:    time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
			expected: "2024-03-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, DayBucket(tt.input))
		})
	}
}

func TestWeekBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "mid-january monday",
			input:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			expected: "2024-W03",
		},
		{
			name:     "first day of year",
			input:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "2024-W01",
		},
		{
			name:     "first day of year on a sunday",
			input:    time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: "2023-W01",
		},
		{
			name:     "last day of leap year",
			input:    time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: "2024-W53",
		},
		{
			name:     "leap year ending on saturday yields week 54",
			input:    time.Date(2016, 12, 31, 12, 0, 0, 0, time.UTC),
			expected: "2016-W54",
		},
		{
			name:     "non-UTC input uses UTC weekday and day of year",
			input:    time.Date(2024, 1, 15, 19, 30, 0, 0, time.FixedZone("MST", -7*3600)),
			expected: "2024-W03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, WeekBucket(tt.input))
		})
	}
}

func TestWeekBucket_Deterministic(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	first := WeekBucket(ts)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, WeekBucket(ts))
	}
}

func TestDayKeyAndWeekKey_Prefixes(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "DAY#2024-01-15", DayKey(ts))
	assert.Equal(t, "WEEK#2024-W03", WeekKey(ts))
}
