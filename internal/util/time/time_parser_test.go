package time_parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ParseTimestamp_WithNilInput_ReturnsCurrentTime(t *testing.T) {
	before := time.Now().UTC()
	result := ParseTimestamp(nil)
	after := time.Now().UTC()

	assert.True(t, result.After(before.Add(-time.Second)) && result.Before(after.Add(time.Second)),
		"Expected result to be close to current time")
	assert.Equal(t, time.UTC, result.Location(), "Expected UTC timezone")
}

func Test_ParseTimestamp_WithValidStrings_ParsesCorrectly(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "RFC3339 format",
			input:    "2025-06-21T20:30:00Z",
			expected: time.Date(2025, 6, 21, 20, 30, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 with timezone",
			input:    "2025-06-21T20:30:00-03:00",
			expected: time.Date(2025, 6, 21, 23, 30, 0, 0, time.UTC),
		},
		{
			name:     "ISO without timezone",
			input:    "2025-06-21T20:30:00",
			expected: time.Date(2025, 6, 21, 20, 30, 0, 0, time.UTC),
		},
		{
			name:     "space-separated format",
			input:    "2025-06-21 20:30:00",
			expected: time.Date(2025, 6, 21, 20, 30, 0, 0, time.UTC),
		},
		{
			name:     "date-only gig date",
			input:    "2025-06-21",
			expected: time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseTimestamp(tt.input)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, time.UTC, result.Location(), "Expected UTC timezone")
		})
	}
}

func Test_ParseTimestamp_WithUnixNumbers_DetectsUnit(t *testing.T) {
	seconds := float64(1750537800) // 2025-06-21T20:30:00Z
	assert.Equal(t, time.Date(2025, 6, 21, 20, 30, 0, 0, time.UTC), ParseTimestamp(seconds))

	milliseconds := float64(1750537800000)
	assert.Equal(t, time.Date(2025, 6, 21, 20, 30, 0, 0, time.UTC), ParseTimestamp(milliseconds))

	assert.Equal(t, time.Date(2025, 6, 21, 20, 30, 0, 0, time.UTC), ParseTimestamp(int64(1750537800)))
	assert.Equal(t, time.Date(2025, 6, 21, 20, 30, 0, 0, time.UTC), ParseTimestamp(int(1750537800)))
}

func Test_ParseTimestamp_WithInvalidInput_ReturnsCurrentTime(t *testing.T) {
	invalidInputs := []any{
		"not-a-date",
		"21/06/2025",
		true,
		[]string{"2025-06-21"},
	}

	for _, input := range invalidInputs {
		before := time.Now().UTC()
		result := ParseTimestamp(input)
		after := time.Now().UTC()

		assert.True(t, result.After(before.Add(-time.Second)) && result.Before(after.Add(time.Second)),
			"Expected fallback to current time for input %v", input)
	}
}
