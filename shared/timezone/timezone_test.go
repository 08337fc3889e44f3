package timezone_test

import (
	"corais/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestTimezoneFormatAndParse(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, "10/03/2025", timezone.Format(parsed, "02/01/2006"))
}

func TestDaysBetween(t *testing.T) {
	day := func(s string) time.Time {
		v, err := timezone.Parse("2006-01-02", s)
		assert.NoError(t, err)
		return v
	}

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{name: "three nights", from: day("2025-03-10"), to: day("2025-03-13"), expected: 3},
		{name: "same day", from: day("2025-03-10"), to: day("2025-03-10"), expected: 0},
		{name: "reversed", from: day("2025-03-13"), to: day("2025-03-10"), expected: -3},
		{name: "across month", from: day("2025-02-27"), to: day("2025-03-02"), expected: 3},
		{
			name:     "clock part ignored",
			from:     day("2025-03-10").Add(23 * time.Hour),
			to:       day("2025-03-11").Add(time.Hour),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timezone.DaysBetween(tt.from, tt.to))
		})
	}
}
