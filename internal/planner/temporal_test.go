package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_AcceptedLayouts(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"iso date", "2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2026-03-15T09:30:00Z", time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)},
		{"datetime", "2026-03-15 09:30:00", time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.value)
			require.NotNil(t, got)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestParseDate_GarbageIsNil(t *testing.T) {
	for _, value := range []string{"", "TBD", "Week 9", "2026-13-45", "soon"} {
		assert.Nil(t, ParseDate(value), "value %q", value)
	}
}

func TestDaysUntil_CeilsPartialDays(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// 36 hours out rounds up to 2 days.
	assert.Equal(t, 2, DaysUntil("2026-03-17T00:00:00Z", now))
	// Later the same day still counts as due today.
	assert.Equal(t, 1, DaysUntil("2026-03-15T23:00:00Z", now))
	// Half a day ago ceils to 0, not -1.
	assert.Equal(t, 0, DaysUntil("2026-03-15T00:00:00Z", now))
	// A full day and change ago is negative.
	assert.Equal(t, -1, DaysUntil("2026-03-14T00:00:00Z", now))
}

func TestDaysUntil_UnparsableIsFar(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, DaysUnknown, DaysUntil("", now))
	assert.Equal(t, DaysUnknown, DaysUntil("not a date", now))
}
