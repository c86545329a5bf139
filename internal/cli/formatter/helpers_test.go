package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"today", now.Add(2 * time.Hour), "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"in days", now.Add(5 * 24 * time.Hour), "In 5d"},
		{"in weeks", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"in months", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"days ago", now.Add(-4 * 24 * time.Hour), "4d ago"},
		{"weeks ago", now.Add(-21 * 24 * time.Hour), "3w ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.t, now))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h30m", FormatMinutes(90))
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(0.5, 10), "50%")
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
	assert.Contains(t, RenderProgress(-0.5, 10), "0%")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"Name", "Weight"}, [][]string{
		{"Homework", "20%"},
		{"Final", "40%"},
	})
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Homework")
	assert.Contains(t, out, "─")
}
