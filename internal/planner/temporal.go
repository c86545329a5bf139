package planner

import (
	"math"
	"time"
)

// DaysUnknown is the day count reported for absent or unparsable dates.
// Far enough out that such events never clear a near-term window, small
// enough that comparisons against it stay safe.
const DaysUnknown = math.MaxInt32

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ParseDate parses an extracted date string into a time. Returns nil for
// empty or unparsable input; never errors. Syllabus dates arrive from
// model output and may be anything.
func ParseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// DaysUntil returns ceil((date - now) / 24h) as whole days, or DaysUnknown
// when value does not parse. Negative for past dates.
func DaysUntil(value string, now time.Time) int {
	d := ParseDate(value)
	if d == nil {
		return DaysUnknown
	}
	return int(math.Ceil(d.Sub(now).Hours() / 24))
}
