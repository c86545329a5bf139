package domain

import "time"

// SyllabusEvent is a graded deadline extracted from a syllabus.
//
// Date is kept as the raw extracted string rather than a parsed time:
// extraction output is untrusted and a syllabus line like "TBD" or
// "Week 9" must survive storage without breaking planning. The planner
// treats anything unparsable as infinitely far away.
type SyllabusEvent struct {
	ID           string
	CourseID     string
	Title        string
	Type         EventType
	Date         string
	IsHighStakes bool
	CreatedAt    time.Time
}
