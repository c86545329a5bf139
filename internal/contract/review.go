package contract

import "time"

// ReviewSource tags where a review item originated.
type ReviewSource string

const (
	ReviewFromSession  ReviewSource = "session"
	ReviewFromSyllabus ReviewSource = "syllabus"
)

// ReviewItem is one entry in the spaced-review queue.
type ReviewItem struct {
	ID         string
	Title      string
	Source     ReviewSource
	DueAt      time.Time
	StageLabel string
	IsDueNow   bool
}
