package domain

import "time"

// StudySession is an immutable log of one finished focus block.
type StudySession struct {
	ID              string
	CompletedAt     time.Time
	DurationMinutes int
	Mode            string
	CommitMessage   string
	SyllabusItemID  *string
}
