package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmtabor/studyarc/internal/domain"
)

func NewTestCourse(name string) *domain.Course {
	return &domain.Course{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// SyllabusEvent options
type EventOption func(*domain.SyllabusEvent)

func WithEventType(t domain.EventType) EventOption {
	return func(e *domain.SyllabusEvent) {
		e.Type = t
	}
}

func WithEventDate(date string) EventOption {
	return func(e *domain.SyllabusEvent) {
		e.Date = date
	}
}

func WithHighStakes() EventOption {
	return func(e *domain.SyllabusEvent) {
		e.IsHighStakes = true
	}
}

func NewTestEvent(courseID, title string, opts ...EventOption) *domain.SyllabusEvent {
	e := &domain.SyllabusEvent{
		ID:        uuid.New().String(),
		CourseID:  courseID,
		Title:     title,
		Type:      domain.EventAssignment,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GradeCategory options
type CategoryOption func(*domain.GradeCategory)

func WithScore(score float64) CategoryOption {
	return func(g *domain.GradeCategory) {
		g.CurrentScore = &score
	}
}

func NewTestCategory(courseID, category string, weight float64, opts ...CategoryOption) *domain.GradeCategory {
	g := &domain.GradeCategory{
		ID:       uuid.New().String(),
		CourseID: courseID,
		Category: category,
		Weight:   weight,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RoadmapEntry options
type RoadmapOption func(*domain.RoadmapEntry)

func WithEffort(level domain.EffortLevel) RoadmapOption {
	return func(e *domain.RoadmapEntry) {
		e.EffortLevel = level
	}
}

func WithTasks(tasks ...string) RoadmapOption {
	return func(e *domain.RoadmapEntry) {
		e.Tasks = tasks
	}
}

func NewTestRoadmapEntry(courseID string, week int, focus string, opts ...RoadmapOption) *domain.RoadmapEntry {
	e := &domain.RoadmapEntry{
		ID:          uuid.New().String(),
		CourseID:    courseID,
		WeekNumber:  week,
		FocusArea:   focus,
		EffortLevel: domain.EffortMedium,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StudySession options
type SessionOption func(*domain.StudySession)

func WithMode(mode string) SessionOption {
	return func(s *domain.StudySession) {
		s.Mode = mode
	}
}

func WithCommitMessage(msg string) SessionOption {
	return func(s *domain.StudySession) {
		s.CommitMessage = msg
	}
}

func WithCompletedAt(t time.Time) SessionOption {
	return func(s *domain.StudySession) {
		s.CompletedAt = t
	}
}

func WithSyllabusItem(id string) SessionOption {
	return func(s *domain.StudySession) {
		s.SyllabusItemID = &id
	}
}

func NewTestSession(minutes int, opts ...SessionOption) *domain.StudySession {
	s := &domain.StudySession{
		ID:              uuid.New().String(),
		CompletedAt:     time.Now().UTC(),
		DurationMinutes: minutes,
		Mode:            domain.ModePomodoro,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
