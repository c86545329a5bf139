package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmtabor/studyarc/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	GetByName(ctx context.Context, name string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.SyllabusEvent) error
	GetByID(ctx context.Context, id string) (*domain.SyllabusEvent, error)
	ListByCourse(ctx context.Context, courseID string) ([]*domain.SyllabusEvent, error)
	// ListUpcoming returns events dated on or after now, plus undated
	// events (their raw date strings may not parse; callers decide).
	ListUpcoming(ctx context.Context, now time.Time) ([]*domain.SyllabusEvent, error)
	// ListPast returns events strictly before now, most recent first,
	// capped at limit.
	ListPast(ctx context.Context, now time.Time, limit int) ([]*domain.SyllabusEvent, error)
	Delete(ctx context.Context, id string) error
}

type GradingRepo interface {
	Create(ctx context.Context, g *domain.GradeCategory) error
	GetByID(ctx context.Context, id string) (*domain.GradeCategory, error)
	ListByCourse(ctx context.Context, courseID string) ([]*domain.GradeCategory, error)
	List(ctx context.Context) ([]*domain.GradeCategory, error)
	UpdateScore(ctx context.Context, id string, score *float64) error
	Delete(ctx context.Context, id string) error
}

type RoadmapRepo interface {
	Create(ctx context.Context, r *domain.RoadmapEntry) error
	ListByCourse(ctx context.Context, courseID string) ([]*domain.RoadmapEntry, error)
	List(ctx context.Context) ([]*domain.RoadmapEntry, error)
	DeleteByCourse(ctx context.Context, courseID string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.StudySession) error
	GetByID(ctx context.Context, id string) (*domain.StudySession, error)
	// ListRecent returns sessions most recent first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*domain.StudySession, error)
	// ListAll returns every session, most recent first.
	ListAll(ctx context.Context) ([]*domain.StudySession, error)
	Delete(ctx context.Context, id string) error
}
