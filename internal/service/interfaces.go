package service

import (
	"context"
	"time"

	"github.com/jmtabor/studyarc/internal/contract"
	"github.com/jmtabor/studyarc/internal/domain"
	"github.com/jmtabor/studyarc/internal/importer"
)

type CourseService interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	// Resolve looks a course up by ID first, then by name.
	Resolve(ctx context.Context, ref string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

type EventService interface {
	Create(ctx context.Context, e *domain.SyllabusEvent) error
	GetByID(ctx context.Context, id string) (*domain.SyllabusEvent, error)
	ListByCourse(ctx context.Context, courseID string) ([]*domain.SyllabusEvent, error)
	Delete(ctx context.Context, id string) error
}

type GradingService interface {
	Create(ctx context.Context, g *domain.GradeCategory) error
	ListByCourse(ctx context.Context, courseID string) ([]*domain.GradeCategory, error)
	SetScore(ctx context.Context, id string, score *float64) error
	Delete(ctx context.Context, id string) error
}

type RoadmapService interface {
	Create(ctx context.Context, e *domain.RoadmapEntry) error
	ListByCourse(ctx context.Context, courseID string) ([]*domain.RoadmapEntry, error)
	ReplaceForCourse(ctx context.Context, courseID string, entries []*domain.RoadmapEntry) error
}

type SessionService interface {
	LogSession(ctx context.Context, s *domain.StudySession) error
	ListRecent(ctx context.Context, limit int) ([]*domain.StudySession, error)
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	TodayPlan(ctx context.Context, now time.Time) ([]contract.PlanItem, error)
}

type ReviewService interface {
	ReviewQueue(ctx context.Context, now time.Time) ([]contract.ReviewItem, error)
}

type GoalService interface {
	WeeklyGoals(ctx context.Context, now time.Time) (*contract.GoalReport, error)
}

type GradeService interface {
	Project(ctx context.Context, courseID string, whatIf *float64) (*contract.GradeProjection, error)
}

// ImportResult holds the outcome of a syllabus import.
type ImportResult struct {
	Course        *domain.Course
	EventCount    int
	CategoryCount int
	RoadmapCount  int
}

type ImportService interface {
	ImportSyllabus(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSyllabusFromSchema(ctx context.Context, schema *importer.SyllabusSchema) (*ImportResult, error)
}
