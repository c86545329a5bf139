package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmtabor/studyarc/internal/contract"
	"github.com/jmtabor/studyarc/internal/planner"
	"github.com/jmtabor/studyarc/internal/repository"
)

// Candidate pools are trimmed at the repository before the engine
// applies its own per-source caps.
const reviewCandidateLimit = 50

type reviewService struct {
	sessions repository.SessionRepo
	events   repository.EventRepo
	courses  repository.CourseRepo
}

func NewReviewService(
	sessions repository.SessionRepo,
	events repository.EventRepo,
	courses repository.CourseRepo,
) ReviewService {
	return &reviewService{sessions: sessions, events: events, courses: courses}
}

func (s *reviewService) ReviewQueue(ctx context.Context, now time.Time) ([]contract.ReviewItem, error) {
	sessions, err := s.sessions.ListRecent(ctx, reviewCandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("loading recent sessions: %w", err)
	}
	pastEvents, err := s.events.ListPast(ctx, now, reviewCandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("loading past events: %w", err)
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading courses: %w", err)
	}

	return planner.GenerateReviewQueue(planner.ReviewInput{
		Sessions:   derefAll(sessions),
		PastEvents: derefAll(pastEvents),
		Courses:    derefAll(courses),
	}, now), nil
}
