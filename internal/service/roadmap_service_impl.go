package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmtabor/studyarc/internal/db"
	"github.com/jmtabor/studyarc/internal/domain"
	"github.com/jmtabor/studyarc/internal/repository"
)

type roadmapService struct {
	roadmap repository.RoadmapRepo
	courses repository.CourseRepo
	uow     db.UnitOfWork
}

func NewRoadmapService(roadmap repository.RoadmapRepo, courses repository.CourseRepo, uow db.UnitOfWork) RoadmapService {
	return &roadmapService{roadmap: roadmap, courses: courses, uow: uow}
}

func (s *roadmapService) Create(ctx context.Context, e *domain.RoadmapEntry) error {
	if err := validateRoadmapEntry(e); err != nil {
		return err
	}
	if _, err := s.courses.GetByID(ctx, e.CourseID); err != nil {
		return fmt.Errorf("resolving course: %w", err)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return s.roadmap.Create(ctx, e)
}

func (s *roadmapService) ListByCourse(ctx context.Context, courseID string) ([]*domain.RoadmapEntry, error) {
	return s.roadmap.ListByCourse(ctx, courseID)
}

// ReplaceForCourse swaps a course's roadmap atomically. A redraft either
// lands whole or leaves the previous roadmap untouched.
func (s *roadmapService) ReplaceForCourse(ctx context.Context, courseID string, entries []*domain.RoadmapEntry) error {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return fmt.Errorf("resolving course: %w", err)
	}
	for _, e := range entries {
		e.CourseID = courseID
		if err := validateRoadmapEntry(e); err != nil {
			return err
		}
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRoadmap := repository.NewSQLiteRoadmapRepo(tx)
		if err := txRoadmap.DeleteByCourse(ctx, courseID); err != nil {
			return err
		}
		for _, e := range entries {
			if err := txRoadmap.Create(ctx, e); err != nil {
				return fmt.Errorf("creating roadmap entry for week %d: %w", e.WeekNumber, err)
			}
		}
		return nil
	})
}

func validateRoadmapEntry(e *domain.RoadmapEntry) error {
	if e.WeekNumber < 1 {
		return fmt.Errorf("week number must be positive, got %d", e.WeekNumber)
	}
	if e.FocusArea == "" {
		return fmt.Errorf("focus area is required")
	}
	if e.EffortLevel == "" {
		e.EffortLevel = domain.EffortMedium
	}
	if !domain.ValidEffortLevels[e.EffortLevel] {
		return fmt.Errorf("unknown effort level %q", e.EffortLevel)
	}
	return nil
}
