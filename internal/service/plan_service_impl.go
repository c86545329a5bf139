package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmtabor/studyarc/internal/contract"
	"github.com/jmtabor/studyarc/internal/planner"
	"github.com/jmtabor/studyarc/internal/repository"
)

type planService struct {
	events  repository.EventRepo
	grading repository.GradingRepo
	roadmap repository.RoadmapRepo
	courses repository.CourseRepo
}

func NewPlanService(
	events repository.EventRepo,
	grading repository.GradingRepo,
	roadmap repository.RoadmapRepo,
	courses repository.CourseRepo,
) PlanService {
	return &planService{events: events, grading: grading, roadmap: roadmap, courses: courses}
}

func (s *planService) TodayPlan(ctx context.Context, now time.Time) ([]contract.PlanItem, error) {
	events, err := s.events.ListUpcoming(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("loading upcoming events: %w", err)
	}
	categories, err := s.grading.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading grade categories: %w", err)
	}
	roadmap, err := s.roadmap.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roadmap: %w", err)
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading courses: %w", err)
	}

	return planner.GeneratePlan(planner.PlanInput{
		Events:     derefAll(events),
		Categories: derefAll(categories),
		Roadmap:    derefAll(roadmap),
		Courses:    derefAll(courses),
	}, now), nil
}
