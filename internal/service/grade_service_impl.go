package service

import (
	"context"
	"fmt"

	"github.com/jmtabor/studyarc/internal/contract"
	"github.com/jmtabor/studyarc/internal/planner"
	"github.com/jmtabor/studyarc/internal/repository"
)

type gradeService struct {
	grading repository.GradingRepo
	courses repository.CourseRepo
}

func NewGradeService(grading repository.GradingRepo, courses repository.CourseRepo) GradeService {
	return &gradeService{grading: grading, courses: courses}
}

func (s *gradeService) Project(ctx context.Context, courseID string, whatIf *float64) (*contract.GradeProjection, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, fmt.Errorf("resolving course: %w", err)
	}
	rows, err := s.grading.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("loading grade categories: %w", err)
	}
	categories := derefAll(rows)

	proj := &contract.GradeProjection{
		CourseID:      courseID,
		WeightedGrade: planner.WeightedGrade(categories),
	}
	proj.Letter = planner.Letter(proj.WeightedGrade)

	if whatIf != nil {
		if *whatIf < 0 || *whatIf > 100 {
			return nil, fmt.Errorf("hypothetical score must be in [0, 100], got %g", *whatIf)
		}
		grade, category := planner.WhatIfGrade(categories, *whatIf)
		if category != "" {
			proj.WhatIfGrade = grade
			proj.WhatIfLetter = planner.Letter(grade)
			proj.WhatIfCategory = category
		}
	}
	return proj, nil
}
