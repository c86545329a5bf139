package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jmtabor/studyarc/internal/domain"
	"github.com/jmtabor/studyarc/internal/repository"
)

type gradingService struct {
	grading repository.GradingRepo
	courses repository.CourseRepo
}

func NewGradingService(grading repository.GradingRepo, courses repository.CourseRepo) GradingService {
	return &gradingService{grading: grading, courses: courses}
}

func (s *gradingService) Create(ctx context.Context, g *domain.GradeCategory) error {
	g.Category = strings.TrimSpace(g.Category)
	if g.Category == "" {
		return fmt.Errorf("category name is required")
	}
	if g.Weight <= 0 || g.Weight > 100 {
		return fmt.Errorf("weight must be in (0, 100], got %g", g.Weight)
	}
	if _, err := s.courses.GetByID(ctx, g.CourseID); err != nil {
		return fmt.Errorf("resolving course: %w", err)
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return s.grading.Create(ctx, g)
}

func (s *gradingService) ListByCourse(ctx context.Context, courseID string) ([]*domain.GradeCategory, error) {
	return s.grading.ListByCourse(ctx, courseID)
}

func (s *gradingService) SetScore(ctx context.Context, id string, score *float64) error {
	if score != nil && (*score < 0 || *score > 100) {
		return fmt.Errorf("score must be in [0, 100], got %g", *score)
	}
	return s.grading.UpdateScore(ctx, id, score)
}

func (s *gradingService) Delete(ctx context.Context, id string) error {
	return s.grading.Delete(ctx, id)
}
