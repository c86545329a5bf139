package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmtabor/studyarc/internal/domain"
	"github.com/jmtabor/studyarc/internal/repository"
)

type courseService struct {
	courses repository.CourseRepo
}

func NewCourseService(courses repository.CourseRepo) CourseService {
	return &courseService{courses: courses}
}

func (s *courseService) Create(ctx context.Context, c *domain.Course) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("course name is required")
	}
	if existing, err := s.courses.GetByName(ctx, c.Name); err == nil {
		return fmt.Errorf("course %q already exists (id %s)", existing.Name, existing.ID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now().UTC()
	return s.courses.Create(ctx, c)
}

func (s *courseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

func (s *courseService) Resolve(ctx context.Context, ref string) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, ref)
	if err == nil {
		return course, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.courses.GetByName(ctx, ref)
}

func (s *courseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.courses.List(ctx)
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	return s.courses.Delete(ctx, id)
}
