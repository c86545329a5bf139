package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmtabor/studyarc/internal/domain"
	"github.com/jmtabor/studyarc/internal/repository"
)

type eventService struct {
	events  repository.EventRepo
	courses repository.CourseRepo
}

func NewEventService(events repository.EventRepo, courses repository.CourseRepo) EventService {
	return &eventService{events: events, courses: courses}
}

func (s *eventService) Create(ctx context.Context, e *domain.SyllabusEvent) error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return fmt.Errorf("event title is required")
	}
	if _, err := s.courses.GetByID(ctx, e.CourseID); err != nil {
		return fmt.Errorf("resolving course: %w", err)
	}
	if e.Type == "" {
		e.Type = domain.EventOther
	}
	if !domain.ValidEventTypes[e.Type] {
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now().UTC()
	return s.events.Create(ctx, e)
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.SyllabusEvent, error) {
	return s.events.GetByID(ctx, id)
}

func (s *eventService) ListByCourse(ctx context.Context, courseID string) ([]*domain.SyllabusEvent, error) {
	return s.events.ListByCourse(ctx, courseID)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}
