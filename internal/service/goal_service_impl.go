package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmtabor/studyarc/internal/contract"
	"github.com/jmtabor/studyarc/internal/planner"
	"github.com/jmtabor/studyarc/internal/repository"
)

type goalService struct {
	sessions repository.SessionRepo
}

func NewGoalService(sessions repository.SessionRepo) GoalService {
	return &goalService{sessions: sessions}
}

func (s *goalService) WeeklyGoals(ctx context.Context, now time.Time) (*contract.GoalReport, error) {
	// Streak walking needs full history, not just the current week.
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	report := planner.BuildGoals(derefAll(sessions), now)
	return &report, nil
}
