package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmtabor/studyarc/internal/db"
	"github.com/jmtabor/studyarc/internal/domain"
	"github.com/jmtabor/studyarc/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
}

func NewSessionService(sessions repository.SessionRepo, uow db.UnitOfWork) SessionService {
	return &sessionService{sessions: sessions, uow: uow}
}

func (s *sessionService) LogSession(ctx context.Context, session *domain.StudySession) error {
	if session.DurationMinutes <= 0 {
		return fmt.Errorf("duration must be positive, got %d", session.DurationMinutes)
	}
	if session.Mode == "" {
		session.Mode = domain.ModePomodoro
	}
	session.CommitMessage = strings.TrimSpace(session.CommitMessage)
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CompletedAt.IsZero() {
		session.CompletedAt = time.Now().UTC()
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		// Verify the linked syllabus item inside the transaction so the
		// link cannot dangle; a missing item detaches rather than fails.
		if session.SyllabusItemID != nil {
			txEvents := repository.NewSQLiteEventRepo(tx)
			if _, err := txEvents.GetByID(ctx, *session.SyllabusItemID); err != nil {
				if !errors.Is(err, repository.ErrNotFound) {
					return err
				}
				session.SyllabusItemID = nil
			}
		}
		txSessions := repository.NewSQLiteSessionRepo(tx)
		return txSessions.Create(ctx, session)
	})
}

func (s *sessionService) ListRecent(ctx context.Context, limit int) ([]*domain.StudySession, error) {
	return s.sessions.ListRecent(ctx, limit)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
