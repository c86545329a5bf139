package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmtabor/studyarc/internal/db"
	"github.com/jmtabor/studyarc/internal/domain"
)

const sessionColumns = `id, completed_at, duration_minutes, mode, commit_message, syllabus_item_id`

// SQLiteSessionRepo implements SessionRepo over a SQLite connection.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.StudySession) error {
	query := `INSERT INTO study_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.CompletedAt.Format(time.RFC3339),
		s.DurationMinutes,
		s.Mode,
		s.CommitMessage,
		nullableStr(s.SyllabusItemID),
	)
	if err != nil {
		return fmt.Errorf("inserting study session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.StudySession, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM study_sessions WHERE id = ?`, id)

	var s domain.StudySession
	var completedStr string
	var itemID sql.NullString
	err := row.Scan(&s.ID, &completedStr, &s.DurationMinutes, &s.Mode, &s.CommitMessage, &itemID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study session: %w", err)
	}
	return r.populateSession(&s, completedStr, itemID)
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, limit int) ([]*domain.StudySession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM study_sessions ORDER BY completed_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListAll(ctx context.Context) ([]*domain.StudySession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM study_sessions ORDER BY completed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM study_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting study session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.StudySession, error) {
	var sessions []*domain.StudySession
	for rows.Next() {
		var s domain.StudySession
		var completedStr string
		var itemID sql.NullString

		if err := rows.Scan(&s.ID, &completedStr, &s.DurationMinutes, &s.Mode, &s.CommitMessage, &itemID); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, err := r.populateSession(&s, completedStr, itemID)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) populateSession(s *domain.StudySession, completedStr string, itemID sql.NullString) (*domain.StudySession, error) {
	var err error
	s.CompletedAt, err = time.Parse(time.RFC3339, completedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing completed_at: %w", err)
	}
	s.SyllabusItemID = strFromNull(itemID)
	return s, nil
}
