package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmtabor/studyarc/internal/db"
	"github.com/jmtabor/studyarc/internal/domain"
)

const eventColumns = `id, course_id, title, event_type, date, is_high_stakes, created_at`

// SQLiteEventRepo implements EventRepo over a SQLite connection.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.SyllabusEvent) error {
	query := `INSERT INTO syllabus_events (` + eventColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.CourseID,
		e.Title,
		string(e.Type),
		e.Date,
		boolToInt(e.IsHighStakes),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting syllabus event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.SyllabusEvent, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM syllabus_events WHERE id = ?`, id)
	return r.scanEvent(row)
}

func (r *SQLiteEventRepo) ListByCourse(ctx context.Context, courseID string) ([]*domain.SyllabusEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM syllabus_events WHERE course_id = ? ORDER BY date, title`, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing events by course: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

// ListUpcoming relies on lexical ordering of ISO date strings. Undated
// events and non-ISO garbage come back too; the planner already treats
// anything unparsable as infinitely far, so over-returning is safe and
// under-returning would not be.
func (r *SQLiteEventRepo) ListUpcoming(ctx context.Context, now time.Time) ([]*domain.SyllabusEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM syllabus_events
		 WHERE date = '' OR date >= ?
		 ORDER BY date, title`, now.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("listing upcoming events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) ListPast(ctx context.Context, now time.Time, limit int) ([]*domain.SyllabusEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM syllabus_events
		 WHERE date != '' AND date < ?
		 ORDER BY date DESC
		 LIMIT ?`, now.Format("2006-01-02"), limit)
	if err != nil {
		return nil, fmt.Errorf("listing past events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM syllabus_events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting syllabus event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) scanEvent(row *sql.Row) (*domain.SyllabusEvent, error) {
	var e domain.SyllabusEvent
	var eventType, createdAtStr string
	var highStakes int

	err := row.Scan(&e.ID, &e.CourseID, &e.Title, &eventType, &e.Date, &highStakes, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("syllabus event: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning syllabus event: %w", err)
	}
	return r.populateEvent(&e, eventType, highStakes, createdAtStr)
}

func (r *SQLiteEventRepo) scanEvents(rows *sql.Rows) ([]*domain.SyllabusEvent, error) {
	var events []*domain.SyllabusEvent
	for rows.Next() {
		var e domain.SyllabusEvent
		var eventType, createdAtStr string
		var highStakes int

		if err := rows.Scan(&e.ID, &e.CourseID, &e.Title, &eventType, &e.Date, &highStakes, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		event, err := r.populateEvent(&e, eventType, highStakes, createdAtStr)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func (r *SQLiteEventRepo) populateEvent(e *domain.SyllabusEvent, eventType string, highStakes int, createdAtStr string) (*domain.SyllabusEvent, error) {
	e.Type = domain.EventType(eventType)
	e.IsHighStakes = highStakes != 0

	var err error
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return e, nil
}
