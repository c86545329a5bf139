package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmtabor/studyarc/internal/db"
	"github.com/jmtabor/studyarc/internal/domain"
)

const roadmapColumns = `id, course_id, week_number, focus_area, tasks, effort_level`

// SQLiteRoadmapRepo implements RoadmapRepo over a SQLite connection.
// Task lists are stored as JSON text; decoding goes through
// domain.TaskList so loosely-typed payloads normalize on the way out.
type SQLiteRoadmapRepo struct {
	db db.DBTX
}

// NewSQLiteRoadmapRepo creates a new SQLiteRoadmapRepo.
func NewSQLiteRoadmapRepo(conn db.DBTX) *SQLiteRoadmapRepo {
	return &SQLiteRoadmapRepo{db: conn}
}

func (r *SQLiteRoadmapRepo) Create(ctx context.Context, entry *domain.RoadmapEntry) error {
	tasks, err := json.Marshal(entry.Tasks)
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	query := `INSERT INTO roadmap_entries (` + roadmapColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		entry.ID,
		entry.CourseID,
		entry.WeekNumber,
		entry.FocusArea,
		string(tasks),
		string(entry.EffortLevel),
	)
	if err != nil {
		return fmt.Errorf("inserting roadmap entry: %w", err)
	}
	return nil
}

func (r *SQLiteRoadmapRepo) ListByCourse(ctx context.Context, courseID string) ([]*domain.RoadmapEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roadmapColumns+` FROM roadmap_entries WHERE course_id = ? ORDER BY week_number`, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing roadmap by course: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteRoadmapRepo) List(ctx context.Context) ([]*domain.RoadmapEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roadmapColumns+` FROM roadmap_entries ORDER BY course_id, week_number`)
	if err != nil {
		return nil, fmt.Errorf("listing roadmap entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteRoadmapRepo) DeleteByCourse(ctx context.Context, courseID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM roadmap_entries WHERE course_id = ?`, courseID); err != nil {
		return fmt.Errorf("deleting roadmap entries: %w", err)
	}
	return nil
}

func (r *SQLiteRoadmapRepo) scanEntries(rows *sql.Rows) ([]*domain.RoadmapEntry, error) {
	var entries []*domain.RoadmapEntry
	for rows.Next() {
		var entry domain.RoadmapEntry
		var tasksRaw, effort string
		if err := rows.Scan(&entry.ID, &entry.CourseID, &entry.WeekNumber, &entry.FocusArea, &tasksRaw, &effort); err != nil {
			return nil, fmt.Errorf("scanning roadmap row: %w", err)
		}
		// TaskList decoding never fails; garbage payloads become empty.
		_ = json.Unmarshal([]byte(tasksRaw), &entry.Tasks)
		entry.EffortLevel = domain.EffortLevel(effort)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roadmap entries: %w", err)
	}
	return entries, nil
}
