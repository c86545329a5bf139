package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmtabor/studyarc/internal/db"
	"github.com/jmtabor/studyarc/internal/domain"
)

const gradingColumns = `id, course_id, category, weight, current_score`

// SQLiteGradingRepo implements GradingRepo over a SQLite connection.
type SQLiteGradingRepo struct {
	db db.DBTX
}

// NewSQLiteGradingRepo creates a new SQLiteGradingRepo.
func NewSQLiteGradingRepo(conn db.DBTX) *SQLiteGradingRepo {
	return &SQLiteGradingRepo{db: conn}
}

func (r *SQLiteGradingRepo) Create(ctx context.Context, g *domain.GradeCategory) error {
	query := `INSERT INTO grading_weights (` + gradingColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, g.ID, g.CourseID, g.Category, g.Weight, nullableFloat(g.CurrentScore))
	if err != nil {
		return fmt.Errorf("inserting grade category: %w", err)
	}
	return nil
}

func (r *SQLiteGradingRepo) GetByID(ctx context.Context, id string) (*domain.GradeCategory, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+gradingColumns+` FROM grading_weights WHERE id = ?`, id)

	var g domain.GradeCategory
	var score sql.NullFloat64
	err := row.Scan(&g.ID, &g.CourseID, &g.Category, &g.Weight, &score)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("grade category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning grade category: %w", err)
	}
	g.CurrentScore = floatFromNull(score)
	return &g, nil
}

func (r *SQLiteGradingRepo) ListByCourse(ctx context.Context, courseID string) ([]*domain.GradeCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+gradingColumns+` FROM grading_weights WHERE course_id = ? ORDER BY weight DESC, category`, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing grade categories by course: %w", err)
	}
	defer rows.Close()
	return r.scanCategories(rows)
}

func (r *SQLiteGradingRepo) List(ctx context.Context) ([]*domain.GradeCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+gradingColumns+` FROM grading_weights ORDER BY course_id, weight DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing grade categories: %w", err)
	}
	defer rows.Close()
	return r.scanCategories(rows)
}

// UpdateScore records (or clears, with nil) the current score of a bucket.
func (r *SQLiteGradingRepo) UpdateScore(ctx context.Context, id string, score *float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE grading_weights SET current_score = ? WHERE id = ?`, nullableFloat(score), id)
	if err != nil {
		return fmt.Errorf("updating grade score: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("grade category: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteGradingRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM grading_weights WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting grade category: %w", err)
	}
	return nil
}

func (r *SQLiteGradingRepo) scanCategories(rows *sql.Rows) ([]*domain.GradeCategory, error) {
	var categories []*domain.GradeCategory
	for rows.Next() {
		var g domain.GradeCategory
		var score sql.NullFloat64
		if err := rows.Scan(&g.ID, &g.CourseID, &g.Category, &g.Weight, &score); err != nil {
			return nil, fmt.Errorf("scanning grade category row: %w", err)
		}
		g.CurrentScore = floatFromNull(score)
		categories = append(categories, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating grade categories: %w", err)
	}
	return categories, nil
}
