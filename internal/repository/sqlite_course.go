package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmtabor/studyarc/internal/db"
	"github.com/jmtabor/studyarc/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo over a SQLite connection.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (id, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM courses WHERE id = ?`, id)
	return r.scanCourse(row)
}

func (r *SQLiteCourseRepo) GetByName(ctx context.Context, name string) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM courses WHERE name = ?`, name)
	return r.scanCourse(row)
}

func (r *SQLiteCourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM courses ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		var c domain.Course
		var createdAtStr string
		if err := rows.Scan(&c.ID, &c.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) scanCourse(row *sql.Row) (*domain.Course, error) {
	var c domain.Course
	var createdAtStr string
	err := row.Scan(&c.ID, &c.Name, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}
