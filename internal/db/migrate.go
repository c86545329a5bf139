package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE duplicates are tolerated so the full list can re-run on every
// startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	// date is free text on purpose: extracted syllabus dates are
	// untrusted and may not parse. The planner treats garbage as
	// "no date".
	`CREATE TABLE IF NOT EXISTS syllabus_events (
		id             TEXT PRIMARY KEY,
		course_id      TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		title          TEXT NOT NULL,
		event_type     TEXT NOT NULL DEFAULT 'other'
		               CHECK(event_type IN ('assignment','midterm','final','quiz','project','other')),
		date           TEXT NOT NULL DEFAULT '',
		is_high_stakes INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_syllabus_events_course ON syllabus_events(course_id)`,

	`CREATE TABLE IF NOT EXISTS grading_weights (
		id            TEXT PRIMARY KEY,
		course_id     TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		category      TEXT NOT NULL,
		weight        REAL NOT NULL DEFAULT 0,
		current_score REAL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_grading_weights_course ON grading_weights(course_id)`,

	`CREATE TABLE IF NOT EXISTS roadmap_entries (
		id           TEXT PRIMARY KEY,
		course_id    TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		week_number  INTEGER NOT NULL CHECK(week_number > 0),
		focus_area   TEXT NOT NULL DEFAULT '',
		tasks        TEXT NOT NULL DEFAULT '[]',
		effort_level TEXT NOT NULL DEFAULT 'medium'
		             CHECK(effort_level IN ('low','medium','high','critical'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_roadmap_entries_course ON roadmap_entries(course_id)`,

	`CREATE TABLE IF NOT EXISTS study_sessions (
		id               TEXT PRIMARY KEY,
		completed_at     TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		mode             TEXT NOT NULL DEFAULT 'pomodoro',
		commit_message   TEXT NOT NULL DEFAULT '',
		syllabus_item_id TEXT REFERENCES syllabus_events(id) ON DELETE SET NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_study_sessions_completed ON study_sessions(completed_at)`,
}
