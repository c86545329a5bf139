package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{
		"courses", "syllabus_events", "grading_weights", "roadmap_entries", "study_sessions",
	} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_IsIdempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}

func TestMigrate_EnforcesEventTypeCheck(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO courses (id, name, created_at) VALUES ('c1', 'Test', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO syllabus_events (id, course_id, title, event_type, created_at)
		VALUES ('e1', 'c1', 'Bad', 'party', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	uow := NewSQLiteUnitOfWork(database)

	boom := errors.New("boom")
	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO courses (id, name, created_at) VALUES ('c1', 'Doomed', '2026-01-01T00:00:00Z')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM courses`).Scan(&count))
	assert.Zero(t, count)
}

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	uow := NewSQLiteUnitOfWork(database)

	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO courses (id, name, created_at) VALUES ('c1', 'Kept', '2026-01-01T00:00:00Z')`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM courses`).Scan(&count))
	assert.Equal(t, 1, count)
}
