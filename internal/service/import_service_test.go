package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmtabor/studyarc/internal/importer"
	"github.com/jmtabor/studyarc/internal/repository"
	"github.com/jmtabor/studyarc/internal/testutil"
)

func sampleSchema() *importer.SyllabusSchema {
	score := 72.0
	return &importer.SyllabusSchema{
		Course: importer.CourseImport{Name: "Organic Chemistry"},
		Dates: []importer.DateImport{
			{Title: "Midterm Exam", Date: "2026-10-15", EventType: "midterm", IsHighStakes: true},
			{Title: "Problem Set 4", Date: "2026-09-28", EventType: "assignment"},
		},
		GradingWeights: []importer.WeightImport{
			{Category: "Homework", Weight: 20, CurrentScore: &score},
			{Category: "Final Exam", Weight: 40},
		},
		Roadmap: []importer.RoadmapImport{
			{WeekNumber: 1, FocusArea: "Bonding", Tasks: []string{"Read chapter 1", "Flash cards"}},
			{WeekNumber: 2, FocusArea: "Stereochemistry"},
		},
	}
}

func TestImportService_FullImport(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(db))
	ctx := context.Background()

	result, err := svc.ImportSyllabusFromSchema(ctx, sampleSchema())
	require.NoError(t, err)
	assert.Equal(t, "Organic Chemistry", result.Course.Name)
	assert.Equal(t, 2, result.EventCount)
	assert.Equal(t, 2, result.CategoryCount)
	assert.Equal(t, 2, result.RoadmapCount)

	events, err := repository.NewSQLiteEventRepo(db).ListByCourse(ctx, result.Course.ID)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	categories, err := repository.NewSQLiteGradingRepo(db).ListByCourse(ctx, result.Course.ID)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	roadmap, err := repository.NewSQLiteRoadmapRepo(db).ListByCourse(ctx, result.Course.ID)
	require.NoError(t, err)
	assert.Len(t, roadmap, 2)
}

func TestImportService_ValidationFailureWritesNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(db))
	ctx := context.Background()

	schema := sampleSchema()
	schema.Course.Name = ""
	schema.GradingWeights[0].Weight = 150

	_, err := svc.ImportSyllabusFromSchema(ctx, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed")

	courses, err := repository.NewSQLiteCourseRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestImportService_MidImportFailureRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	boom := errors.New("disk full")
	// Fail on the third insert: course and first event land, then abort.
	uow := &testutil.FailOnNthExecUoW{DB: db, FailOn: 3, Err: boom}
	svc := NewImportService(uow)
	ctx := context.Background()

	_, err := svc.ImportSyllabusFromSchema(ctx, sampleSchema())
	require.ErrorIs(t, err, boom)

	courses, err := repository.NewSQLiteCourseRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses, "partial import should be rolled back")
}

func TestImportService_ImportFromFile(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(db))
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "syllabus.json")
	payload := `{
		"course": {"name": "Microeconomics"},
		"dates": [{"title": "Final Exam", "date": "2026-12-12", "event_type": "final", "is_high_stakes": true}],
		"grading_weights": [{"category": "Exams", "weight": 60}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	result, err := svc.ImportSyllabus(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "Microeconomics", result.Course.Name)
	assert.Equal(t, 1, result.EventCount)
	assert.Equal(t, 1, result.CategoryCount)
}

func TestImportService_MissingFile(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(db))

	_, err := svc.ImportSyllabus(context.Background(), "/nonexistent/syllabus.json")
	assert.Error(t, err)
}
